package nlp

// Similarity returns a Jaro-Winkler score in [0,1]: Jaro similarity from
// windowed character matches and transpositions, boosted by up to four
// characters of common prefix at 0.1 per character. Empty input scores 0.
//
// The score is a soft signal only: callers must pair it with substring
// containment or a high-confidence threshold before acting on it, since
// short strings produce inflated scores.
func Similarity(a, b string) float64 {
	s1, s2 := []rune(a), []rune(b)
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}

	window := max(len(s1), len(s2))/2 - 1
	if window < 0 {
		window = 0
	}

	matched1 := make([]bool, len(s1))
	matched2 := make([]bool, len(s2))
	matches := 0
	for i := range s1 {
		start := max(0, i-window)
		end := min(i+window+1, len(s2))
		for j := start; j < end; j++ {
			if matched2[j] || s1[i] != s2[j] {
				continue
			}
			matched1[i] = true
			matched2[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// Half-transpositions among matched characters.
	transpositions := 0
	k := 0
	for i := range s1 {
		if !matched1[i] {
			continue
		}
		for !matched2[k] {
			k++
		}
		if s1[i] != s2[k] {
			transpositions++
		}
		k++
	}
	t := float64(transpositions) / 2

	m := float64(matches)
	jaro := (m/float64(len(s1)) + m/float64(len(s2)) + (m-t)/m) / 3

	prefix := 0
	for prefix < 4 && prefix < len(s1) && prefix < len(s2) && s1[prefix] == s2[prefix] {
		prefix++
	}
	return jaro + float64(prefix)*0.1*(1-jaro)
}
