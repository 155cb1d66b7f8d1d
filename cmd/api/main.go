package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "aurora_concierge/internal/adapters/http_server"
	"aurora_concierge/internal/adapters/memstore"
	"aurora_concierge/internal/adapters/observability"
	redisad "aurora_concierge/internal/adapters/redis"
	"aurora_concierge/internal/app"
	"aurora_concierge/internal/domain"
	"aurora_concierge/internal/engine"
	"aurora_concierge/internal/kb"
	"aurora_concierge/internal/pricing"
	"aurora_concierge/internal/retrieval"
	"aurora_concierge/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// sessions
	var store domain.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		store = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionTTL)
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis session store")
	default:
		store = memstore.New()
		log.Info().Msg("in-memory session store")
	}

	// deps
	var retriever domain.Retriever = retrieval.NewIndex(kb.Catalog(), retrieval.Options{})
	retriever = observability.InstrumentedRetriever{Inner: retriever}
	quoter := pricing.NewSimulator()
	eng := engine.New(retriever, quoter, log.Logger)
	concierge := app.NewConcierge(store, eng)

	// http
	srv := server.New(cfg.ChatRPS, cfg.ChatBurst)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{C: concierge})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
