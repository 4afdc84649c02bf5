package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abk234/TradingAgents-sub000/internal/config"
	deliveryhttp "github.com/abk234/TradingAgents-sub000/internal/delivery/http"
	deliveryws "github.com/abk234/TradingAgents-sub000/internal/delivery/websocket"
	"github.com/abk234/TradingAgents-sub000/internal/domain"
	"github.com/abk234/TradingAgents-sub000/internal/infrastructure/db"
	"github.com/abk234/TradingAgents-sub000/internal/infrastructure/fcm"
	"github.com/abk234/TradingAgents-sub000/internal/infrastructure/marketdata"
	"github.com/abk234/TradingAgents-sub000/internal/repository"
	"github.com/abk234/TradingAgents-sub000/internal/usecase"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("LOG_PRETTY") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if len(cfg.Scan.Universe) == 0 {
		log.Fatal().Msg("no scan universe configured")
	}

	ctx := context.Background()

	// Storage: Postgres when configured, in-memory otherwise.
	var (
		scanRepo    domain.ScanRepository
		outcomeRepo domain.OutcomeRepository
	)
	if cfg.Database.URL != "" {
		pool, err := db.NewPool(ctx, cfg.Database.URL, db.PoolConfigFromEnv())
		if err != nil {
			log.Fatal().Err(err).Msg("connecting to database")
		}
		defer pool.Close()
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("running migrations")
		}
		scanRepo = repository.NewPostgresScanRepository(pool)
		outcomeRepo = repository.NewPostgresOutcomeRepository(pool)
		log.Info().Msg("postgres storage enabled")
	} else {
		scanRepo = repository.NewInMemoryScanRepository()
		outcomeRepo = repository.NewInMemoryOutcomeRepository()
		log.Warn().Msg("no DATABASE_URL, using in-memory storage")
	}

	tokenRepo := repository.NewTokenRepository()

	fcmClient, err := fcm.NewClient(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("initializing fcm")
	}

	provider := marketdata.NewClient(
		cfg.MarketData.BaseURL,
		cfg.MarketData.APIKey,
		time.Duration(cfg.MarketData.TimeoutSeconds)*time.Second,
	)

	scanner := usecase.NewScanner(
		scanRepo,
		outcomeRepo,
		provider,
		fcmClient,
		tokenRepo,
		cfg.Engine,
		cfg.Scan.Universe,
		cfg.Scan.BarLimit,
		cfg.Scan.Workers,
		time.Duration(cfg.Notify.CooldownMinutes)*time.Minute,
	)
	tracker := usecase.NewOutcomeTracker(outcomeRepo, provider, cfg.Engine, cfg.Scan.BarLimit, cfg.Outcome.Workers)

	// Scheduled jobs: the scan and the outcome resolution run
	// independently; seconds-granularity cron expressions.
	scheduler := cron.New(cron.WithSeconds())
	if _, err := scheduler.AddFunc(cfg.Scan.Cron, func() { scanner.RunBatch(context.Background()) }); err != nil {
		log.Fatal().Err(err).Str("cron", cfg.Scan.Cron).Msg("scheduling scan")
	}
	if _, err := scheduler.AddFunc(cfg.Outcome.Cron, func() { tracker.Run(context.Background()) }); err != nil {
		log.Fatal().Err(err).Str("cron", cfg.Outcome.Cron).Msg("scheduling outcome resolution")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// First scan on startup so the API has data.
	go scanner.RunBatch(ctx)

	resultsHandler := deliveryhttp.NewResultsHandler(scanRepo, outcomeRepo, tracker)
	tokenHandler := deliveryhttp.NewTokenHandler(tokenRepo)
	wsHandler := deliveryws.NewHandler(scanRepo, time.Duration(cfg.Websocket.PushIntervalSeconds)*time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/results", resultsHandler.HandleResults)
	mux.HandleFunc("/api/report", resultsHandler.HandleReport)
	mux.HandleFunc("/api/outcomes/pending", resultsHandler.HandlePendingOutcomes)
	mux.HandleFunc("/api/outcomes/stats", resultsHandler.HandleOutcomeStats)
	mux.HandleFunc("/api/tokens", tokenHandler.HandleRegisterToken)
	mux.HandleFunc("/api/tokens/unregister", tokenHandler.HandleUnregisterToken)
	mux.HandleFunc("/ws", wsHandler.Handle)

	log.Info().Str("addr", cfg.Server.Addr).Int("universe", len(cfg.Scan.Universe)).Msg("server listening")
	if err := http.ListenAndServe(cfg.Server.Addr, mux); err != nil {
		log.Fatal().Err(err).Msg("http server")
	}
}
