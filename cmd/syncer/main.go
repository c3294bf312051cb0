package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"feedsync/internal/account"
	"feedsync/internal/config"
	"feedsync/internal/domain"
	"feedsync/internal/feedparser"
	"feedsync/internal/fetch"
	"feedsync/internal/publisher"
	"feedsync/internal/remote/freshrss"
	"feedsync/internal/remote/miniflux"
	"feedsync/internal/scheduler"
	"feedsync/internal/storage/postgres"
	"feedsync/internal/syncer"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	feedStore := postgres.NewFeedStore(db)
	groupStore := postgres.NewGroupStore(db)
	postStore := postgres.NewPostStore(db)
	settingsStore := postgres.NewSettingsStore(db)
	txManager := postgres.NewTransactionManager(db)
	maintenance := postgres.NewMaintenanceStore(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedCredentials(ctx, settingsStore, cfg, logger)

	provider := account.NewProvider(settingsStore, maintenance, logger)
	downloader := fetch.NewDownloader(logger)

	local := syncer.NewLocal(syncer.LocalDeps{
		Fetcher: fetch.New(fetch.Config{
			Timeout:        cfg.Fetch.Timeout,
			MaxAttempts:    cfg.Fetch.Retry.MaxAttempts,
			InitialBackoff: cfg.Fetch.Retry.InitialBackoff,
			MaxBackoff:     cfg.Fetch.Retry.MaxBackoff,
		}, feedparser.New(logger), logger),
		Feeds:      feedStore,
		Posts:      postStore,
		Settings:   settingsStore,
		Policy:     syncer.NewIntervalRefreshPolicy(settingsStore, domain.AccountLocal, cfg.Sync.Interval),
		Tx:         txManager,
		Publisher:  rabbitMQ,
		Downloader: downloader,
		Logger:     logger,
	})
	provider.Register(domain.AccountLocal, local,
		syncer.NewIntervalRefreshPolicy(settingsStore, domain.AccountLocal, cfg.Sync.Interval))

	if creds := loadCredentials(ctx, settingsStore, domain.AccountFreshRSS, logger); creds != nil {
		client := freshrss.New(freshrss.Config{
			BaseURL:  creds.ServerURL,
			Username: creds.Username,
			Password: creds.Password,
			Timeout:  cfg.FreshRSS.Timeout,
		}, logger)
		if err := client.Login(ctx); err != nil {
			logger.Warn("freshrss login failed, account unavailable", "error", err)
		} else {
			policy := syncer.NewIntervalRefreshPolicy(settingsStore, domain.AccountFreshRSS, cfg.Sync.Interval)
			provider.Register(domain.AccountFreshRSS, syncer.NewFreshRSS(syncer.FreshRSSDeps{
				Remote:          client,
				Feeds:           feedStore,
				Groups:          groupStore,
				Posts:           postStore,
				Settings:        settingsStore,
				Policy:          policy,
				Publisher:       rabbitMQ,
				Downloader:      downloader,
				Logger:          logger,
				PageSize:        cfg.Sync.PageSize,
				StatusBatchSize: cfg.Sync.StatusBatchSize,
			}), policy)
		}
	}

	if creds := loadCredentials(ctx, settingsStore, domain.AccountMiniflux, logger); creds != nil {
		client := miniflux.New(miniflux.Config{
			BaseURL:  creds.ServerURL,
			APIToken: creds.APIToken,
			Timeout:  cfg.Miniflux.Timeout,
		}, logger)
		policy := syncer.NewIntervalRefreshPolicy(settingsStore, domain.AccountMiniflux, cfg.Sync.Interval)
		provider.Register(domain.AccountMiniflux, syncer.NewMiniflux(syncer.MinifluxDeps{
			Remote:     client,
			Feeds:      feedStore,
			Groups:     groupStore,
			Posts:      postStore,
			Settings:   settingsStore,
			Policy:     policy,
			Publisher:  rabbitMQ,
			Downloader: downloader,
			Logger:     logger,
			PageSize:   cfg.Sync.PageSize,
		}), policy)
	}

	wake, unsubscribe := provider.Subscribe()
	defer unsubscribe()

	sched := scheduler.NewScheduler(provider, cfg.Sync.Interval, wake, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting feed syncer", "interval", cfg.Sync.Interval)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

// seedCredentials copies credentials given in the config file into the
// settings store on first start, so a deployment can come up already signed
// in against its service. Stored credentials win over the config afterwards.
func seedCredentials(ctx context.Context, settings *postgres.SettingsStore, cfg *config.Config, logger *slog.Logger) {
	seeds := []domain.Credentials{
		{
			Kind:      domain.AccountFreshRSS,
			ServerURL: cfg.FreshRSS.BaseURL,
			Username:  cfg.FreshRSS.Username,
			Password:  cfg.FreshRSS.Password,
		},
		{
			Kind:      domain.AccountMiniflux,
			ServerURL: cfg.Miniflux.BaseURL,
			APIToken:  cfg.Miniflux.APIToken,
		},
	}
	for _, seed := range seeds {
		if seed.ServerURL == "" {
			continue
		}
		existing, err := settings.Credentials(ctx, seed.Kind)
		if err != nil {
			logger.Error("failed to read stored credentials", "account", seed.Kind, "error", err)
			continue
		}
		if existing != nil {
			continue
		}
		if err := settings.SetCredentials(ctx, &seed); err != nil {
			logger.Error("failed to seed credentials", "account", seed.Kind, "error", err)
		}
	}
}

func loadCredentials(ctx context.Context, settings *postgres.SettingsStore, kind domain.AccountKind, logger *slog.Logger) *domain.Credentials {
	creds, err := settings.Credentials(ctx, kind)
	if err != nil {
		logger.Error("failed to load credentials", "account", kind, "error", err)
		return nil
	}
	return creds
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
