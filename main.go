package main

import (
	"context"
	"github.com/charmbracelet/log"
	"go.uber.org/fx"
	"io"
	"net/http"
	"os"
	"fedi_relay/dal"
	"fedi_relay/logic"
	"fedi_relay/server"
	"fedi_relay/shared"
	"time"
)

func main() {
	app := fx.New(
		fx.Provide(
			provideConfig,
			provideLogger,
			shared.NewUserAgent,
			dal.NewRepo,
			logic.NewMetrics,
			logic.NewPostLog,
			logic.NewSessions,
			logic.NewKeyStore,
			logic.NewFilters,
			logic.NewSiteProbe,
			logic.NewWebfingerClient,
			logic.NewActorResolver,
			logic.NewRequestSigner,
			logic.NewActivitySender,
			logic.NewDeliveryWorker,
			logic.NewFanoutScheduler,
			logic.NewObjectFetcher,
			logic.NewAnnounceResolver,
			logic.NewHttpSigChecker,
			logic.NewUserDirectory,
			logic.NewInbox,
			fx.Annotate(server.NewApubHandlerGroup, fx.ResultTags(`group:"handler-groups"`)),
			fx.Annotate(server.NewApiHandlerGroup, fx.ResultTags(`group:"handler-groups"`)),
			fx.Annotate(server.NewMetricsHandlerGroup, fx.ResultTags(`group:"handler-groups"`)),
			fx.Annotate(server.NewMux, fx.ParamTags(`group:"handler-groups"`)),
			server.NewHTTPServer,
		),
		fx.Invoke(registerHooks),
		fx.NopLogger,
	)
	app.Run()
}

func provideConfig() *shared.Config {
	return shared.LoadConfig()
}

func provideLogger(cfg *shared.Config) shared.ILogger {

	var logWriter io.Writer = os.Stdout
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal("Failed to open log file", "file", cfg.LogFile, "error", err)
		}
		logWriter = io.MultiWriter(os.Stdout, logFile)
	}

	logger := log.NewWithOptions(logWriter, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err == nil {
		logger.SetLevel(level)
	}
	return logger
}

func registerHooks(
	lc fx.Lifecycle,
	logger shared.ILogger,
	repo dal.IRepo,
	metrics logic.IMetrics,
	srv *http.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Printf("Service starting")
			repo.InitUpdateDb()
			metrics.ServiceStarted()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Printf("Service stopping")
			return nil
		},
	})
}
