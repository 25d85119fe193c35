package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/taskdeck/web/api/handler"
	"github.com/taskdeck/web/api/view"
	"github.com/taskdeck/web/internal/config"
	"github.com/taskdeck/web/internal/infrastructure/journal"
	"github.com/taskdeck/web/internal/infrastructure/monitor"
	pgInfra "github.com/taskdeck/web/internal/infrastructure/postgres"
	redisInfra "github.com/taskdeck/web/internal/infrastructure/redis"
	"github.com/taskdeck/web/internal/middleware"
	"github.com/taskdeck/web/internal/router"
	"github.com/taskdeck/web/internal/services"
	"github.com/taskdeck/web/internal/services/lifecycle"
	"github.com/taskdeck/web/pkg/httpcontext"
	"github.com/taskdeck/web/pkg/logger"
	"github.com/taskdeck/web/repository/postgres"
	redisRepo "github.com/taskdeck/web/repository/redis"
	identityUC "github.com/taskdeck/web/usecase/identity"
	taskUC "github.com/taskdeck/web/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	journalStore, err := journal.Open(cfg.Journal.Path, "journal")
	if err != nil {
		zapLogger.Fatal("failed to open activity journal", zap.Error(err))
	}
	manager.Register("journal", func(ctx context.Context) error {
		return journalStore.Close()
	})

	mon := monitor.New(pool, redisClient, journalStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	pruner := services.NewJournalPruner(journalStore, zapLogger, services.PrunerConfig{
		Interval:  cfg.Journal.PruneInterval,
		Retention: time.Duration(cfg.Journal.RetentionHours) * time.Hour,
	})
	pruner.Start()
	manager.Register("journal_pruner", func(ctx context.Context) error {
		pruner.Stop(ctx)
		return nil
	})

	accountRepo := postgres.NewAccountRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Session.TTL)

	recorder := services.NewJournalRecorder(journalStore, zapLogger)

	identityUseCase := identityUC.New(accountRepo, sessionRepo, recorder, cfg.Session.TTL, zapLogger)
	taskUseCase := taskUC.New(taskRepo, recorder, zapLogger)

	renderer, err := view.New()
	if err != nil {
		zapLogger.Fatal("failed to parse templates", zap.Error(err))
	}

	cookies := middleware.NewCookieCodec(cfg.Session.CookieName, cfg.Session.Secret, cfg.Session.TTL)
	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:   apiHandler.NewAuthHandler(identityUseCase, renderer, cookies, ctxAdapter, zapLogger),
		Task:   apiHandler.NewTaskHandler(taskUseCase, renderer, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	accessGate := middleware.SessionAuth(cookies, sessionRepo, cfg.Context.RequestTimeout, zapLogger)
	r := router.New(handlers, accessGate)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
