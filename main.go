package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"foundryos/backend/config"
	"foundryos/backend/controllers"
	"foundryos/backend/database"
	"foundryos/backend/logger"
	"foundryos/backend/middlewares"
	"foundryos/backend/onboarding"
	"foundryos/backend/routes"
	"foundryos/backend/utils"
)

func main() {
	cfg, cfgErr := config.Load()
	log, err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "foundryos-backend",
	})
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	if cfgErr != nil {
		log.Fatal("config", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := controllers.Deps{Cfg: cfg, Guide: utils.StaticGuide}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("redis url", zap.Error(err))
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = rdb.Ping(pctx).Err()
		cancel()
		if err != nil {
			log.Fatal("redis ping", zap.Error(err))
		}
		deps.Sessions = onboarding.NewRedisSessionStore(rdb, cfg.SessionTTL)
		log.Info("wizard sessions in redis")
	} else {
		deps.Sessions = onboarding.NewMemorySessionStore(cfg.SessionTTL)
		log.Warn("REDIS_URL not set; wizard sessions kept in memory")
	}

	if cfg.DatabaseURL != "" {
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("database", zap.Error(err))
		}
		defer pool.Close()
		if err := database.EnsureSchema(ctx, pool); err != nil {
			log.Fatal("schema", zap.Error(err))
		}
		deps.Records = database.NewPgRecordStore(pool)
		log.Info("records in postgres")
	} else {
		deps.Records = database.NewMemoryRecordStore()
		log.Warn("DATABASE_URL not set; records kept in memory")
	}

	if cfg.GeminiAPIKey != "" {
		deps.Guide = utils.GeminiGuide(utils.AIConfig{APIKey: cfg.GeminiAPIKey, GenModel: cfg.GeminiModel})
	}

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.CORS(), middlewares.RequestLogger(log), middlewares.Metrics())
	routes.Register(r, deps)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
