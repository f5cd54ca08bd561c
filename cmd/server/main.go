package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peopleops/onboarding-system/internal/api"
	"github.com/peopleops/onboarding-system/internal/infrastructure/config"
	"github.com/peopleops/onboarding-system/internal/infrastructure/credentials"
	mongodb "github.com/peopleops/onboarding-system/internal/infrastructure/db/mongo"
	redisdb "github.com/peopleops/onboarding-system/internal/infrastructure/db/redis"
	"github.com/peopleops/onboarding-system/internal/infrastructure/notify"
	"github.com/peopleops/onboarding-system/pkg/logger"
)

// @title           Onboarding System API
// @version         1.0
// @description     Applicant-to-employee onboarding lifecycle service.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	publisher := notify.NewRedisPublisher(rdb, cfg.Notify.Channel)
	dispatcher := notify.NewDispatcher(cfg.Notify.Workers, publisher, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewApplicantRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewOnboardingRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewEmployeeRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return credentials.NewIssuer(db).EnsureIndexes(ctx)
}
