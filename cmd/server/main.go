package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	_ "github.com/homeserve/household-api/docs"
	"github.com/homeserve/household-api/internal/api"
	"github.com/homeserve/household-api/internal/api/handler"
	"github.com/homeserve/household-api/internal/core/ports"
	"github.com/homeserve/household-api/internal/core/service"
	"github.com/homeserve/household-api/internal/infrastructure/auth"
	"github.com/homeserve/household-api/internal/infrastructure/config"
	"github.com/homeserve/household-api/internal/infrastructure/db/postgres"
	redisdb "github.com/homeserve/household-api/internal/infrastructure/db/redis"
	"github.com/homeserve/household-api/internal/infrastructure/llm"
	"github.com/homeserve/household-api/pkg/logger"
)

// @title                       Household Services API
// @version                     1.0
// @description                 Residents post requirements, cooks and maids publish services, and listings are translated on demand.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "household-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	// Missing configuration fails here, before any connection or listener.
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "household-api",
	})

	// --- Store ---
	delegated, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.URL})
	if err != nil {
		return fmt.Errorf("connect delegated pool: %w", err)
	}
	defer delegated.Close()

	privileged, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Database.ServiceURL, MaxConns: 4})
	if err != nil {
		return fmt.Errorf("connect privileged pool: %w", err)
	}
	defer privileged.Close()

	if err := postgres.Migrate(ctx, privileged); err != nil {
		return err
	}
	log.Info().Msg("database schema up to date")

	// --- Translation ---
	model, err := llm.NewGemini(ctx, llm.Config{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})
	if err != nil {
		return fmt.Errorf("language model: %w", err)
	}
	defer model.Close()

	readiness := map[string]handler.Pinger{
		"postgres":            poolPinger(delegated),
		"postgres_privileged": poolPinger(privileged),
	}

	var cache ports.TranslationCache
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("translation cache unavailable, continuing without it")
	} else {
		defer rdb.Close()
		cache = redisdb.NewTranslationCache(rdb)
		readiness["redis"] = handler.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	// --- Repositories and services ---
	users := postgres.NewUserRepository(delegated)
	profiles := postgres.NewProfileRepository(delegated)
	workers := postgres.NewWorkerProfileRepository(delegated)
	posts := postgres.NewServicePostRepository(delegated)
	requirements := postgres.NewRequirementRepository(delegated)
	verifier := postgres.NewProfileVerifier(privileged)

	e := api.NewRouter(api.Deps{
		Accounts:       service.NewAccountService(users, profiles, workers, logger.Component("account")),
		Profiles:       service.NewProfileService(users, profiles, workers, verifier, logger.Component("profile")),
		ServicePosts:   service.NewServicePostService(users, workers, posts, logger.Component("service_post")),
		Requirements:   service.NewRequirementService(users, requirements, logger.Component("requirement")),
		Translation:    service.NewTranslationService(model, cache, cfg.Redis.CacheTTL, logger.Component("translation")),
		Verifier:       auth.NewJWTVerifier(cfg.Auth.JWTSecret),
		Readiness:      readiness,
		AllowedOrigins: cfg.AllowedOrigins,
	}, logger.Component("http"))

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return shutdown(e.Shutdown, cfg, log)
}

func shutdown(stopServer func(context.Context) error, cfg *config.Config, log zerolog.Logger) error {
	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := stopServer(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func poolPinger(pool *pgxpool.Pool) handler.Pinger {
	return handler.PingFunc(pool.Ping)
}
