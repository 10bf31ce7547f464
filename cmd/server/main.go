// @title           Social Backend API
// @version         1.0
// @description     User profiles and per-viewer first-name visibility.
// @host            localhost:8080
// @schemes         http https
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-backend/internal/api"
	"social-backend/internal/auth"
	"social-backend/internal/config"
	"social-backend/internal/database"
	"social-backend/internal/service"
	"social-backend/internal/verification"
	"social-backend/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	_ "social-backend/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load configuration")
	}
	setupLogger(cfg.Log)

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, cfg.DB.Source); err != nil {
		log.Fatal().Err(err).Msg("cannot apply database migrations")
	}

	dbpool, err := pgxpool.New(ctx, cfg.DB.Source)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer dbpool.Close()

	if err := dbpool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot ping database")
	}
	log.Info().Msg("connected to database")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("cannot connect to redis")
	}

	wsHub := websocket.NewHub()
	go wsHub.Run()
	defer wsHub.Stop()

	store := database.NewStore(dbpool)
	hasher := auth.BcryptHasher{Cost: bcrypt.DefaultCost}

	verifier, err := verification.NewVerifier(rdb, verification.LogMailer{}, cfg.Verification.TTL, cfg.Verification.LinkBase)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create email verifier")
	}

	profiles := service.NewUserProfileService(store, hasher, verifier)
	authService, err := service.NewAuthService(store, hasher, profiles, verifier, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create auth service")
	}

	server := api.NewServer(cfg, store, api.Services{
		Profiles:     profiles,
		Visibility:   service.NewVisibilityGrantService(store, wsHub),
		Registration: service.NewRegistration(profiles),
		Auth:         authService,
	}, wsHub)

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("starting http server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func setupLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
