package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fi-rise/backend/internal/aggregation"
	"github.com/fi-rise/backend/internal/cache"
	"github.com/fi-rise/backend/internal/config"
	"github.com/fi-rise/backend/internal/controllers"
	"github.com/fi-rise/backend/internal/router"
	"github.com/fi-rise/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func run() error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := c.OpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if c.Seed {
		if err := storage.Seed(ctx, store, time.Now()); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
	}

	var ch cache.Cache = cache.Noop{}
	if c.RedisURL != "" {
		redis, err := cache.NewRedis(ctx, c.RedisURL, "fi-rise", c.CacheTTL)
		if err != nil {
			return err
		}
		ch = redis
		log.Info().Dur("ttl", c.CacheTTL).Msg("using redis cache")
	}
	defer ch.Close()

	formatter, err := aggregation.NewFormatter(c.Currency, c.Locale)
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(c.BaseURL)
	defer teardown()
	if err != nil {
		return err
	}

	router.AttachRoutes(controllers.Controller{
		Store:     store,
		Cache:     ch,
		UserID:    c.UserID,
		Formatter: formatter,
	}, r.Group("/"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", c.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Int("port", c.Port).Str("storage", c.Storage).Msg("backend startup complete")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Info().Msg("server stopped gracefully")
	return nil
}
