package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/RecipeBook_Go/internal/bootstrap"
	"github.com/osse101/RecipeBook_Go/internal/config"
	"github.com/osse101/RecipeBook_Go/internal/database"
	"github.com/osse101/RecipeBook_Go/internal/handler"
	"github.com/osse101/RecipeBook_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	bootstrap.SetupLogger(cfg)

	if !cfg.IsDev() {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			slog.Error("Invalid environment", "error", err)
			os.Exit(1)
		}
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		dbPool.Close()
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}
	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos, bus)

	if cfg.SeedFile != "" {
		seed, err := bootstrap.LoadSeedFile(cfg.SeedFile)
		if err == nil {
			err = bootstrap.SeedCatalog(ctx, seed, repos.User, services)
		}
		if err != nil {
			dbPool.Close()
			slog.Error("Failed to seed catalog", "error", err, "file", cfg.SeedFile)
			os.Exit(1)
		}
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Cookie: handler.CookieConfig{
			Name:   cfg.SessionCookieName,
			Secure: !cfg.IsDev(),
		},
	}, server.Dependencies{
		DBPool:   dbPool,
		Auth:     services.Auth,
		Recipes:  services.Recipes,
		Sessions: services.Sessions,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		DBPool: dbPool,
	})
}
