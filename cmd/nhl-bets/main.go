package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Slim0909/nhl-bets/adapters/nhlstats"
	"github.com/Slim0909/nhl-bets/adapters/theoddsapi"
	"github.com/Slim0909/nhl-bets/internal/config"
	"github.com/Slim0909/nhl-bets/internal/handlers"
	"github.com/Slim0909/nhl-bets/internal/registry"
	"github.com/Slim0909/nhl-bets/internal/scheduler"
	"github.com/Slim0909/nhl-bets/internal/teamcache"
	"github.com/Slim0909/nhl-bets/sports/icehockey_nhl"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration from .env, YAML file and environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Team cache store: Redis when configured, memory otherwise
	var store teamcache.Store = teamcache.NewMemoryStore()
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			fmt.Printf("invalid REDIS_URL: %v\n", err)
			os.Exit(1)
		}

		redisClient := redis.NewClient(opts)
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			fmt.Printf("failed to connect to Redis: %v\n", err)
			os.Exit(1)
		}

		store = teamcache.NewRedisStore(redisClient, teamcache.DefaultRedisKey)
		fmt.Println("✓ Connected to Redis (team cache)")
	} else {
		fmt.Println("✓ Using in-memory team cache")
	}

	// Initialize upstream adapters
	odds := theoddsapi.NewClient(cfg.Odds.APIKey,
		theoddsapi.WithBaseURL(cfg.Odds.BaseURL),
		theoddsapi.WithTimeout(cfg.Odds.Timeout),
	)
	if odds.HasKey() {
		fmt.Println("✓ Initialized The Odds API adapter")
	} else {
		fmt.Println("⚠ THEODDSAPI_KEY not set, odds routes will answer 500")
	}

	stats := nhlstats.New(cfg.NHL.BaseURL, cfg.NHL.Timeout)
	fmt.Println("✓ Initialized NHL stats adapter")

	teams := teamcache.NewDirectory(stats, store, cfg.Teams.CacheTTL)

	// Initialize sport registry and register active sports
	sportRegistry := registry.NewSportRegistry()

	// Register NHL
	if err := sportRegistry.Register(icehockey_nhl.NewModule()); err != nil {
		fmt.Printf("failed to register NHL module: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Registered %d sport(s)\n", sportRegistry.Count())

	// Background team refresh
	refresher := scheduler.NewRefresher(teams, cfg.Teams.RefreshInterval)
	refresher.Start(ctx)
	if refresher.Enabled() {
		fmt.Printf("✓ Team refresh every %v\n", cfg.Teams.RefreshInterval)
	}

	h := handlers.NewHandler(odds, stats, teams, sportRegistry)

	server := &http.Server{
		Addr:         cfg.Port,
		Handler:      handlers.NewRouter(h, cfg.CORSOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Printf("server error: %v\n", err)
			os.Exit(1)
		}
	}()

	fmt.Printf("✓ nhl-bets listening on %s\n", cfg.Port)
	fmt.Printf("  Team cache TTL: %v\n", cfg.Teams.CacheTTL)
	fmt.Println()

	// Show registered sports
	for _, sport := range sportRegistry.GetAll() {
		fmt.Printf("  [%s]\n", sport.GetDisplayName())
		fmt.Printf("    Regions: %v\n", sport.GetRegions())
		fmt.Printf("    Markets: %v\n", sport.GetFeaturedMarkets())
		fmt.Printf("    Window: %dh (max %dh)\n", sport.GetDefaultWindowHours(), sport.GetMaxWindowHours())
	}
	fmt.Println()
	for _, route := range handlers.Routes() {
		fmt.Printf("  %s\n", route)
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n✓ Shutting down gracefully...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	cancel()
	refresher.Stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Printf("✗ Shutdown failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✓ nhl-bets stopped")
}
