// Command storefront is a smoke binary that wires the SDK together:
// configuration, logging, tracing, persistence, the catalog client and
// the state stores. It fetches the featured products, pushes one into
// the cart and reports the totals.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/utafrali/storefront-sdk/catalog"
	"github.com/utafrali/storefront-sdk/config"
	"github.com/utafrali/storefront-sdk/logger"
	"github.com/utafrali/storefront-sdk/persist/memory"
	persistredis "github.com/utafrali/storefront-sdk/persist/redis"
	"github.com/utafrali/storefront-sdk/store"
	"github.com/utafrali/storefront-sdk/tracing"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New("storefront", cfg.LogLevel)
	log.Info("starting storefront smoke run",
		slog.String("environment", cfg.Environment),
		slog.String("api_base_url", cfg.APIBaseURL),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdown, err := tracing.Init(ctx, tracing.Config{
		ServiceName:  "storefront-sdk",
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SampleRate:   cfg.TraceSampleRate,
		Enabled:      cfg.TracingEnabled,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	var persister store.Persister
	var tokens catalog.TokenSource
	if cfg.RedisAddr != "" {
		client, err := persistredis.Dial(ctx, persistredis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() { _ = client.Close() }()
		persister = persistredis.NewStore(client)
		tokens = persistredis.NewTokenSource(client, "")
		log.Info("using redis persistence", slog.String("addr", cfg.RedisAddr))
	} else {
		persister = memory.New()
		log.Info("using in-memory persistence")
	}

	api := catalog.New(catalog.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
	}, tokens, log)

	cart := store.NewCartStore(ctx, persister, log)
	wishlist := store.NewWishlistStore(ctx, persister, log)
	session := store.NewSessionStore(ctx, persister, log)

	cart.Subscribe(func() {
		log.Info("cart changed",
			slog.Int("total_items", cart.TotalItems()),
			slog.Float64("total_price", cart.TotalPrice()),
		)
	})

	featured := api.GetFeaturedProducts(ctx)
	if !featured.Success {
		log.Warn("featured products unavailable", slog.String("error", featured.Error))
		return nil
	}
	log.Info("fetched featured products", slog.Int("count", len(featured.Data)))

	if len(featured.Data) > 0 {
		p := featured.Data[0]
		cart.AddItem(ctx, store.AddCartItemInput{
			ProductID:   p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Quantity:    1,
			Image:       firstOrEmpty(p.Images),
			MaxQuantity: p.Stock,
		})
		wishlist.AddItem(ctx, store.AddWishlistItemInput{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     firstOrEmpty(p.Images),
		})
	}

	log.Info("smoke run complete",
		slog.Int("cart_items", cart.TotalItems()),
		slog.Int("wishlist_items", len(wishlist.Items())),
		slog.Bool("authenticated", session.IsAuthenticated()),
	)
	return nil
}

func firstOrEmpty(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}
