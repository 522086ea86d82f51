package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bagstore/internal/cache"
	"bagstore/internal/checkout"
	"bagstore/internal/collection"
	"bagstore/internal/config"
	"bagstore/internal/db"
	"bagstore/internal/handler"
	"bagstore/internal/logger"
	"bagstore/internal/middleware"
	"bagstore/internal/product"
	"bagstore/internal/review"
	"bagstore/internal/storefront"

	"go.uber.org/zap"
)

const (
	shutdownTimeout        = 5 * time.Second
	limiterCleanupInterval = time.Minute
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv, cfg.LogLevel)
	defer logger.Sync()
	log := logger.L()

	productRepo, collectionRepo, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		log.Fatal("failed to open catalog", zap.String("source", cfg.CatalogSource), zap.Error(err))
	}
	defer closeCatalog()

	limiter := middleware.NewLimiter(cfg.InternalSecretKey)
	go limiter.Cleanup(ctx, limiterCleanupInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           setupRouter(cfg, productRepo, collectionRepo, limiter),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("🚀 storefront API running",
			zap.String("addr", srv.Addr),
			zap.String("catalog", cfg.CatalogSource),
			zap.String("env", cfg.AppEnv),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped unexpectedly", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openCatalog returns the repositories for the configured catalog source and
// a func releasing whatever they hold.
func openCatalog(ctx context.Context, cfg *config.Config) (product.Repository, collection.Repository, func(), error) {
	if cfg.CatalogSource == config.SourcePostgres {
		database, err := db.NewDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return product.NewRepository(database),
			collection.NewRepository(database),
			func() { _ = database.Close() },
			nil
	}

	return product.NewJSONRepository(cfg.CatalogDir),
		collection.NewJSONRepository(cfg.CatalogDir),
		func() {},
		nil
}

func setupRouter(
	cfg *config.Config,
	productRepo product.Repository,
	collectionRepo collection.Repository,
	limiter *middleware.Limiter,
) http.Handler {
	store := cache.New(cfg.CatalogCacheSize, cfg.CatalogCacheTTL)

	productSvc := product.NewService(product.NewCachedRepository(productRepo, store))
	collectionSvc := collection.NewService(collection.NewCachedRepository(collectionRepo, store), productSvc)
	storefrontSvc := storefront.NewService(productSvc, cfg.StoreLang)
	checkoutSvc := checkout.NewService(productSvc, checkout.Options{
		WhatsAppNumber: cfg.WhatsAppNumber,
		StoreURL:       cfg.StoreURL,
		Lang:           cfg.StoreLang,
	})

	static, err := review.LoadFile(cfg.ReviewsFile)
	if err != nil {
		logger.L().Warn("using built-in reviews", zap.String("file", cfg.ReviewsFile), zap.Error(err))
		static = review.DefaultReviews()
	}
	var live review.Fetcher
	if cfg.GooglePlacesAPIKey != "" {
		live = review.NewCachedFetcher(review.NewPlacesClient(cfg.GooglePlacesAPIKey, cfg.GooglePlaceID), store)
	}
	reviewSvc := review.NewService(live, static)

	return handler.NewRouter(handler.Deps{
		Products:           productSvc,
		Collections:        collectionSvc,
		Storefront:         storefrontSvc,
		Checkout:           checkoutSvc,
		Reviews:            reviewSvc,
		Cache:              store,
		Limiter:            limiter,
		RevalidationSecret: cfg.RevalidationSecret,
		AdminJWTSecret:     cfg.AdminJWTSecret,
		AllowedOrigins:     cfg.AllowedOrigins,
	})
}
