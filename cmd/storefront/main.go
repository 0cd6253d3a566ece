package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/ateliershop/storefront/internal/cart/app"
	cartadapter "github.com/ateliershop/storefront/internal/cart/infra/adapter"
	"github.com/ateliershop/storefront/internal/cart/infra/localstore"
	cartrest "github.com/ateliershop/storefront/internal/cart/rest"

	catalogapp "github.com/ateliershop/storefront/internal/catalog/app"
	"github.com/ateliershop/storefront/internal/catalog/infra/httpsource"
	catalogrest "github.com/ateliershop/storefront/internal/catalog/rest"

	checkoutapp "github.com/ateliershop/storefront/internal/checkout/app"
	"github.com/ateliershop/storefront/internal/checkout/infra/simulated"
	checkoutrest "github.com/ateliershop/storefront/internal/checkout/rest"

	contactapp "github.com/ateliershop/storefront/internal/contact/app"
	"github.com/ateliershop/storefront/internal/contact/infra/logsink"
	contactrest "github.com/ateliershop/storefront/internal/contact/rest"

	wishlistapp "github.com/ateliershop/storefront/internal/wishlist/app"
	wishlistrest "github.com/ateliershop/storefront/internal/wishlist/rest"

	"github.com/ateliershop/storefront/pkg/config"
	"github.com/ateliershop/storefront/pkg/logger"
	"github.com/ateliershop/storefront/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "storefront", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	store, err := localstore.Open(cfg.StorePath)
	if err != nil {
		log.Error("slot store open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer store.Close()

	// Catalog
	source := httpsource.New(cfg.CatalogURL, cfg.CatalogTimeout)
	catalogSvc := catalogapp.NewService(source, log)

	// Cart
	cartSvc := cartapp.NewService(store, cartadapter.NewCatalogServiceReader(catalogSvc), log)

	// Checkout
	gateway := simulated.New(log, 300*time.Millisecond)
	checkoutSvc := checkoutapp.NewService(cartSvc, gateway, log)

	// Wishlist + contact
	wishlistSvc := wishlistapp.NewService(store, log)
	contactSvc := contactapp.NewService(logsink.New(log), log)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	api := r.Group("/api")
	catalogrest.NewHandler(catalogSvc).Register(api)
	cartrest.NewHandler(cartSvc).Register(api)
	checkoutrest.NewHandler(checkoutSvc).Register(api)
	wishlistrest.NewHandler(wishlistSvc).Register(api)
	contactrest.NewHandler(contactSvc).Register(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// Load once; readers block until this resolves. Failure falls
		// back to the built-in catalog inside Load.
		catalogSvc.Load(gctx)
		return nil
	})

	g.Go(func() error {
		log.Info("http server starting", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown requested")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("run group error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}
