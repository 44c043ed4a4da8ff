package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/muerroui/gsm-ma-achat-simple/internal/config"
	"github.com/muerroui/gsm-ma-achat-simple/internal/db"
	"github.com/muerroui/gsm-ma-achat-simple/internal/httpserver"
	"github.com/muerroui/gsm-ma-achat-simple/internal/logger"
	customerrepo "github.com/muerroui/gsm-ma-achat-simple/internal/repository/customer"
	orderrepo "github.com/muerroui/gsm-ma-achat-simple/internal/repository/order"
	productrepo "github.com/muerroui/gsm-ma-achat-simple/internal/repository/product"
	"github.com/muerroui/gsm-ma-achat-simple/internal/seed"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/cart"
	catalogsvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/catalog"
	customersvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/customer"
	ordersvc "github.com/muerroui/gsm-ma-achat-simple/internal/service/order"
	"github.com/muerroui/gsm-ma-achat-simple/internal/service/session"
)

func main() {
	cfg := config.FromEnv()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx := context.Background()

	var (
		products productrepo.Repository
		orders   orderrepo.Repository
		pool     *pgxpool.Pool
	)
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		p, err := db.Connect(ctx, cfg.DBConnString, db.Options{
			MaxConns:     cfg.DBMaxConns,
			ConnIdleTime: cfg.DBConnIdleTime,
			ConnLifetime: cfg.DBConnLifetime,
		})
		if err != nil {
			log.Fatal("connect to db", zap.Error(err))
		}
		defer p.Close()
		pool = p
		products = productrepo.NewPostgres(p)
		orders = orderrepo.NewPostgres(p)
	case config.BackendMemory:
		products = productrepo.NewMemory(seed.Products()...)
		orders = orderrepo.NewMemory(seed.Orders()...)
	default:
		log.Fatal("unknown store backend", zap.String("backend", cfg.StoreBackend))
	}

	// Customer accounts stay in memory on both backends; the demo account is
	// always available.
	customers := customerrepo.NewMemory(seed.Customers()...)

	policy := cart.Policy{
		EnforceStock:       cfg.EnforceStock,
		EnforceMinQuantity: cfg.EnforceMinQuantity,
	}
	sessions := session.NewManager(cfg.JWTSecret, cfg.SessionTTL, policy)

	janitorStop := make(chan struct{})
	defer close(janitorStop)
	sessions.StartJanitor(time.Minute, janitorStop)

	srv := httpserver.New(cfg.HTTPAddr, httpserver.Deps{
		Sessions:  sessions,
		Customers: customersvc.New(customers),
		Catalog:   catalogsvc.New(products),
		Orders:    ordersvc.New(orders),
		DB:        pool,
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting http server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("backend", cfg.StoreBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	} else {
		log.Info("server stopped")
	}
}
