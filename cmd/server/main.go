package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_api/internal/cache"
	"github.com/Skotchmaster/shop_api/internal/config"
	"github.com/Skotchmaster/shop_api/internal/db"
	"github.com/Skotchmaster/shop_api/internal/es"
	"github.com/Skotchmaster/shop_api/internal/hash"
	"github.com/Skotchmaster/shop_api/internal/httpserver"
	"github.com/Skotchmaster/shop_api/internal/logging"
	"github.com/Skotchmaster/shop_api/internal/middleware"
	"github.com/Skotchmaster/shop_api/internal/mykafka"
	"github.com/Skotchmaster/shop_api/internal/repo"
	"github.com/Skotchmaster/shop_api/internal/service"
)

type eventProducer interface {
	service.EventPublisher
	Close() error
}

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := logging.New(cfg.LogLevel, cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	r := repo.New(gdb)

	var items service.ItemStore = r
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis_unavailable", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		items = cache.NewCachedItemStore(r, cache.NewRedisItemCache(rdb, cfg.ItemCacheTTL))
	}

	var searcher service.ItemSearcher
	var indexer service.ItemIndexer
	if cfg.ESURL != "" {
		client, err := es.NewClient(context.Background(), cfg)
		if err != nil {
			logger.Warn("es_unavailable", "url", cfg.ESURL, "error", err)
		} else {
			idx := es.NewItemIndex(client, cfg.ESIndex)
			searcher, indexer = idx, idx
		}
	}

	var producer eventProducer = mykafka.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		p, err := mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		producer = p
	}

	userSvc := service.NewUserService(r, r, hash.NewBcryptHasher(cfg.BcryptCost), producer)
	itemSvc := service.NewItemService(items, r, searcher, r, indexer)
	cartSvc := service.NewCartService(r, items, r, producer)
	orderSvc := service.NewOrderService(r, r, producer)

	if cfg.SeedCatalog {
		seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := itemSvc.SeedCatalog(logging.IntoContext(seedCtx, logger)); err != nil {
			logger.Error("seed_catalog_error", "error", err)
		}
		cancel()
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpserver.NewRequestValidator()
	e.Use(middleware.Common(logger)...)

	httpserver.Register(e, &httpserver.Deps{
		UserHandler:  &httpserver.UserHTTP{Svc: userSvc},
		ItemHandler:  &httpserver.ItemHTTP{Svc: itemSvc},
		CartHandler:  &httpserver.CartHTTP{Svc: cartSvc},
		OrderHandler: &httpserver.OrderHTTP{Svc: orderSvc},
		Ready:        readiness(gdb),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info("server_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown_error", "error", err)
	}
	closers := []closer{{"kafka", producer.Close}}
	if rdb != nil {
		closers = append(closers, closer{"redis", rdb.Close})
	}
	closers = append(closers, closer{"db", func() error { return db.Close(gdb) }})
	closeAll(logger, closers...)

	logger.Info("server_stopped")
}

func readiness(gdb *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return db.Ping(pingCtx, gdb)
	}
}

type closer struct {
	name  string
	close func() error
}

// closeAll runs every closer in order and logs the ones that fail.
func closeAll(l *slog.Logger, closers ...closer) {
	for _, c := range closers {
		if err := c.close(); err != nil {
			l.Error("close_error", "resource", c.name, "error", err)
		}
	}
}
