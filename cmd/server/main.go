package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/alisha-attire/storefront/internal/catalog"
	"github.com/alisha-attire/storefront/internal/config"
	"github.com/alisha-attire/storefront/internal/es"
	"github.com/alisha-attire/storefront/internal/handlers"
	"github.com/alisha-attire/storefront/internal/logging"
	"github.com/alisha-attire/storefront/internal/mykafka"
	"github.com/alisha-attire/storefront/internal/session"
	httpserver "github.com/alisha-attire/storefront/internal/transport/http"
)

const (
	sessionTTL    = 2 * time.Hour
	sweepInterval = 10 * time.Minute
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("catalog db init error: %v", err)
	}

	repo := catalog.NewRepo(db)
	if err := repo.Seed(context.Background()); err != nil {
		log.Fatalf("catalog seed error: %v", err)
	}

	esClient, err := es.NewClient(configuration)
	if err != nil {
		log.Fatal(err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	sessions := session.NewManager([]byte(configuration.SESSION_SECRET), sessionTTL)
	janitorCtx, janitorStop := context.WithCancel(logging.IntoContext(context.Background(), logger))
	go sessions.Run(janitorCtx, sweepInterval)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())

	deps := httpserver.Deps{
		Sessions:        sessions,
		ProductHandler:  &handlers.ProductHandler{Repo: repo},
		CartHandler:     &handlers.CartHandler{Repo: repo, Producer: producer},
		CheckoutHandler: &handlers.CheckoutHandler{Producer: producer},
		SearchHandler:   handlers.NewSearchHandler(esClient, configuration.ES_INDEX, repo),
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "err", err)
		}
	}()
	logger.Info("storefront listening", "port", configuration.PORT)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	janitorStop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "err", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "err", err)
		}
	} else {
		logger.Error("db() error", "err", err)
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "err", err)
	}

	logger.Info("shutdown complete")
}
