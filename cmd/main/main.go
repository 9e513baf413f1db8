package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedback-main/internal/app"
	"feedback-main/internal/db"
	elastic "feedback-main/internal/elastic_search"
	"feedback-main/internal/etl"
	"feedback-main/internal/form"
	"feedback-main/internal/handlers"
	handlersForm "feedback-main/internal/handlers/form"
	handlersResponse "feedback-main/internal/handlers/response"
	handlersUser "feedback-main/internal/handlers/user"
	"feedback-main/internal/kafka"
	"feedback-main/internal/middleware"
	"feedback-main/internal/response"
	"feedback-main/internal/session"
	"feedback-main/internal/user"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// init logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := zapLogger.Sugar()
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			logger.Warnf("error to sync logger: %v", err)
		}
	}()

	// парсим конфиг
	c, err := app.NewConfig(app.ConfigPath())
	if err != nil {
		logger.Fatalf("error to parsing config: %v", err)
	}

	// init db
	database, err := db.Open(c.CfgDB, c.MaxOpenConns)
	if err != nil {
		logger.Fatalf("error to database start: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database, c.MigrationsPath, c.CfgDB.Database); err != nil {
		logger.Fatalf("error to apply migrations: %v", err)
	}

	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     c.CfgRedis.Addr,
		Password: c.CfgRedis.Password,
		DB:       c.CfgRedis.DB,
	})
	defer redisClient.Close()

	// init kafka
	producer := kafka.NewProducer(c.CfgKafka.Brokers, c.CfgKafka.Topic, logger)
	defer func() {
		if err := producer.Close(); err != nil {
			logger.Warnf("error to close kafka producer: %v", err)
		}
	}()

	// init elasticsearch
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: c.CfgES.Addresses,
	})
	if err != nil {
		logger.Fatalf("error to create elasticsearch client: %v", err)
	}
	esService := elastic.NewService(esClient, logger, c.CfgES.Index)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// без индекса API работает, падает только поиск
	if err := esService.EnsureIndex(ctx); err != nil {
		logger.Warnf("error to create search index: %v", err)
	}

	// init repository
	userRepository := user.NewUserDBRepository(database, logger)
	sessionRepository := session.NewSessionRepository(redisClient, logger, c.Secret, c.SessionDuration)
	formRepository := form.NewFormDBRepository(database, logger)
	responseRepository := response.NewResponseDBRepository(database, logger)

	// init etl
	pipeline := etl.NewPipeline(
		etl.NewPostgresExtractor(database, logger),
		etl.NewTransformer(logger),
		etl.NewElasticLoader(esService, logger, database),
		logger,
		c.ETLTimeout,
	)
	go pipeline.Run(ctx)

	// init handlers
	userHandlers := handlersUser.NewUserHandler(logger, userRepository, sessionRepository)
	formHandlers := handlersForm.NewFormHandler(logger, formRepository, esService)
	responseHandlers := handlersResponse.NewResponseHandler(logger, responseRepository, formRepository, producer)

	// init router
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/", handlers.APIInfo(logger)).Methods("GET")

	// Один subrouter на /api: у двух с одинаковым префиксом чужой метод на том же пути дает 405
	api := r.PathPrefix("/api").Subrouter()
	auth := middleware.Auth(sessionRepository, logger)
	withAuth := func(h http.HandlerFunc) http.Handler {
		return auth(h)
	}

	api.HandleFunc("/auth/register", userHandlers.Register).Methods("POST")
	api.HandleFunc("/auth/login", userHandlers.Login).Methods("POST")
	api.HandleFunc("/auth/logout", userHandlers.Logout).Methods("POST")
	api.Handle("/auth/me", withAuth(userHandlers.Me)).Methods("GET")

	api.HandleFunc("/forms/", formHandlers.List).Methods("GET")
	api.Handle("/forms/", withAuth(formHandlers.Create)).Methods("POST")
	api.HandleFunc("/forms/search", formHandlers.Search).Methods("GET")
	api.HandleFunc("/forms/{id}/", formHandlers.Get).Methods("GET")
	api.Handle("/forms/{id}/", withAuth(formHandlers.Update)).Methods("PUT")
	api.Handle("/forms/{id}/", withAuth(formHandlers.Patch)).Methods("PATCH")
	api.Handle("/forms/{id}/", withAuth(formHandlers.Delete)).Methods("DELETE")
	api.HandleFunc("/forms/{id}/questions/", formHandlers.Questions).Methods("GET")

	api.Handle("/responses/", withAuth(responseHandlers.List)).Methods("GET")
	api.HandleFunc("/responses/form/{form_id}/", responseHandlers.Submit).Methods("POST")
	api.Handle("/responses/form/{form_id}/responses/", withAuth(responseHandlers.ListByForm)).Methods("GET")
	api.Handle("/responses/form/{form_id}/export/", withAuth(responseHandlers.Export)).Methods("GET")

	logger.Infow("starting server",
		"type", "START",
		"addr", c.ServerPort,
	)

	srv := &http.Server{
		Addr:         c.ServerPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("can't start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("error to shutdown server: %v", err)
	}
}
