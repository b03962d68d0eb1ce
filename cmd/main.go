package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/city_command_center/internal/config"
	"github.com/shenikar/city_command_center/internal/generator"
	v1 "github.com/shenikar/city_command_center/internal/handler/http/v1"
	"github.com/shenikar/city_command_center/internal/notify"
	"github.com/shenikar/city_command_center/internal/repository"
	"github.com/shenikar/city_command_center/internal/scheduler"
	"github.com/shenikar/city_command_center/internal/service"
	"github.com/shenikar/city_command_center/internal/stream"
	"github.com/shenikar/city_command_center/internal/webhook"
	"github.com/shenikar/city_command_center/pkg/logger"
	"github.com/shenikar/city_command_center/pkg/postgres"
	redisclient "github.com/shenikar/city_command_center/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/city_command_center/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title City Command Center API
// @version 1.0
// @description Incident, force and map focus coordination for a city command center.
// @host localhost:8080
// @BasePath /api/v1
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newGenerator создает генератор с фиксированным или случайным зерном
func newGenerator(cfg *config.Config, log *logrus.Logger) (*generator.Generator, error) {
	vocab := generator.DefaultVocabulary()
	if cfg.VocabularyFile != "" {
		loaded, err := generator.LoadVocabulary(cfg.VocabularyFile)
		if err != nil {
			return nil, err
		}
		vocab = loaded
		log.WithField("file", cfg.VocabularyFile).Info("Vocabulary loaded")
	}

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Info("Generator seeded")
	return generator.New(rand.New(rand.NewSource(seed)), vocab), nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gen, err := newGenerator(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}

	// Приемники уведомлений: лог и live-поток всегда
	hub := stream.NewHub(log, stream.DefaultHistorySize)
	sinks := notify.NewFanout(log, notify.NewLogSink(log), hub)
	var history v1.NotificationHistory = hub

	// Журнал уведомлений в PostgreSQL
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		journal := repository.NewNotificationJournal(dbpool, log)
		sinks.Add(journal)
		history = journal
	}

	// Очередь уведомлений в Redis и доставка во внешний вебхук
	var webhookWorker *webhook.NotificationWorker
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		sinks.Add(webhook.NewRedisNotificationPublisher(redisClient, log))

		webhookWorker = webhook.NewNotificationWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	}

	// Инициализация хранилищ стартовыми данными
	incidentRepo := repository.NewIncidentRepository()
	if err := repository.SeedIncidents(incidentRepo, gen.Incidents(cfg.SeedIncidents)); err != nil {
		log.Fatalf("Failed to seed incidents: %v", err)
	}
	forceRepo, err := repository.NewForceRepository(gen.Forces(cfg.SeedForces), gen.Divisions())
	if err != nil {
		log.Fatalf("Failed to seed forces: %v", err)
	}
	log.WithFields(logrus.Fields{
		"incidents": cfg.SeedIncidents,
		"forces":    cfg.SeedForces,
	}).Info("Stores seeded")

	// Инициализация сервисов
	vocab := gen.Vocabulary()
	incidentService := service.NewIncidentService(incidentRepo, gen, sinks, log)
	forceService := service.NewForceService(forceRepo, sinks, log)
	mapService := service.NewMapService(vocab.Center, log)
	mapService.Watch(hub)
	safeZoneService := service.NewSafeZoneService(vocab.SafeZones, vocab.EvacuationRoutes, mapService, log)
	eventService := service.NewEventFeedService(vocab.DetectedEvents, incidentService, gen, log)

	// Фоновая генерация инцидентов
	injector := service.NewInjector(incidentService, gen, scheduler.NewTicker(), cfg.InjectInterval, cfg.InjectProbability, log)
	injector.Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Dependencies{
		Incidents: incidentService,
		Forces:    forceService,
		Maps:      mapService,
		SafeZones: safeZoneService,
		Events:    eventService,
		History:   history,
		Points:    gen,
		Hub:       hub,
	}, log)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	api.Use(v1.RateLimitMiddleware(v1.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst), log))
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	injector.Stop()
	hub.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	cancel()
	if webhookWorker != nil {
		select {
		case <-webhookWorker.Done():
		case <-shutdownCtx.Done():
			log.Warn("Notification worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
