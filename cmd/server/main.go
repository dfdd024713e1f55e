// Command server runs the credit-lines disclosure service: a Kafka consumer
// reconciling counterparty broadcasts and an HTTP API over the resulting
// projection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"creditlines/internal/company"
	disclosureconsumer "creditlines/internal/disclosure/consumer"
	"creditlines/internal/disclosure/handler"
	"creditlines/internal/disclosure/metrics"
	"creditlines/internal/disclosure/notifications"
	"creditlines/internal/disclosure/outbound"
	"creditlines/internal/disclosure/processor"
	"creditlines/internal/disclosure/requests"
	"creditlines/internal/disclosure/service"
	"creditlines/internal/disclosure/store/disclosed"
	requeststore "creditlines/internal/disclosure/store/request"
	httpapi "creditlines/internal/http"
	"creditlines/internal/platform/config"
	"creditlines/internal/platform/httpserver"
	"creditlines/internal/platform/kafka/consumer"
	"creditlines/internal/platform/kafka/producer"
	"creditlines/internal/platform/logger"
	"creditlines/internal/platform/postgres"
	"creditlines/internal/platform/redis"
	id "creditlines/pkg/domain"
	"creditlines/pkg/platform/middleware/auth"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.Postgres)
	if err != nil {
		log.Error("postgres connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	var redisCmd goredis.Cmdable
	if redisClient != nil {
		defer redisClient.Close()
		redisCmd = redisClient
	}

	if err := consumer.EnsureTopics(ctx, cfg.Kafka.Brokers,
		cfg.Kafka.CreditLinesTopic, cfg.Kafka.NotificationsTopic, cfg.Kafka.RequestsTopic); err != nil {
		log.Error("kafka topic setup failed", "error", err)
		os.Exit(1)
	}

	kafkaProducer, err := producer.New(cfg.Kafka.Brokers)
	if err != nil {
		log.Error("kafka producer setup failed", "error", err)
		os.Exit(1)
	}
	defer kafkaProducer.Close()

	registryClient := company.NewRegistryClient(cfg.RegistryBaseURL, company.WithClientLogger(log))
	registry := company.NewCachedRegistry(registryClient, redisCmd, config.RegistryCacheTTL, log)

	positionStore := disclosed.NewPostgres(db)
	reqStore := requeststore.NewPostgres(db)

	factory := notifications.NewFactory()
	notifier := outbound.NewNotificationPublisher(kafkaProducer, cfg.Kafka.NotificationsTopic)
	requestClient := outbound.NewRequestPublisher(kafkaProducer, cfg.Kafka.RequestsTopic)

	pipelineMetrics := metrics.New()

	requestService := requests.New(reqStore, registry, factory, notifier, requestClient,
		id.StaticID(cfg.CompanyStaticID), requests.WithLogger(log))
	positionService := service.New(positionStore,
		service.WithLogger(log),
		service.WithRequestService(requestService),
	)

	shareProcessor, err := processor.New(processor.ShareVariant{}, positionStore, registry, factory, notifier,
		processor.WithLogger(log), processor.WithMetrics(pipelineMetrics))
	if err != nil {
		log.Error("processor setup failed", "error", err)
		os.Exit(1)
	}
	revokeProcessor, err := processor.New(processor.RevokeVariant{}, positionStore, registry, factory, notifier,
		processor.WithLogger(log), processor.WithMetrics(pipelineMetrics))
	if err != nil {
		log.Error("processor setup failed", "error", err)
		os.Exit(1)
	}

	topicHandler := disclosureconsumer.NewTopicHandler([]processor.EventProcessor{
		shareProcessor,
		revokeProcessor,
		processor.NewDeclineProcessor(requestService),
	}, log)

	kafkaConsumer, err := consumer.New(consumer.Config{
		Brokers: cfg.Kafka.Brokers,
		Group:   cfg.Kafka.Group,
		Topics:  []string{cfg.Kafka.CreditLinesTopic},
	}, topicHandler, log)
	if err != nil {
		log.Error("kafka consumer setup failed", "error", err)
		os.Exit(1)
	}

	disclosureHandler := handler.New(positionService, requestService, log)
	router := httpapi.NewRouter(disclosureHandler, auth.NewJWTValidator([]byte(cfg.JWTSigningKey)), log)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		log.Info("starting kafka consumer", "topic", cfg.Kafka.CreditLinesTopic, "group", cfg.Kafka.Group)
		err := kafkaConsumer.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}
