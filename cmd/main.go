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

	"cloud.google.com/go/storage"
	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/suugaanle/qaamuus/config"
	"github.com/suugaanle/qaamuus/internal/container"
	"github.com/suugaanle/qaamuus/internal/infrastructure/kvstore"
	"github.com/suugaanle/qaamuus/internal/interface/middleware"
	"github.com/suugaanle/qaamuus/internal/router"
	"github.com/suugaanle/qaamuus/pkg/helpers"
	"github.com/suugaanle/qaamuus/pkg/mailer"
	"github.com/suugaanle/qaamuus/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Redis is optional; when enabled it backs rate limiting and can
	// serve as the storage backend
	var redisClient *redis.Client
	if cfg.RedisEnabled || cfg.StorageBackend == "redis" {
		redisClient = helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = redisClient.Close() }()
	}

	// Document store per configured backend
	store, err := kvstore.Open(ctx, cfg, logger, redisClient)
	if err != nil {
		log.Fatalf("failed to init %s store: %v", cfg.StorageBackend, err)
	}
	defer func() { _ = store.Close() }()

	// Optional Elasticsearch entry index
	var esClient *elasticsearch.Client
	if cfg.ESEnabled {
		esClient, err = helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
		if err != nil {
			log.Fatalf("failed to init elasticsearch client: %v", err)
		}
	}

	// GCS only when a backup bucket is configured
	var gcsClient *storage.Client
	if cfg.GCSBucket != "" {
		gcsClient, err = helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcsClient.Close() }()
	}

	// Email dispatch: simulated unless sending is enabled, queued when
	// RabbitMQ is configured, direct via Mailgun otherwise
	dispatcher, rabbitPub := buildMailer(cfg, logger)
	if rabbitPub != nil {
		defer rabbitPub.Close()
	}

	// JWT
	jwtManager := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.AccessTTL, cfg.RefreshTTL)

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetDocStore(store)
	container.SetRedis(redisClient)
	container.SetGCS(gcsClient)
	container.SetJWT(jwtManager)
	container.SetMailer(dispatcher)
	container.SetRabbitPub(rabbitPub)
	container.SetES(esClient)

	svcs := router.BuildServices()

	// Startup tasks: bootstrap accounts, seed the dictionary when empty,
	// drop stale verification codes
	if err := svcs.Accounts.Bootstrap(ctx); err != nil {
		log.Fatalf("bootstrap accounts: %v", err)
	}
	entries := svcs.Dictionary.Load(ctx)
	logger.WithField("entries", len(entries)).Info("dictionary ready")
	if dropped := svcs.Verification.SweepExpired(ctx); dropped > 0 {
		logger.WithField("dropped", dropped).Info("removed expired verification codes")
	}

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RealIP())
	r.Use(middleware.RequestIDMiddleware())
	// CORS
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled && cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	// Registry: auto-register modules using container
	reg := router.NewRegistry(r)
	router.InitModules(reg, svcs)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(http.ErrServerClosed, err) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func buildMailer(cfg *config.Config, logger *logrus.Logger) (mailer.Dispatcher, *helpers.RabbitPublisher) {
	if !cfg.MailSendEnabled {
		return mailer.NewSimulated(logger), nil
	}
	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			log.Fatalf("failed to connect to rabbitmq: %v", err)
		}
		return mailer.NewQueued(pub), pub
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
		logger.Warn("mail sending enabled but mailgun is not configured, falling back to simulated dispatch")
		return mailer.NewSimulated(logger), nil
	}
	return mailer.NewDirect(mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)), nil
}
