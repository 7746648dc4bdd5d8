package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/cambiove/exchange-api/internal/facades"
	"github.com/cambiove/exchange-api/internal/handlers"
	"github.com/cambiove/exchange-api/internal/jwt"
	"github.com/cambiove/exchange-api/internal/logger"
	"github.com/cambiove/exchange-api/internal/middlewares"
	"github.com/cambiove/exchange-api/internal/pricing"
	"github.com/cambiove/exchange-api/internal/realtime"
	"github.com/cambiove/exchange-api/internal/repositories"
	"github.com/cambiove/exchange-api/internal/services"

	_ "github.com/cambiove/exchange-api/docs"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment at startup.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int

	kafkaBrokers string
	kafkaTopic   string

	jwtSecretKey string
	jwtExpSecond int

	cacheTTLSecond int

	smtpAddr   string
	smtpFrom   string
	adminEmail string

	pushEndpoint string
	pushAPIKey   string
}

// @title exchange-api
// @version 1.0.0
// @description P2P currency exchange service: quotes, orders, chat, KYC
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		stdlog.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		stdlog.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT, and notification configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Kafka config
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "exchange-events")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Catalog cache config
	if cfg.cacheTTLSecond, err = strconv.Atoi(getEnv("CATALOG_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Notification config
	cfg.smtpAddr = getEnv("SMTP_ADDR", "")
	cfg.smtpFrom = getEnv("SMTP_FROM", "noreply@localhost")
	cfg.adminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.pushEndpoint = getEnv("PUSH_ENDPOINT", "")
	cfg.pushAPIKey = getEnv("PUSH_API_KEY", "")

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.pgHost, cfg.pgPort, cfg.pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password:     cfg.redisPassword,
		DB:           cfg.redisDB,
		PoolSize:     cfg.redisPoolSize,
		MinIdleConns: cfg.redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for the lifecycle event stream
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(cfg.kafkaBrokers, ",")...),
		Topic:    cfg.kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Realtime fan-out: broker publishes into Redis, hub serves websockets
	broker := realtime.NewBroker(rdb)
	hub := realtime.NewHub(rdb)
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go hub.Run(hubCtx)

	// Notification collaborators
	var mailer services.Mailer
	if cfg.smtpAddr != "" {
		mailer = facades.NewSMTPMailer(cfg.smtpAddr, cfg.smtpFrom, nil)
	}
	var pusher services.Pusher
	if cfg.pushEndpoint != "" {
		pusher = facades.NewHTTPPusher(cfg.pushEndpoint, cfg.pushAPIKey, nil)
	}

	// Initialize JWT service
	tokener := jwt.New(cfg.jwtSecretKey, time.Duration(cfg.jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	orderReadRepo := repositories.NewOrderReadRepository(db)
	orderWriteRepo := repositories.NewOrderWriteRepository(db, middlewares.GetTxFromContext)
	messageReadRepo := repositories.NewMessageReadRepository(db)
	messageWriteRepo := repositories.NewMessageWriteRepository(db)
	rateReadRepo := repositories.NewRateReadRepository(db)
	rateWriteRepo := repositories.NewRateWriteRepository(db)
	channelReadRepo := repositories.NewChannelReadRepository(db)
	channelWriteRepo := repositories.NewChannelWriteRepository(db)
	configRepo := repositories.NewConfigRepository(db)
	verificationReadRepo := repositories.NewVerificationReadRepository(db)
	verificationWriteRepo := repositories.NewVerificationWriteRepository(db)
	trustedRepo := repositories.NewTrustedRepository(db)
	catalogCache := repositories.NewCatalogCacheRepository(rdb, time.Duration(cfg.cacheTTLSecond)*time.Second)

	// Initialize services
	engine := pricing.NewEngine(channelReadRepo, rateReadRepo)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokener)
	quoteService := services.NewQuoteService(engine, configRepo)
	orderService := services.NewOrderService(userReadRepo, orderReadRepo, orderWriteRepo, engine, configRepo, broker, kafkaWriter)
	chatService := services.NewChatService(orderReadRepo, messageReadRepo, messageWriteRepo, broker)
	catalogService := services.NewCatalogService(rateReadRepo, rateWriteRepo, configRepo, channelReadRepo, channelWriteRepo, catalogCache, broker)
	verificationService := services.NewVerificationService(
		verificationReadRepo, verificationWriteRepo, userReadRepo,
		broker, mailer, pusher, kafkaWriter,
		cfg.adminEmail, "",
	)
	trustedService := services.NewTrustedService(trustedRepo, userReadRepo, broker)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Get("/channels", handlers.NewListChannelsHandler(catalogService))
		r.Get("/rates", handlers.NewListRatesHandler(catalogService))
		r.Post("/quote", handlers.NewQuoteHandler(quoteService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokener))

			r.With(middlewares.TxMiddleware(db)).Post("/orders", handlers.NewCreateOrderHandler(orderService))
			r.Get("/orders", handlers.NewListOrdersHandler(orderService))
			r.Get("/orders/{id}", handlers.NewGetOrderHandler(orderService))
			r.Post("/orders/{id}/messages", handlers.NewPostMessageHandler(chatService))
			r.Get("/orders/{id}/messages", handlers.NewListMessagesHandler(chatService))
			r.Post("/orders/{id}/confirm-payment", handlers.NewConfirmPaymentHandler(chatService))

			r.Post("/verification", handlers.NewSubmitVerificationHandler(verificationService))
			r.Get("/verification", handlers.NewGetVerificationHandler(verificationService))

			r.Post("/trusted/apply", handlers.NewTrustedApplyHandler(trustedService))
			r.Get("/trusted", handlers.NewGetTrustedProfileHandler(trustedService))

			r.Get("/ws", handlers.NewWSHandler(hub, orderReadRepo))

			// Admin routes
			r.Group(func(r chi.Router) {
				r.Use(middlewares.AdminOnly)

				r.Patch("/orders/{id}", handlers.NewUpdateOrderHandler(orderService))
				r.Patch("/verification/{id}", handlers.NewDecideVerificationHandler(verificationService))
				r.Patch("/trusted/{id}", handlers.NewTrustedReviewHandler(trustedService))

				r.Get("/admin/verifications", handlers.NewListPendingVerificationsHandler(verificationService))
				r.Put("/admin/rates/{currency}", handlers.NewUpsertRateHandler(catalogService))
				r.Get("/admin/config", handlers.NewGetConfigHandler(catalogService))
				r.Put("/admin/config", handlers.NewUpdateConfigHandler(catalogService))
				r.Post("/admin/channels", handlers.NewCreateChannelHandler(catalogService))
				r.Put("/admin/channels/{key}", handlers.NewUpdateChannelHandler(catalogService))
				r.Delete("/admin/channels/{key}", handlers.NewArchiveChannelHandler(catalogService))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
