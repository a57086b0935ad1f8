package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/deepdating/deep-dating-api/internal/handlers"
	"github.com/deepdating/deep-dating-api/internal/jwt"
	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/middlewares"
	"github.com/deepdating/deep-dating-api/internal/repositories"
	"github.com/deepdating/deep-dating-api/internal/services"
	"github.com/deepdating/deep-dating-api/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"

	_ "github.com/deepdating/deep-dating-api/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// config holds all runtime configuration, resolved once at startup and
// passed explicitly into each component.
type config struct {
	AppHost        string
	AppPort        string
	AppEnv         string
	LogLevel       string
	FrontendOrigin string
	UploadDir      string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDatabase     string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaAddr  string
	KafkaTopic string

	JWTSecretKey string
	JWTExpSecond int
}

// @title Deep Dating API
// @version 1.0.0
// @description REST backend for a swipe-style dating application
// @host localhost:4000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
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

// parseConfig loads environment variables from a file and resolves the
// application configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		val := getEnv(key, strconv.Itoa(defaultValue))
		return strconv.Atoi(val)
	}

	cfg := &config{
		AppHost:        getEnv("APP_HOST", "0.0.0.0"),
		AppPort:        getEnv("APP_PORT", "4000"),
		AppEnv:         getEnv("APP_ENV", "production"),
		LogLevel:       getEnv("APP_LOG_LEVEL", "info"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGUser:     getEnv("POSTGRES_USER", "user"),
		PGPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PGDatabase: getEnv("POSTGRES_DB", "deepdating"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaAddr:  getEnv("KAFKA_ADDR", ""),
		KafkaTopic: getEnv("KAFKA_TOPIC", "deepdating.events"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
	}

	var err error
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	if cfg.JWTExpSecond, err = getEnvInt("JWT_EXP_SECOND", 7*24*3600); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDatabase)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for domain events; nil when no broker is configured.
	var events services.EventWriter
	if cfg.KafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		events = writer
		logger.Log.Infof("Publishing events to %s topic %s", cfg.KafkaAddr, cfg.KafkaTopic)
	}

	// Avatar file store
	avatars, err := storage.NewAvatarStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Fatal("upload dir unavailable:", err)
	}

	// Initialize token service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	likeRepo := repositories.NewLikeRepository(db)
	passRepo := repositories.NewPassRepository(db)
	blockRepo := repositories.NewBlockRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)
	discoveryService := services.NewDiscoveryService(userReadRepo, userReadRepo)
	swipeService := services.NewSwipeService(likeRepo, passRepo, matchRepo, events)
	blockService := services.NewBlockService(blockRepo)
	matchService := services.NewMatchService(matchRepo)
	conversationService := services.NewConversationService(matchRepo, blockRepo, messageRepo, events)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.FrontendOrigin, "http://localhost:5173"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.Use(middlewares.Logging(logger.Log))
	r.Use(middlewares.RateLimit(rdb, 120, time.Minute))

	// Public routes
	r.Get("/", handlers.NewRootHandler())
	r.Get("/health", handlers.NewHealthHandler())
	r.Get("/db-check", handlers.NewDBCheckHandler(db))
	r.Post("/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))
	r.Get("/uploads/{file}", handlers.NewServeUploadHandler(avatars.Dir()))

	// Protected routes
	auth := middlewares.Auth(tokens)
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Get("/users/me", handlers.NewGetMeHandler(profileService))
		r.Put("/users/me", handlers.NewUpdateMeHandler(profileService))
		r.Get("/users/browse", handlers.NewBrowseHandler(discoveryService))
		r.With(middlewares.DevOnly(cfg.AppEnv)).
			Put("/users/dev/{id}/avatar", handlers.NewDevSetAvatarHandler(profileService))

		r.Post("/likes/{userId}", handlers.NewLikeHandler(swipeService))
		r.Get("/likes/me/outgoing", handlers.NewListLikesHandler(swipeService))
		r.Delete("/likes/me/reset", handlers.NewResetLikesHandler(swipeService))

		r.Post("/passes/{userId}", handlers.NewPassHandler(swipeService))
		r.Get("/passes/me", handlers.NewListPassesHandler(swipeService))
		r.Delete("/passes/{userId}", handlers.NewUndoPassHandler(swipeService))

		r.Post("/blocks/{userId}", handlers.NewBlockHandler(blockService))
		r.Get("/blocks/me", handlers.NewListBlocksHandler(blockService))
		r.Delete("/blocks/{userId}", handlers.NewUnblockHandler(blockService))

		r.Get("/matches/me", handlers.NewListMatchesHandler(matchService))

		r.Get("/messages/inbox", handlers.NewInboxHandler(conversationService))
		r.Get("/messages/{matchId}", handlers.NewFetchMessagesHandler(conversationService))
		r.Post("/messages/{matchId}", handlers.NewSendMessageHandler(conversationService))

		r.Post("/uploads/avatar", handlers.NewAvatarUploadHandler(avatars, profileService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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
