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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	"github.com/sbilibin2017/gw-recipe-generator/docs"
	"github.com/sbilibin2017/gw-recipe-generator/internal/assistant"
	"github.com/sbilibin2017/gw-recipe-generator/internal/facades"
	"github.com/sbilibin2017/gw-recipe-generator/internal/handlers"
	"github.com/sbilibin2017/gw-recipe-generator/internal/jwt"
	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
	"github.com/sbilibin2017/gw-recipe-generator/internal/metrics"
	"github.com/sbilibin2017/gw-recipe-generator/internal/middlewares"
	"github.com/sbilibin2017/gw-recipe-generator/internal/migrations"
	"github.com/sbilibin2017/gw-recipe-generator/internal/models"
	"github.com/sbilibin2017/gw-recipe-generator/internal/repositories"
	"github.com/sbilibin2017/gw-recipe-generator/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// apiKeyPlaceholder is the value shipped in the sample env file; it counts as no key.
const apiKeyPlaceholder = "your_openai_api_key_here"

// config holds everything read from the environment at startup.
type config struct {
	AppHost    string
	AppPort    string
	AppEnv     string
	LogLevel   string
	CORSOrigin string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGSSLMode      string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost      string // empty disables the ingredient cache
	RedisPort      int
	RedisDB        int
	RedisPassword  string
	RedisExpSecond int

	KafkaBrokers []string // empty disables recipe events
	KafkaTopic   string

	OpenAIAPIKey  string // empty selects the mock assistant
	OpenAIBaseURL string
	OpenAIModel   string

	JWTSecretKey string
	JWTExpSecond int

	AIRateLimitRPS   float64
	AIRateLimitBurst int
}

// @title AI Recipe Generator API
// @version 1.0.0
// @description Suggests recipes for the ingredients at hand, keeps a per-user history and tells stories about dishes
// @host localhost:5000
// @BasePath /api
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

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, completion provider and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "0.0.0.0")
	cfg.AppPort = getEnv("APP_PORT", "5000")
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.CORSOrigin = getEnv("APP_CORS_ORIGIN", "*")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "recipe_generator")
	cfg.PGSSLMode = getEnv("POSTGRES_SSLMODE", "disable")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "10")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "5")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	if cfg.RedisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "recipe.generated")

	// Completion provider config
	cfg.OpenAIAPIKey = getEnv("OPENAI_API_KEY", "")
	if cfg.OpenAIAPIKey == apiKeyPlaceholder {
		cfg.OpenAIAPIKey = ""
	}
	cfg.OpenAIBaseURL = getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	cfg.OpenAIModel = getEnv("OPENAI_MODEL", "gpt-3.5-turbo")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "your_jwt_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", strconv.Itoa(int(jwt.DefaultExpiration.Seconds())))); err != nil {
		return
	}

	// Rate limit on the routes that call the completion provider
	if cfg.AIRateLimitRPS, err = strconv.ParseFloat(getEnv("AI_RATE_LIMIT_RPS", "2"), 64); err != nil {
		return
	}
	if cfg.AIRateLimitBurst, err = strconv.Atoi(getEnv("AI_RATE_LIMIT_BURST", "5")); err != nil {
		return
	}

	return
}

// newAssistant picks the LLM-backed assistant when an API key is configured
// and the deterministic mock otherwise.
func newAssistant(cfg config) assistant.Assistant {
	if cfg.OpenAIAPIKey == "" {
		logger.Log.Warn("OPENAI_API_KEY is not set, using mock assistant")
		return assistant.NewMock()
	}
	logger.Log.Infow("using completion provider", "base_url", cfg.OpenAIBaseURL, "model", cfg.OpenAIModel)
	return assistant.NewLLM(facades.NewChatCompletionFacade(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel))
}

// newAILimiter returns a fresh budget for one group of completion calls.
func newAILimiter(cfg config) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.AIRateLimitRPS), cfg.AIRateLimitBurst)
}

// run initializes the logger, database, optional Redis and Kafka, and the HTTP server.
// The listener only starts once migrations and seeding are done.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.AppEnv); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB, cfg.PGSSLMode)
	log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Schema and seed
	if err := migrations.Up(db.DB, cfg.PGDB); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	ingredientReadRepo := repositories.NewIngredientReadRepository(db)
	ingredientWriteRepo := repositories.NewIngredientWriteRepository(db)

	if cfg.AppEnv != "production" {
		n, err := ingredientWriteRepo.SeedIfEmpty(ctx, models.SeedIngredients)
		if err != nil {
			return fmt.Errorf("ingredient seeding failed: %w", err)
		}
		if n > 0 {
			log.Infow("Ingredient catalog seeded", "count", n)
		}
	}

	// Connect to Redis
	var ingredientCache services.IngredientCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		ingredientCache = repositories.NewIngredientCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	} else {
		log.Info("REDIS_HOST is not set, ingredient cache disabled")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           5 * time.Second,
			AllowAutoTopicCreation: true,
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Errorw("Kafka writer close error", "error", err)
			}
		}()
		kafkaWriter = w
	} else {
		log.Info("KAFKA_BROKERS is not set, recipe events disabled")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	recipeReadRepo := repositories.NewRecipeReadRepository(db)
	recipeWriteRepo := repositories.NewRecipeWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	asst := newAssistant(cfg)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	catalogService := services.NewCatalogService(ingredientReadRepo, ingredientWriteRepo, ingredientCache, asst, newAILimiter(cfg))
	recipeService := services.NewRecipeService(recipeWriteRepo, recipeReadRepo, asst, kafkaWriter)
	storyService := services.NewStoryService(asst)

	// Middlewares
	txMiddleware := middlewares.TxMiddleware(db)
	optionalAuth := middlewares.AuthMiddleware(tokens, false)
	requiredAuth := middlewares.AuthMiddleware(tokens, true)
	generateLimit := middlewares.RateLimitMiddleware(newAILimiter(cfg))
	storyLimit := middlewares.RateLimitMiddleware(newAILimiter(cfg))

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.CORS(cfg.CORSOrigin))
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/", handlers.NewRootHandler())
	r.Handle("/metrics", metrics.Handler())
	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.With(txMiddleware).Post("/oauth-login", handlers.NewOAuthLoginHandler(authService))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/ingredients", handlers.NewIngredientsHandler(catalogService))
		r.Get("/ingredients/search", handlers.NewIngredientSearchHandler(catalogService))

		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.With(generateLimit).Post("/recipe/generate", handlers.NewGenerateRecipeHandler(recipeService))
			r.With(storyLimit).Post("/recipe/generate-story", handlers.NewGenerateStoryHandler(storyService))
		})

		r.Group(func(r chi.Router) {
			r.Use(requiredAuth)
			r.Get("/history", handlers.NewHistoryHandler(recipeService))
			r.With(txMiddleware).Post("/recipe/{id}/favorite", handlers.NewFavoriteHandler(recipeService))
		})
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	recipeService.Wait()

	log.Info("HTTP server stopped gracefully")
	return nil
}
