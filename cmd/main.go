package main

import (
	"context"
	"errors"
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

	_ "github.com/sbilibin2017/gw-bank-agent/docs"
	"github.com/sbilibin2017/gw-bank-agent/internal/converter"
	"github.com/sbilibin2017/gw-bank-agent/internal/facades"
	"github.com/sbilibin2017/gw-bank-agent/internal/handlers"
	"github.com/sbilibin2017/gw-bank-agent/internal/jwt"
	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
	"github.com/sbilibin2017/gw-bank-agent/internal/middlewares"
	"github.com/sbilibin2017/gw-bank-agent/internal/repositories"
	"github.com/sbilibin2017/gw-bank-agent/internal/services"
	"github.com/sbilibin2017/gw-bank-agent/internal/tools"
	"github.com/sbilibin2017/gw-bank-agent/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Rate sources selectable with RATES_SOURCE.
const (
	ratesSourceCBR  = "cbr"
	ratesSourceGRPC = "grpc"
)

// config holds everything parseConfig reads from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	RatesSource       string
	RatesURL          string
	RatesTimeout      time.Duration
	RatesRPS          float64
	RatesCacheTTL     time.Duration
	ReferenceCurrency string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	GWHost string
	GWPort string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration
}

// @title gw-bank-agent API
// @version 1.0.0
// @description Banking assistant tools: deposit profitability and currency conversion
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, tokenClient := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if tokenClient != "" {
		if err := issueToken(context.Background(), cfg, tokenClient); err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// the client to issue an API token for, if any.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	t := flag.String("token", "", "Issue an API token for the given client and exit")
	flag.Parse()
	return *c, *t
}

// parseConfig loads environment variables from a file and returns
// the application, rate source, cache, database, Kafka and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rates config
	cfg.RatesSource = strings.ToLower(getEnv("RATES_SOURCE", ratesSourceCBR))
	if cfg.RatesSource != ratesSourceCBR && cfg.RatesSource != ratesSourceGRPC {
		err = fmt.Errorf("unknown RATES_SOURCE %q", cfg.RatesSource)
		return
	}
	cfg.RatesURL = getEnv("RATES_URL", facades.CBRLatestURL)
	cfg.ReferenceCurrency = strings.ToUpper(getEnv("REFERENCE_CURRENCY", converter.DefaultReference))
	var ratesTimeout, cacheTTL int
	if ratesTimeout, err = strconv.Atoi(getEnv("RATES_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	cfg.RatesTimeout = time.Duration(ratesTimeout) * time.Second
	if cfg.RatesRPS, err = strconv.ParseFloat(getEnv("RATES_RPS", "1"), 64); err != nil {
		return
	}
	if cacheTTL, err = strconv.Atoi(getEnv("RATES_CACHE_TTL_SECOND", "3600")); err != nil {
		return
	}
	cfg.RatesCacheTTL = time.Duration(cacheTTL) * time.Second

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")

	// PostgreSQL config, empty host disables the audit log
	cfg.PGHost = getEnv("POSTGRES_HOST", "")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Kafka config, no brokers disables publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "calculations")

	// JWT config, empty secret disables auth
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	var jwtExp int
	if jwtExp, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	return
}

// issueToken prints a signed API token for the given client.
func issueToken(ctx context.Context, cfg config, client string) error {
	if cfg.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is not set")
	}
	token, err := jwt.New(cfg.JWTSecretKey, cfg.JWTExp).Generate(ctx, client)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

// run initializes the logger, rate source, cache, optional audit log and
// event publisher, builds the HTTP server and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	log := logger.Log
	defer log.Sync()
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Rate source
	var source services.ExchangeRateSource
	switch cfg.RatesSource {
	case ratesSourceGRPC:
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to gRPC service at %s: %w", grpcAddr, err)
		}
		defer conn.Close()
		source = facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn), cfg.ReferenceCurrency)
		log.Infow("Using gRPC exchanger as rate source", "addr", grpcAddr)
	default:
		source = facades.NewExchangeRatesCBRFacade(cfg.RatesURL, cfg.ReferenceCurrency, cfg.RatesTimeout, cfg.RatesRPS)
		log.Infow("Using CBR daily rates as rate source", "url", cfg.RatesURL)
	}

	// Connect to Redis, the service runs uncached when it is unreachable
	var cache services.ExchangeRateCache
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warnw("Redis unavailable, exchange rates will not be cached", "error", err)
	} else {
		cache = repositories.NewExchangeRateCacheRepository(rdb, cfg.RatesCacheTTL)
	}

	// Connect to PostgreSQL
	var (
		calcWriter services.CalculationWriter
		calcReader services.CalculationReader
	)
	if cfg.PGHost != "" {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "db", cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		if err := migrations.Apply(ctx, db); err != nil {
			return fmt.Errorf("PostgreSQL migration failed: %w", err)
		}
		calcWriter = repositories.NewCalculationWriteRepository(db)
		calcReader = repositories.NewCalculationReadRepository(db)
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		log.Infow("Publishing calculations to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize services
	recorder := services.NewCalculationRecorder(calcWriter, kafkaWriter)
	rateService := services.NewRateService(source, cache, cfg.ReferenceCurrency)
	depositService := services.NewDepositService(recorder)
	conversionService := services.NewConversionService(rateService, converter.New(cfg.ReferenceCurrency), recorder)

	var historyService *services.HistoryService
	if calcReader != nil {
		historyService = services.NewHistoryService(calcReader)
	}

	var tokener middlewares.Tokener
	if cfg.JWTSecretKey != "" {
		tokener = jwt.New(cfg.JWTSecretKey, cfg.JWTExp)
	} else {
		log.Warn("JWT_SECRET_KEY is empty, /api/v1 is not protected")
	}

	mcpServer := tools.NewServer("gw-bank-agent", buildVersion, conversionService, depositService, conversionService)

	r := newRouter(cfg, tokener, depositService, conversionService, historyService, tools.NewHTTPHandler(mcpServer))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
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

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts the JSON API, MCP endpoint, swagger and health check.
// A nil tokener leaves /api/v1 open; a nil history disables /api/v1/calculations.
func newRouter(
	cfg config,
	tokener middlewares.Tokener,
	depositSvc handlers.DepositCalculator,
	conversionSvc *services.ConversionService,
	historySvc *services.HistoryService,
	mcpHandler http.Handler,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		if tokener != nil {
			r.Use(middlewares.AuthMiddleware(tokener))
		}
		r.Post("/deposit/calculate", handlers.NewCalculateDepositHandler(depositSvc))
		r.Post("/currency/convert", handlers.NewConvertCurrencyHandler(conversionSvc))
		r.Get("/exchange/rates", handlers.NewGetExchangeRatesHandler(conversionSvc))
		if historySvc != nil {
			r.Get("/calculations", handlers.NewListCalculationsHandler(historySvc))
		}
	})

	r.Group(func(r chi.Router) {
		if tokener != nil {
			r.Use(middlewares.AuthMiddleware(tokener))
		}
		r.Handle("/mcp", mcpHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
