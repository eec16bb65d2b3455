package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/exercise-tracker/internal/handlers"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/middlewares"
	"github.com/sbilibin2017/exercise-tracker/internal/repositories"
	"github.com/sbilibin2017/exercise-tracker/internal/services"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title exercise-tracker API
// @version 1.0.0
// @description Service for tracking users and their exercise logs
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, kafkaAddr, kafkaTopic, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), appHost, appPort, logLevel, kafkaAddr, kafkaTopic); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, logging, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Kafka config; publishing is disabled when no address is set
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "exercise-events")

	return
}

// run initializes the logger, stores, services, and HTTP server. It sets up
// routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, appHost, appPort, logLevel, kafkaAddr, kafkaTopic string) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Optional Kafka writer for exercise events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infof("Kafka event publishing enabled: %s topic %s", kafkaAddr, kafkaTopic)
	} else {
		logger.Log.Info("Kafka event publishing disabled")
	}

	// Initialize in-memory stores; state lives for the lifetime of the process
	userRepo := repositories.NewUserRepository()
	exerciseRepo := repositories.NewExerciseRepository()

	// Initialize services
	userService := services.NewUserService(userRepo)
	exerciseService := services.NewExerciseService(userRepo, exerciseRepo, kafkaWriter)

	// Initialize handlers
	rootHandler := handlers.NewRootHandler()
	healthHandler := handlers.NewHealthHandler()
	createUserHandler := handlers.NewCreateUserHandler(userService)
	listUsersHandler := handlers.NewListUsersHandler(userService)
	addExerciseHandler := handlers.NewAddExerciseHandler(exerciseService)
	getLogHandler := handlers.NewGetLogHandler(exerciseService)
	notFoundHandler := handlers.NewNotFoundHandler()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/", rootHandler)
	r.Get("/health", healthHandler)
	r.Post("/api/users", createUserHandler)
	r.Get("/api/users", listUsersHandler)
	r.Post("/api/users/{_id}/exercises", addExerciseHandler)
	r.Get("/api/users/{_id}/logs", getLogHandler)

	// Unmatched routes are the only non-2xx responses the service returns
	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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
