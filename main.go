package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/haawaard/Barangay-Document-Checker/config"
	"github.com/haawaard/Barangay-Document-Checker/database"
	"github.com/haawaard/Barangay-Document-Checker/handlers"
	"github.com/haawaard/Barangay-Document-Checker/middleware"
	"github.com/haawaard/Barangay-Document-Checker/models"
	"github.com/haawaard/Barangay-Document-Checker/monitoring"
	"github.com/haawaard/Barangay-Document-Checker/redis"
	"github.com/haawaard/Barangay-Document-Checker/services"
	"github.com/haawaard/Barangay-Document-Checker/utils"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	enums, err := config.LoadEnums(config.GetEnvOrDefault("CONFIG_PATH", "config/enums.yaml"))
	if err != nil {
		slog.Warn("Failed to load enum config, using defaults", "error", err)
		enums = config.GetDefaultEnums()
	}
	models.SetEnumConfig(enums)

	ctx := context.Background()

	shutdownMetrics, err := monitoring.Setup(ctx, monitoring.Config{
		ServiceName: "barangay-document-checker",
	})
	if err != nil {
		slog.Error("Failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdownMetrics(ctx); err != nil {
			slog.Error("Metrics shutdown error", "error", err)
		}
	}()

	db, err := connectDatabase()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	repo := database.NewGormRepository(db)

	var publisher services.EventPublisher
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := redis.NewClient(&redis.Config{
			Addr:     addr,
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
			UseTLS:   os.Getenv("REDIS_TLS") == "true",
		})
		if err != nil {
			slog.Error("Failed to connect to Redis, audit events will not be streamed", "error", err)
		} else {
			defer client.Close()
			publisher = client
			slog.Info("Audit event streaming enabled", "stream", redis.StreamName)
		}
	}

	apiServer := handlers.NewAPIServer(repo, repo, repo, publisher)

	mux := http.NewServeMux()
	apiServer.SetupRoutes(mux)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			utils.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
			})
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})
	mux.Handle("/metrics", monitoring.Handler())

	handler := middleware.CORSMiddleware()(monitoring.HTTPMetricsMiddleware(mux))

	serverConfig := utils.DefaultServerConfig()
	server := utils.CreateServer(serverConfig, handler)

	if err := utils.StartServerWithGracefulShutdown(server, "barangay-document-checker"); err != nil {
		os.Exit(1)
	}
}

// connectDatabase opens PostgreSQL when DB_HOST is configured, falling back
// to a local SQLite file for development.
func connectDatabase() (*gorm.DB, error) {
	if os.Getenv("DB_HOST") != "" {
		return database.ConnectGormDB(config.NewDatabaseConfig())
	}
	slog.Info("DB_HOST not set, using local SQLite database")
	return database.ConnectSQLite(config.GetEnvOrDefault("DB_PATH", "barangay.db"))
}
