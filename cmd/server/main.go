package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sukoon/internal/assessments"
	"sukoon/internal/config"
	"sukoon/internal/db"
	"sukoon/internal/events"
	"sukoon/internal/medical"
	mcpserver "sukoon/internal/mcp"
	"sukoon/internal/progress"
	"sukoon/internal/reminders"
	"sukoon/internal/users"

	"github.com/mark3labs/mcp-go/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Context for startup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect to MongoDB
	logger.Info("connecting to MongoDB", "uri", cfg.MongoURI)
	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	logger.Info("connected to MongoDB")

	// Wire dependencies
	userRepo := users.NewRepo(database)
	reminderRepo := reminders.NewRepo(database)
	eventRepo := events.NewRepo(database)
	assessmentRepo := assessments.NewRepo(database)
	medicalRepo := medical.NewRepo(database)

	for name, ensure := range map[string]func(context.Context) error{
		"users":         userRepo.EnsureIndexes,
		"reminders":     reminderRepo.EnsureIndexes,
		"assessments":   assessmentRepo.EnsureIndexes,
		"medical_files": medicalRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logger.Warn("failed to ensure indexes", "collection", name, "error", err)
		}
	}

	userSvc := users.NewService(userRepo)
	reminderSvc := reminders.NewService(reminderRepo)
	eventSvc := events.NewService(eventRepo)
	assessmentSvc := assessments.NewService(assessmentRepo)
	medicalSvc := medical.NewService(medicalRepo, cfg.UploadDir)
	progressSvc := progress.NewService()

	userHandler := users.NewHandler(userSvc, logger)
	reminderHandler := reminders.NewHandler(reminderSvc, logger)
	eventHandler := events.NewHandler(eventSvc, logger)
	assessmentHandler := assessments.NewHandler(assessmentSvc, logger)
	medicalHandler := medical.NewHandler(medicalSvc, logger)
	progressHandler := progress.NewHandler(progressSvc, logger)

	// Create MCP server
	mcpSrv := mcpserver.NewServer(reminderSvc, eventSvc, assessmentSvc, progressSvc)

	// HTTP router
	mux := http.NewServeMux()

	// REST API endpoints
	mux.HandleFunc("POST /api/auth/register", userHandler.Register)
	mux.HandleFunc("POST /api/auth/login", userHandler.Login)
	mux.HandleFunc("GET /api/user/profile", userHandler.Profile)
	mux.HandleFunc("PUT /api/user/profile", userHandler.UpdateProfile)

	mux.HandleFunc("POST /api/reminders", reminderHandler.Create)
	mux.HandleFunc("GET /api/reminders", reminderHandler.ListByDate)
	mux.HandleFunc("DELETE /api/reminders/{id}", reminderHandler.Delete)

	mux.HandleFunc("POST /api/events", eventHandler.Create)
	mux.HandleFunc("GET /api/events", eventHandler.List)
	mux.HandleFunc("GET /api/events/{id}", eventHandler.Get)

	mux.HandleFunc("POST /api/assessments", assessmentHandler.Save)
	mux.HandleFunc("GET /api/assessments", assessmentHandler.History)

	mux.HandleFunc("POST /api/medical/upload", medicalHandler.Upload)
	mux.HandleFunc("GET /api/medical", medicalHandler.List)

	mux.HandleFunc("POST /api/progress/summary", progressHandler.Summarize)

	// Stored medical uploads
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// MCP endpoint (HTTP transport)
	// MCP uses POST for requests and GET for SSE streams
	mcpHTTP := server.NewStreamableHTTPServer(mcpSrv)
	mux.Handle("POST /mcp", mcpHTTP)
	mux.Handle("GET /mcp", mcpHTTP)
	mux.Handle("DELETE /mcp", mcpHTTP)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Start server
	srv := &http.Server{
		Addr:         cfg.Listen,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
		if err := db.Disconnect(shutdownCtx, database); err != nil {
			logger.Error("mongo disconnect error", "error", err)
		}
	}()

	logger.Info("server starting", "listen", cfg.Listen)
	logger.Info("endpoints available",
		"api", "http://localhost"+cfg.Listen+"/api",
		"mcp", "http://localhost"+cfg.Listen+"/mcp",
	)

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}

	logger.Info("server stopped")
}
