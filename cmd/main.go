// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_tally_keep/internal/config"
	"go_5_tally_keep/internal/handlers"
	"go_5_tally_keep/internal/middleware"
	"go_5_tally_keep/internal/repository"
	"go_5_tally_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// データベース接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency Injection
	qualRepo := repository.NewGormQualificationRepository()
	materialRepo := repository.NewGormMaterialRepository()
	logRepo := repository.NewGormStudyLogRepository()
	memoRepo := repository.NewGormMemoRepository()

	qualService := service.NewQualificationService(db, qualRepo, materialRepo, logRepo, memoRepo, &config.Cfg)
	materialService := service.NewMaterialService(db, qualRepo, materialRepo, logRepo)
	studyService := service.NewStudyService(db, qualRepo, materialRepo, logRepo, &config.Cfg)
	memoService := service.NewMemoService(db, qualRepo, memoRepo)

	qualHandler := handlers.NewQualificationHandler(qualService)
	materialHandler := handlers.NewMaterialHandler(materialService)
	studyHandler := handlers.NewStudyHandler(studyService)
	memoHandler := handlers.NewMemoHandler(memoService)

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/qualifications", func(r chi.Router) {
			r.Post("/", qualHandler.CreateQualification)
			r.Get("/", qualHandler.ListQualifications)
			r.Get("/selected", qualHandler.GetSelectedQualification)
			r.Route("/{qualification_id}", func(r chi.Router) {
				r.Get("/", qualHandler.GetQualification)
				r.Put("/", qualHandler.UpdateQualification)
				r.Delete("/", qualHandler.DeleteQualification)
				r.Post("/select", qualHandler.SelectQualification)

				r.Post("/materials", materialHandler.CreateMaterial)
				r.Get("/materials", materialHandler.ListMaterials)

				r.Get("/dashboard", studyHandler.GetDashboard)
				r.Get("/heatmap", studyHandler.GetHeatmap)

				r.Post("/memos", memoHandler.CreateMemo)
				r.Get("/memos", memoHandler.ListMemos)
			})
		})

		r.Route("/materials/{material_id}", func(r chi.Router) {
			r.Get("/", materialHandler.GetMaterial)
			r.Put("/", materialHandler.UpdateMaterial)
			r.Delete("/", materialHandler.DeleteMaterial)

			r.Post("/progress", studyHandler.RecordProgress)
			r.Put("/progress/{date}", studyHandler.AdjustDayAmount)
			r.Get("/progress/today", studyHandler.GetTodayAmount)
		})

		r.Route("/memos/{memo_id}", func(r chi.Router) {
			r.Get("/", memoHandler.GetMemo)
			r.Put("/", memoHandler.UpdateMemo)
			r.Delete("/", memoHandler.DeleteMemo)
			r.Post("/images", memoHandler.AddImage)
			r.Get("/images", memoHandler.ListImages)
		})

		r.Delete("/images/{image_id}", memoHandler.DeleteImage)
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
