package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/Lllllllleong/questiongenerator/internal/gcp"
	"github.com/Lllllllleong/questiongenerator/internal/services"
	"github.com/Lllllllleong/questiongenerator/internal/web"
	"github.com/joho/godotenv"
)

const functionName = "GenerateQuestions"

var (
	handlerInstance http.Handler
	once            sync.Once
	initErr         error
)

func init() {
	// --- Set up structured logging ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	functions.HTTP(functionName, handleGenerateQuestions)
}

// main serves the function locally. On Cloud Functions the platform supplies its own main.
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}
	if os.Getenv("FUNCTION_TARGET") == "" {
		os.Setenv("FUNCTION_TARGET", functionName)
	}

	// Initialise eagerly so a missing credential is reported at startup.
	once.Do(initialize)
	if initErr != nil {
		slog.Error("Critical error during initialization", "error", initErr)
		os.Exit(1)
	}

	port := gcp.GetEnv("PORT", "8080")
	slog.Info("Question generator listening.", "port", port)
	if err := funcframework.Start(port); err != nil {
		slog.Error("funcframework.Start failed", "error", err)
		os.Exit(1)
	}
}

func initialize() {
	handlerInstance, initErr = newHandler(context.Background())
}

func newHandler(ctx context.Context) (http.Handler, error) {
	cfg, err := services.LoadConfig()
	if err != nil {
		return nil, err
	}

	model, warning := services.NewModel(ctx, cfg)
	if warning != "" {
		slog.Warn("Question generation is degraded.", "warning", warning, "backend", cfg.Backend)
	}

	service := services.NewQuestionService(services.NewQuestionGenerator(model, cfg.RatePerMinute))
	return web.NewHandler(service, services.NewGCSSource(cfg.MaxUploadBytes), web.Options{
		Warning:        warning,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}), nil
}

func handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	once.Do(initialize)
	if initErr != nil {
		slog.Error("CRITICAL: question generator initialization failed", "error", initErr)
		http.Error(w, "Internal Server Error: failed to initialize service", http.StatusInternalServerError)
		return
	}
	handlerInstance.ServeHTTP(w, r)
}
