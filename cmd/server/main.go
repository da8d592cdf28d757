package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"magicwriting/internal/config"
	"magicwriting/internal/database"
	"magicwriting/internal/handlers"
	"magicwriting/internal/llm"
	"magicwriting/internal/logger"
	"magicwriting/internal/repository"
	"magicwriting/internal/security"
	"magicwriting/internal/service"
	"magicwriting/internal/session"
	"magicwriting/internal/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLogger, err := logger.New(cfg.AppEnv, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openSessionStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to open session store", "store", cfg.SessionStore, "error", err)
	}
	defer closeStore()

	secret := cfg.SessionSecret
	if secret == "" {
		secret, err = security.RandomSecret()
		if err != nil {
			appLogger.Fatal("Failed to generate session secret", "error", err)
		}
		appLogger.Warn("SESSION_SECRET not set, using a random secret; sessions will not survive a restart")
	}
	signer, err := security.NewSessionSigner([]byte(secret))
	if err != nil {
		appLogger.Fatal("Failed to create session signer", "error", err)
	}
	csrf, err := security.NewCSRFGenerator([]byte(secret))
	if err != nil {
		appLogger.Fatal("Failed to create CSRF generator", "error", err)
	}
	limiter := security.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	// Generation mode is decided once, here
	var completer service.Completer
	if cfg.LLMOnline() {
		client := llm.NewClient(llm.Options{
			BaseURL:        cfg.LLMBaseURL,
			APIKey:         cfg.LLMAPIKey,
			Model:          cfg.LLMModel,
			Temperature:    cfg.LLMTemperature,
			MaxTokens:      cfg.LLMMaxTokens,
			ConnectTimeout: cfg.LLMConnectTimeout,
			ReadTimeout:    cfg.LLMReadTimeout,
		})
		completer = client
		appLogger.Info("Text generation online", "model", client.Model(), "credential_source", cfg.CredentialSource)
	} else {
		if cfg.CredentialError != nil {
			appLogger.Warn("Failed to read secrets file", "path", cfg.SecretsPath, "error", cfg.CredentialError)
		}
		appLogger.Warn("No API credential found, running in offline mode", "env", config.CredentialEnvKey, "secrets", cfg.SecretsPath)
	}

	assistant := service.NewAssistantService(completer, service.AssistantOptions{
		MaxAttempts:    cfg.LLMMaxAttempts,
		InitialBackoff: cfg.LLMBackoff,
	}, appLogger)
	games := service.NewGameService(rand.New(rand.NewSource(time.Now().UnixNano())))

	emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize email service", "error", err)
	}

	tmpl, err := templates.Load()
	if err != nil {
		appLogger.Fatal("Failed to load templates", "error", err)
	}
	appLogger.Info("Templates loaded successfully")

	sessions := session.NewManager(store, cfg.SessionDuration, appLogger)
	rd := handlers.NewRenderer(tmpl, csrf, assistant, appLogger)
	h := &handlers.Handlers{
		Middleware: handlers.NewMiddleware(sessions, signer, csrf, limiter, appLogger),
		Pages:      handlers.NewPageHandler(rd, sessions, emailService),
		Writing:    handlers.NewWritingHandler(rd, assistant),
		Library:    handlers.NewLibraryHandler(rd, assistant),
		Evaluate:   handlers.NewEvaluateHandler(rd, assistant, emailService),
		Games:      handlers.NewGamesHandler(rd, games),
		API:        handlers.NewAPIHandler(rd, assistant, games, emailService, csrf),
	}

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:        addr,
		Handler:     handlers.Logging(appLogger, h.Routes()),
		ReadTimeout: 15 * time.Second,
		// generation may retry with backoff before answering
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go sessions.RunCleanup(ctx, time.Hour)

	go func() {
		appLogger.Info("Server starting", "url", "http://localhost"+addr, "mode", string(assistant.Mode()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Graceful shutdown failed", "error", err)
	}
}

// openSessionStore builds the store named by SESSION_STORE and returns its closer
func openSessionStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (session.Store, func(), error) {
	switch cfg.SessionStore {
	case "sql":
		db, err := database.InitializeWithConfig(cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Database connection established", "type", cfg.DatabaseType)

		applied, err := db.RunMigrations(ctx)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("Migrations completed successfully", "applied", applied)
		return session.NewSQLStore(repository.NewSessionRepository(db)), func() { db.Close() }, nil

	case "redis":
		store, err := session.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Redis session store connected")
		return store, func() { store.Close() }, nil

	default:
		if cfg.SessionStore != "memory" {
			log.Warn("Unknown SESSION_STORE, using memory", "store", cfg.SessionStore)
		}
		return session.NewMemoryStore(), func() {}, nil
	}
}
