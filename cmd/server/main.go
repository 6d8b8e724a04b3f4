package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"taskhive/backend/internal/config"
	"taskhive/backend/internal/httpserver"
	"taskhive/backend/internal/infrastructure/objectstore"
	"taskhive/backend/internal/infrastructure/postgres"
	"taskhive/backend/internal/infrastructure/token"
	authusecase "taskhive/backend/internal/usecase/auth"
	reportusecase "taskhive/backend/internal/usecase/report"
	taskusecase "taskhive/backend/internal/usecase/task"
	todousecase "taskhive/backend/internal/usecase/todo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rootCtx := context.Background()
	db, err := postgres.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(rootCtx); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	tokenManager := token.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry, cfg.JWTIssuer)
	store := objectstore.New(objectstore.Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})

	authService := authusecase.NewService(
		postgres.NewUserRepository(db.Pool),
		postgres.NewOTPRepository(db.Pool),
		postgres.NewProviderTokenRepository(db.Pool),
		tokenManager,
	)
	todoService := todousecase.NewService(postgres.NewTodoRepository(db.Pool))
	taskService := taskusecase.NewService(postgres.NewTaskRepository(db.Pool))
	reportService := reportusecase.NewService(postgres.NewReportRepository(db.Pool), store)

	server := httpserver.NewServer(cfg, authService, todoService, taskService, reportService)
	log.Printf("HTTP server listening on %s", server.Addr())

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server closed: %v", err)
				return
			}
			log.Fatalf("server error: %v", err)
		}
		log.Printf("HTTP server stopped accepting new connections")
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v\n", err)
	} else {
		log.Printf("graceful shutdown completed")
	}
}
