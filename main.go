package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/pustaka-app/backend/internal/auth"
	"github.com/pustaka-app/backend/internal/config"
	"github.com/pustaka-app/backend/internal/db"
	"github.com/pustaka-app/backend/internal/handler"
	"github.com/pustaka-app/backend/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	// A missing secret is a configuration error: refuse to start rather
	// than fail every request.
	codec, err := auth.NewCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("auth setup failed: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx)
	if err != nil {
		log.Fatalf("postgres setup failed: %v", err)
	}
	defer pool.Close()

	repo := db.New(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	authSvc := service.NewAuthService(repo, codec)
	bookSvc := service.NewBookService(repo)
	borrowSvc := service.NewBorrowService(repo)

	router := handler.NewRouter(
		cfg,
		codec,
		handler.NewAuthHandler(authSvc, cfg.Auth),
		handler.NewUserHandler(authSvc, bookSvc, cfg.Auth.CookieName),
		handler.NewBookHandler(bookSvc),
		handler.NewBorrowHandler(borrowSvc),
	)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
