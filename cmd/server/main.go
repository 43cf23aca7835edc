package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Delo1999/quiztopia/internal/auth"
	"github.com/Delo1999/quiztopia/internal/config"
	"github.com/Delo1999/quiztopia/internal/database"
	"github.com/Delo1999/quiztopia/internal/handlers"
	"github.com/Delo1999/quiztopia/internal/middleware"
	"github.com/Delo1999/quiztopia/internal/repository"
)

var Version = "dev"

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.CreateSchema(ctx, db); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database schema ready")

	users := repository.NewUserRepository(db)
	quizzes := repository.NewQuizRepository(db)
	questions := repository.NewQuestionRepository(db)
	leaderboard := repository.NewLeaderboardRepository(db)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTLifetime)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/register", handlers.Register(cfg, users, tokens))
		api.POST("/auth/login", handlers.Login(users, tokens))

		api.GET("/quiz", handlers.ListQuizzes(quizzes))
		api.GET("/quiz/:quizId/leaderboard", handlers.GetLeaderboard(quizzes, leaderboard))

		protected := api.Group("", middleware.RequireAuth(tokens, users))
		{
			protected.POST("/quiz", handlers.CreateQuiz(quizzes))
			protected.GET("/quiz/:quizId", handlers.GetQuiz(quizzes, questions))
			protected.DELETE("/quiz/:quizId", handlers.DeleteQuiz(quizzes, questions, leaderboard))
			protected.POST("/quiz/:quizId/question", handlers.CreateQuestion(quizzes, questions))
			protected.POST("/quiz/:quizId/score", handlers.RegisterScore(quizzes, leaderboard))
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Port, "version", Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
