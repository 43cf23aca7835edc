package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Delo1999/quiztopia/internal/middleware"
	"github.com/Delo1999/quiztopia/internal/models"
	"github.com/Delo1999/quiztopia/internal/repository"
	"github.com/Delo1999/quiztopia/internal/responses"
	"github.com/Delo1999/quiztopia/internal/validation"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// RegisterScore upserts the caller's score for a quiz. The write always
// overwrites an earlier submission by the same user; last submission wins.
func RegisterScore(quizzes repository.QuizStore, leaderboard repository.LeaderboardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.GetAuthUserID(c)
		username, _ := middleware.GetAuthUsername(c)

		quizID, err := uuid.Parse(c.Param("quizId"))
		if err != nil {
			responses.BadRequest(c, "Invalid quiz ID format", nil)
			return
		}

		var req models.ScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, validation.MsgValidationFailed, []string{"Invalid request body"})
			return
		}

		result := validation.ValidateScore(req)
		if !result.IsValid {
			responses.BadRequest(c, validation.MsgValidationFailed, result.Errors)
			return
		}

		if _, err := quizzes.GetByID(c.Request.Context(), quizID); err != nil {
			if errors.Is(err, repository.ErrQuizNotFound) {
				responses.NotFound(c, "Quiz not found")
				return
			}
			slog.Error("register score quiz lookup failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to register score")
			return
		}

		entry := &models.LeaderboardEntry{
			QuizID:   quizID,
			UserID:   userID,
			Username: username,
			Score:    *req.Score,
		}
		if err := leaderboard.Upsert(c.Request.Context(), entry); err != nil {
			slog.Error("register score failed", "error", err, "quiz_id", quizID, "user_id", userID)
			responses.InternalServerError(c, "Failed to register score")
			return
		}

		responses.Created(c, entry, "Score registered successfully")
	}
}

// GetLeaderboard returns a quiz's leaderboard ordered by score descending.
// The caller may bound the result with ?limit=N, N in [1,100], default 10.
// Rank is the 1-based position in the store-ordered sequence. Public.
func GetLeaderboard(quizzes repository.QuizStore, leaderboard repository.LeaderboardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		quizID, err := uuid.Parse(c.Param("quizId"))
		if err != nil {
			responses.BadRequest(c, "Invalid quiz ID format", nil)
			return
		}

		limit := defaultLeaderboardLimit
		if limitParam := c.Query("limit"); limitParam != "" {
			limit, err = strconv.Atoi(limitParam)
			if err != nil || limit < 1 || limit > maxLeaderboardLimit {
				responses.BadRequest(c, "Limit must be a number between 1 and 100", nil)
				return
			}
		}

		quiz, err := quizzes.GetByID(c.Request.Context(), quizID)
		if err != nil {
			if errors.Is(err, repository.ErrQuizNotFound) {
				responses.NotFound(c, "Quiz not found")
				return
			}
			slog.Error("get leaderboard quiz lookup failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to retrieve leaderboard")
			return
		}

		entries, err := leaderboard.ListByQuiz(c.Request.Context(), quizID, limit)
		if err != nil {
			slog.Error("get leaderboard failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to retrieve leaderboard")
			return
		}

		rows := []models.LeaderboardRow{}
		for i, entry := range entries {
			rows = append(rows, models.LeaderboardRow{
				Position:  i + 1,
				UserID:    entry.UserID,
				Username:  entry.Username,
				Score:     entry.Score,
				CreatedAt: entry.CreatedAt,
				UpdatedAt: entry.UpdatedAt,
			})
		}

		responses.Success(c, models.LeaderboardResponse{
			QuizID:      quiz.ID,
			QuizName:    quiz.Name,
			Leaderboard: rows,
		}, "Leaderboard retrieved successfully")
	}
}
