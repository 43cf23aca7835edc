package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Delo1999/quiztopia/internal/middleware"
	"github.com/Delo1999/quiztopia/internal/models"
	"github.com/Delo1999/quiztopia/internal/repository"
	"github.com/Delo1999/quiztopia/internal/responses"
	"github.com/Delo1999/quiztopia/internal/validation"
)

// CreateQuiz creates a quiz owned by the authenticated user.
func CreateQuiz(quizzes repository.QuizStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.GetAuthUserID(c)
		username, _ := middleware.GetAuthUsername(c)

		var req models.QuizCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, validation.MsgValidationFailed, []string{"Invalid request body"})
			return
		}

		result := validation.ValidateQuiz(req)
		if !result.IsValid {
			responses.BadRequest(c, validation.MsgValidationFailed, result.Errors)
			return
		}

		quiz := &models.Quiz{
			Name:              req.Name,
			Description:       req.Description,
			CreatedBy:         userID,
			CreatedByUsername: username,
		}
		if err := quizzes.Create(c.Request.Context(), quiz); err != nil {
			slog.Error("create quiz failed", "error", err, "user_id", userID)
			responses.InternalServerError(c, "Failed to create quiz")
			return
		}

		responses.Created(c, quiz.ToResponse(nil), "Quiz created successfully")
	}
}

// ListQuizzes returns all active quizzes as summaries. Public.
func ListQuizzes(quizzes repository.QuizStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := quizzes.ListActive(c.Request.Context())
		if err != nil {
			slog.Error("list quizzes failed", "error", err)
			responses.InternalServerError(c, "Failed to retrieve quizzes")
			return
		}

		summaries := []models.QuizSummary{}
		for i := range all {
			summaries = append(summaries, all[i].ToSummary())
		}

		responses.Success(c, summaries, "Quizzes retrieved successfully")
	}
}

// GetQuiz returns the full quiz detail including questions. The detail view
// is owner-only: a quiz owned by someone else gets the same 404 as an absent
// quiz, so non-owners learn nothing about its existence.
func GetQuiz(quizzes repository.QuizStore, questions repository.QuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.GetAuthUserID(c)

		quizID, err := uuid.Parse(c.Param("quizId"))
		if err != nil {
			responses.BadRequest(c, "Invalid quiz ID format", nil)
			return
		}

		quiz, err := quizzes.GetByID(c.Request.Context(), quizID)
		if err != nil {
			if errors.Is(err, repository.ErrQuizNotFound) {
				responses.NotFound(c, "Quiz not found")
				return
			}
			slog.Error("get quiz failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to retrieve quiz")
			return
		}

		if quiz.CreatedBy != userID {
			responses.NotFound(c, "Quiz not found")
			return
		}

		quizQuestions, err := questions.ListByQuiz(c.Request.Context(), quizID)
		if err != nil {
			slog.Error("get quiz questions failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to retrieve quiz")
			return
		}

		responses.Success(c, quiz.ToResponse(quizQuestions), "Quiz retrieved successfully")
	}
}

// DeleteQuiz removes a quiz with everything that references it: questions and
// leaderboard entries are deleted concurrently, the quiz row only after both
// succeeded. The cascade is not transactional; a partial failure is reported
// as internal and the caller retries (each sub-deletion is idempotent).
func DeleteQuiz(quizzes repository.QuizStore, questions repository.QuestionStore, leaderboard repository.LeaderboardStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.GetAuthUserID(c)

		quizID, err := uuid.Parse(c.Param("quizId"))
		if err != nil {
			responses.BadRequest(c, "Invalid quiz ID format", nil)
			return
		}

		quiz, err := quizzes.GetByID(c.Request.Context(), quizID)
		if err != nil {
			if errors.Is(err, repository.ErrQuizNotFound) {
				responses.NotFound(c, "Quiz not found")
				return
			}
			slog.Error("delete quiz lookup failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to delete quiz")
			return
		}

		if quiz.CreatedBy != userID {
			responses.Forbidden(c, "You can only delete your own quizzes")
			return
		}

		g, gctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() error { return questions.DeleteByQuiz(gctx, quizID) })
		g.Go(func() error { return leaderboard.DeleteByQuiz(gctx, quizID) })
		if err := g.Wait(); err != nil {
			slog.Error("delete quiz cascade failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to delete quiz")
			return
		}

		if err := quizzes.Delete(c.Request.Context(), quizID); err != nil {
			slog.Error("delete quiz failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to delete quiz")
			return
		}

		responses.Success(c, nil, "Quiz deleted successfully")
	}
}
