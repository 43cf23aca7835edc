package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Delo1999/quiztopia/internal/middleware"
	"github.com/Delo1999/quiztopia/internal/models"
	"github.com/Delo1999/quiztopia/internal/repository"
	"github.com/Delo1999/quiztopia/internal/responses"
	"github.com/Delo1999/quiztopia/internal/validation"
)

// CreateQuestion adds a geo-tagged question to a quiz. Only the quiz owner
// may add questions; an absent quiz is 404, someone else's quiz is 403.
func CreateQuestion(quizzes repository.QuizStore, questions repository.QuestionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.GetAuthUserID(c)

		quizID, err := uuid.Parse(c.Param("quizId"))
		if err != nil {
			responses.BadRequest(c, "Invalid quiz ID format", nil)
			return
		}

		var req models.QuestionCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, validation.MsgValidationFailed, []string{"Invalid request body"})
			return
		}

		result := validation.ValidateQuestion(req)
		if !result.IsValid {
			responses.BadRequest(c, validation.MsgValidationFailed, result.Errors)
			return
		}

		quiz, err := quizzes.GetByID(c.Request.Context(), quizID)
		if err != nil {
			if errors.Is(err, repository.ErrQuizNotFound) {
				responses.NotFound(c, "Quiz not found")
				return
			}
			slog.Error("create question quiz lookup failed", "error", err, "quiz_id", quizID)
			responses.InternalServerError(c, "Failed to create question")
			return
		}

		if quiz.CreatedBy != userID {
			responses.Forbidden(c, "You can only add questions to your own quizzes")
			return
		}

		question := &models.Question{
			QuizID:     quizID,
			Text:       req.Text,
			Answer:     req.Answer,
			Longitude:  *req.Longitude,
			Latitude:   *req.Latitude,
			Difficulty: req.Difficulty,
			Points:     req.Points,
			CreatedBy:  userID,
		}
		if err := questions.Create(c.Request.Context(), question); err != nil {
			slog.Error("create question failed", "error", err, "quiz_id", quizID, "user_id", userID)
			responses.InternalServerError(c, "Failed to create question")
			return
		}

		responses.Created(c, question.ToResponse(), "Question created successfully")
	}
}
