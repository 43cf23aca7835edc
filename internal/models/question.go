package models

import (
	"time"

	"github.com/google/uuid"
)

// Question difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DefaultQuestionPoints is awarded when the creator does not set points.
const DefaultQuestionPoints = 10

// Question is a geo-tagged question belonging to exactly one quiz.
type Question struct {
	ID         uuid.UUID `json:"questionId" db:"id"`
	QuizID     uuid.UUID `json:"quizId" db:"quiz_id"`
	Text       string    `json:"question" db:"text"`
	Answer     string    `json:"answer" db:"answer"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Difficulty string    `json:"difficulty" db:"difficulty"`
	Points     int       `json:"points" db:"points"`
	CreatedBy  uuid.UUID `json:"createdBy" db:"created_by"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// QuestionResponse is the question projection returned to the quiz owner.
type QuestionResponse struct {
	ID         uuid.UUID `json:"questionId"`
	QuizID     uuid.UUID `json:"quizId"`
	Text       string    `json:"question"`
	Answer     string    `json:"answer"`
	Longitude  float64   `json:"longitude"`
	Latitude   float64   `json:"latitude"`
	Difficulty string    `json:"difficulty"`
	Points     int       `json:"points"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToResponse converts Question to QuestionResponse
func (q *Question) ToResponse() QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		QuizID:     q.QuizID,
		Text:       q.Text,
		Answer:     q.Answer,
		Longitude:  q.Longitude,
		Latitude:   q.Latitude,
		Difficulty: q.Difficulty,
		Points:     q.Points,
		CreatedAt:  q.CreatedAt,
	}
}

// QuestionCreateRequest is the add-question payload. Coordinates are pointers
// so that a missing coordinate can be told apart from 0.
type QuestionCreateRequest struct {
	Text       string   `json:"question"`
	Answer     string   `json:"answer"`
	Longitude  *float64 `json:"longitude"`
	Latitude   *float64 `json:"latitude"`
	Difficulty string   `json:"difficulty"`
	Points     int      `json:"points"`
}
