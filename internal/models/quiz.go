package models

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a collection of geo-tagged questions owned by a single user.
// CreatedBy is immutable after creation and is the only field authorization
// decisions are based on.
type Quiz struct {
	ID                uuid.UUID `json:"quizId" db:"id"`
	Name              string    `json:"quizName" db:"name"`
	Description       string    `json:"description" db:"description"`
	CreatedBy         uuid.UUID `json:"createdBy" db:"created_by"`
	CreatedByUsername string    `json:"createdByUsername" db:"created_by_username"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
	QuestionCount     int       `json:"questionCount" db:"question_count"`
	IsActive          bool      `json:"isActive" db:"is_active"`
}

// QuizSummary is the projection used by the public quiz list.
type QuizSummary struct {
	ID            uuid.UUID `json:"quizId"`
	Name          string    `json:"quizName"`
	Description   string    `json:"description"`
	CreatedBy     uuid.UUID `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	QuestionCount int       `json:"questionCount"`
}

// QuizResponse is the owner-only detail view including questions.
type QuizResponse struct {
	ID                uuid.UUID          `json:"quizId"`
	Name              string             `json:"quizName"`
	Description       string             `json:"description"`
	CreatedBy         uuid.UUID          `json:"createdBy"`
	CreatedByUsername string             `json:"createdByUsername"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
	QuestionCount     int                `json:"questionCount"`
	Questions         []QuestionResponse `json:"questions,omitempty"`
}

// ToSummary converts Quiz to QuizSummary
func (q *Quiz) ToSummary() QuizSummary {
	return QuizSummary{
		ID:            q.ID,
		Name:          q.Name,
		Description:   q.Description,
		CreatedBy:     q.CreatedBy,
		CreatedAt:     q.CreatedAt,
		QuestionCount: q.QuestionCount,
	}
}

// ToResponse converts Quiz to QuizResponse with the given questions attached.
func (q *Quiz) ToResponse(questions []Question) QuizResponse {
	resp := QuizResponse{
		ID:                q.ID,
		Name:              q.Name,
		Description:       q.Description,
		CreatedBy:         q.CreatedBy,
		CreatedByUsername: q.CreatedByUsername,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
		QuestionCount:     q.QuestionCount,
	}
	for i := range questions {
		resp.Questions = append(resp.Questions, questions[i].ToResponse())
	}
	return resp
}

// QuizCreateRequest is the quiz creation payload.
type QuizCreateRequest struct {
	Name        string `json:"quizName"`
	Description string `json:"description"`
}
