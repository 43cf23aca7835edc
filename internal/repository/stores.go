// Package repository persists quiztopia entities in Postgres. Store
// interfaces are what handlers depend on; the pgx-backed implementations
// below are the production path.
//
// "Not found" is a first-class outcome surfaced through sentinel errors, not
// a failure. Any other error from a store is classified by the caller as
// internal.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Delo1999/quiztopia/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrQuizNotFound = errors.New("quiz not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// UserStore persists identity records.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// QuizStore persists quizzes. Delete removes only the quiz row and is
// idempotent; removing dependents is the caller's cascade workflow.
type QuizStore interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error)
	ListActive(ctx context.Context) ([]models.Quiz, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuestionStore persists questions. DeleteByQuiz is idempotent: deleting
// questions of a quiz that has none is a no-op.
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]models.Question, error)
	DeleteByQuiz(ctx context.Context, quizID uuid.UUID) error
}

// LeaderboardStore persists per-quiz scores keyed by (quiz, user). Upsert is
// unconditional last-write-wins. ListByQuiz returns entries ordered by score
// descending, limited to limit rows.
type LeaderboardStore interface {
	Upsert(ctx context.Context, entry *models.LeaderboardEntry) error
	ListByQuiz(ctx context.Context, quizID uuid.UUID, limit int) ([]models.LeaderboardEntry, error)
	DeleteByQuiz(ctx context.Context, quizID uuid.UUID) error
}
