package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Delo1999/quiztopia/internal/models"
)

type QuizRepository struct {
	db *pgxpool.Pool
}

func NewQuizRepository(db *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{db: db}
}

// Create inserts a new quiz with a fresh id, trimmed name and description,
// zero questions, and both timestamps set to now.
func (r *QuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	now := time.Now().UTC()
	quiz.Name = strings.TrimSpace(quiz.Name)
	quiz.Description = strings.TrimSpace(quiz.Description)
	quiz.CreatedAt = now
	quiz.UpdatedAt = now
	quiz.QuestionCount = 0
	quiz.IsActive = true

	query := `
		INSERT INTO quizzes (id, name, description, created_by, created_by_username,
		                     created_at, updated_at, question_count, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		quiz.ID,
		quiz.Name,
		quiz.Description,
		quiz.CreatedBy,
		quiz.CreatedByUsername,
		quiz.CreatedAt,
		quiz.UpdatedAt,
		quiz.QuestionCount,
		quiz.IsActive,
	)
	return err
}

// GetByID retrieves a quiz by id.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error) {
	query := `
		SELECT id, name, description, created_by, created_by_username,
		       created_at, updated_at, question_count, is_active
		FROM quizzes
		WHERE id = $1
	`

	var quiz models.Quiz
	err := r.db.QueryRow(ctx, query, id).Scan(
		&quiz.ID,
		&quiz.Name,
		&quiz.Description,
		&quiz.CreatedBy,
		&quiz.CreatedByUsername,
		&quiz.CreatedAt,
		&quiz.UpdatedAt,
		&quiz.QuestionCount,
		&quiz.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	return &quiz, nil
}

// ListActive returns all active quizzes, newest first.
func (r *QuizRepository) ListActive(ctx context.Context) ([]models.Quiz, error) {
	query := `
		SELECT id, name, description, created_by, created_by_username,
		       created_at, updated_at, question_count, is_active
		FROM quizzes
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quizzes := []models.Quiz{}
	for rows.Next() {
		var quiz models.Quiz
		err := rows.Scan(
			&quiz.ID,
			&quiz.Name,
			&quiz.Description,
			&quiz.CreatedBy,
			&quiz.CreatedByUsername,
			&quiz.CreatedAt,
			&quiz.UpdatedAt,
			&quiz.QuestionCount,
			&quiz.IsActive,
		)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}

	return quizzes, rows.Err()
}

// Delete removes the quiz row. Deleting an absent quiz is a no-op so that a
// retried cascade converges.
func (r *QuizRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	return err
}
