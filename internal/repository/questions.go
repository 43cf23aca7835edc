package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Delo1999/quiztopia/internal/models"
)

type QuestionRepository struct {
	db *pgxpool.Pool
}

func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a new question with a fresh id, trimmed text and answer, and
// difficulty/points defaults applied. The parent quiz's question count and
// updated_at are bumped afterwards; the two writes are not transactional.
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	question.Text = strings.TrimSpace(question.Text)
	question.Answer = strings.TrimSpace(question.Answer)
	if question.Difficulty == "" {
		question.Difficulty = models.DifficultyMedium
	}
	if question.Points == 0 {
		question.Points = models.DefaultQuestionPoints
	}
	question.CreatedAt = time.Now().UTC()
	question.IsActive = true

	query := `
		INSERT INTO questions (id, quiz_id, text, answer, longitude, latitude,
		                       difficulty, points, created_by, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		question.ID,
		question.QuizID,
		question.Text,
		question.Answer,
		question.Longitude,
		question.Latitude,
		question.Difficulty,
		question.Points,
		question.CreatedBy,
		question.IsActive,
		question.CreatedAt,
	)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`UPDATE quizzes SET question_count = question_count + 1, updated_at = $1 WHERE id = $2`,
		question.CreatedAt, question.QuizID,
	)
	return err
}

// ListByQuiz returns the active questions of a quiz, oldest first.
func (r *QuestionRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID) ([]models.Question, error) {
	query := `
		SELECT id, quiz_id, text, answer, longitude, latitude,
		       difficulty, points, created_by, is_active, created_at
		FROM questions
		WHERE quiz_id = $1 AND is_active = true
		ORDER BY created_at ASC
	`

	rows, err := r.db.Query(ctx, query, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var question models.Question
		err := rows.Scan(
			&question.ID,
			&question.QuizID,
			&question.Text,
			&question.Answer,
			&question.Longitude,
			&question.Latitude,
			&question.Difficulty,
			&question.Points,
			&question.CreatedBy,
			&question.IsActive,
			&question.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

// DeleteByQuiz removes all questions of a quiz. A quiz without questions is a
// no-op, not an error.
func (r *QuestionRepository) DeleteByQuiz(ctx context.Context, quizID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM questions WHERE quiz_id = $1`, quizID)
	return err
}
