package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Delo1999/quiztopia/internal/models"
)

type LeaderboardRepository struct {
	db *pgxpool.Pool
}

func NewLeaderboardRepository(db *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Upsert writes the caller's score for a quiz. The write is unconditional:
// an existing entry for the same (quiz, user) pair is overwritten, keeping
// created_at and advancing updated_at. Last submission wins, not best score.
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry *models.LeaderboardEntry) error {
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	entry.IsActive = true

	query := `
		INSERT INTO leaderboard (quiz_id, user_id, username, score, created_at, updated_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (quiz_id, user_id) DO UPDATE
		SET username = EXCLUDED.username,
		    score = EXCLUDED.score,
		    updated_at = EXCLUDED.updated_at,
		    is_active = true
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		entry.QuizID,
		entry.UserID,
		entry.Username,
		entry.Score,
		entry.CreatedAt,
		entry.UpdatedAt,
		entry.IsActive,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
}

// ListByQuiz returns the active entries of a quiz ordered by score
// descending, at most limit rows. Ordering is delegated to the score index;
// display rank is assigned by the consumer from row position.
func (r *LeaderboardRepository) ListByQuiz(ctx context.Context, quizID uuid.UUID, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT quiz_id, user_id, username, score, created_at, updated_at, is_active
		FROM leaderboard
		WHERE quiz_id = $1 AND is_active = true
		ORDER BY score DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, quizID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.LeaderboardEntry{}
	for rows.Next() {
		var entry models.LeaderboardEntry
		err := rows.Scan(
			&entry.QuizID,
			&entry.UserID,
			&entry.Username,
			&entry.Score,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&entry.IsActive,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// DeleteByQuiz removes all leaderboard entries of a quiz. A quiz without
// entries is a no-op, not an error.
func (r *LeaderboardRepository) DeleteByQuiz(ctx context.Context, quizID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM leaderboard WHERE quiz_id = $1`, quizID)
	return err
}
