package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema creates all tables and indexes if they do not exist yet. Safe
// to run on every startup.
func CreateSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			email_verified BOOLEAN NOT NULL DEFAULT false
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);

		CREATE TABLE IF NOT EXISTS quizzes (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_by UUID NOT NULL,
			created_by_username TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			question_count INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true
		);

		CREATE INDEX IF NOT EXISTS idx_quizzes_created_by ON quizzes(created_by);

		CREATE TABLE IF NOT EXISTS questions (
			id UUID PRIMARY KEY,
			quiz_id UUID NOT NULL,
			text TEXT NOT NULL,
			answer TEXT NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'medium',
			points INTEGER NOT NULL DEFAULT 10,
			created_by UUID NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_questions_quiz_id ON questions(quiz_id);

		CREATE TABLE IF NOT EXISTS leaderboard (
			quiz_id UUID NOT NULL,
			user_id UUID NOT NULL,
			username TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			PRIMARY KEY (quiz_id, user_id)
		);

		CREATE INDEX IF NOT EXISTS idx_leaderboard_quiz_score ON leaderboard(quiz_id, score DESC);
	`)
	return err
}
