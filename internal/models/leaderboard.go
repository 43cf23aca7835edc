package models

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardEntry is a user's score on a quiz. Its identity is the
// (QuizID, UserID) pair: a re-submission overwrites the existing entry.
type LeaderboardEntry struct {
	QuizID    uuid.UUID `json:"quizId" db:"quiz_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Score     int       `json:"score" db:"score"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	IsActive  bool      `json:"isActive" db:"is_active"`
}

// LeaderboardRow is a ranked row in the leaderboard response.
type LeaderboardRow struct {
	Position  int       `json:"position"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LeaderboardResponse is the API response for a quiz leaderboard.
type LeaderboardResponse struct {
	QuizID      uuid.UUID        `json:"quizId"`
	QuizName    string           `json:"quizName"`
	Leaderboard []LeaderboardRow `json:"leaderboard"`
}

// ScoreRequest is the score submission payload. Score is a pointer so that a
// missing score can be told apart from 0.
type ScoreRequest struct {
	Score *int `json:"score"`
}
