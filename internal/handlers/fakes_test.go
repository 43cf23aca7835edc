package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Delo1999/quiztopia/internal/auth"
	"github.com/Delo1999/quiztopia/internal/config"
	"github.com/Delo1999/quiztopia/internal/middleware"
	"github.com/Delo1999/quiztopia/internal/models"
	"github.com/Delo1999/quiztopia/internal/repository"
)

// In-memory store fakes implementing the repository interfaces with the same
// observable semantics as the Postgres implementations.

type fakeUsers struct {
	byID map[uuid.UUID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[uuid.UUID]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	email := strings.ToLower(user.Email)
	for _, u := range f.byID {
		if u.Email == email {
			return repository.ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = email
	user.CreatedAt = time.Now().UTC()
	user.IsActive = true
	copied := *user
	f.byID[user.ID] = &copied
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	email = strings.ToLower(email)
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrUserNotFound
}

type fakeQuizzes struct {
	byID map[uuid.UUID]*models.Quiz
}

func newFakeQuizzes() *fakeQuizzes {
	return &fakeQuizzes{byID: map[uuid.UUID]*models.Quiz{}}
}

func (f *fakeQuizzes) Create(_ context.Context, quiz *models.Quiz) error {
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
	copied := *quiz
	f.byID[quiz.ID] = &copied
	return nil
}

func (f *fakeQuizzes) GetByID(_ context.Context, id uuid.UUID) (*models.Quiz, error) {
	if q, ok := f.byID[id]; ok {
		copied := *q
		return &copied, nil
	}
	return nil, repository.ErrQuizNotFound
}

func (f *fakeQuizzes) ListActive(_ context.Context) ([]models.Quiz, error) {
	quizzes := []models.Quiz{}
	for _, q := range f.byID {
		if q.IsActive {
			quizzes = append(quizzes, *q)
		}
	}
	sort.Slice(quizzes, func(i, j int) bool { return quizzes[i].CreatedAt.After(quizzes[j].CreatedAt) })
	return quizzes, nil
}

func (f *fakeQuizzes) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeQuestions struct {
	byQuiz map[uuid.UUID][]models.Question
}

func newFakeQuestions() *fakeQuestions {
	return &fakeQuestions{byQuiz: map[uuid.UUID][]models.Question{}}
}

func (f *fakeQuestions) Create(_ context.Context, question *models.Question) error {
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
	f.byQuiz[question.QuizID] = append(f.byQuiz[question.QuizID], *question)
	return nil
}

func (f *fakeQuestions) ListByQuiz(_ context.Context, quizID uuid.UUID) ([]models.Question, error) {
	return append([]models.Question{}, f.byQuiz[quizID]...), nil
}

func (f *fakeQuestions) DeleteByQuiz(_ context.Context, quizID uuid.UUID) error {
	delete(f.byQuiz, quizID)
	return nil
}

type fakeLeaderboard struct {
	entries map[uuid.UUID]map[uuid.UUID]*models.LeaderboardEntry
}

func newFakeLeaderboard() *fakeLeaderboard {
	return &fakeLeaderboard{entries: map[uuid.UUID]map[uuid.UUID]*models.LeaderboardEntry{}}
}

func (f *fakeLeaderboard) Upsert(_ context.Context, entry *models.LeaderboardEntry) error {
	quiz := f.entries[entry.QuizID]
	if quiz == nil {
		quiz = map[uuid.UUID]*models.LeaderboardEntry{}
		f.entries[entry.QuizID] = quiz
	}

	now := time.Now().UTC()
	entry.UpdatedAt = now
	entry.IsActive = true
	if existing, ok := quiz[entry.UserID]; ok {
		entry.CreatedAt = existing.CreatedAt
		if !entry.UpdatedAt.After(existing.UpdatedAt) {
			entry.UpdatedAt = existing.UpdatedAt.Add(time.Nanosecond)
		}
	} else {
		entry.CreatedAt = now
	}
	copied := *entry
	quiz[entry.UserID] = &copied
	return nil
}

func (f *fakeLeaderboard) ListByQuiz(_ context.Context, quizID uuid.UUID, limit int) ([]models.LeaderboardEntry, error) {
	entries := []models.LeaderboardEntry{}
	for _, e := range f.entries[quizID] {
		if e.IsActive {
			entries = append(entries, *e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (f *fakeLeaderboard) DeleteByQuiz(_ context.Context, quizID uuid.UUID) error {
	delete(f.entries, quizID)
	return nil
}

// testEnv wires the real handlers, middleware, and token service over fake
// stores, with the same route table as cmd/server.
type testEnv struct {
	router      *gin.Engine
	users       *fakeUsers
	quizzes     *fakeQuizzes
	questions   *fakeQuestions
	leaderboard *fakeLeaderboard
	tokens      *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:       newFakeUsers(),
		quizzes:     newFakeQuizzes(),
		questions:   newFakeQuestions(),
		leaderboard: newFakeLeaderboard(),
		tokens:      auth.NewTokenService("handler-test-secret", "quiztopia", time.Hour),
	}

	cfg := &config.Config{BcryptCost: bcrypt.MinCost, JWTLifetime: time.Hour}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/register", Register(cfg, env.users, env.tokens))
	api.POST("/auth/login", Login(env.users, env.tokens))
	api.GET("/quiz", ListQuizzes(env.quizzes))
	api.GET("/quiz/:quizId/leaderboard", GetLeaderboard(env.quizzes, env.leaderboard))

	protected := api.Group("", middleware.RequireAuth(env.tokens, env.users))
	protected.POST("/quiz", CreateQuiz(env.quizzes))
	protected.GET("/quiz/:quizId", GetQuiz(env.quizzes, env.questions))
	protected.DELETE("/quiz/:quizId", DeleteQuiz(env.quizzes, env.questions, env.leaderboard))
	protected.POST("/quiz/:quizId/question", CreateQuestion(env.quizzes, env.questions))
	protected.POST("/quiz/:quizId/score", RegisterScore(env.quizzes, env.leaderboard))

	env.router = r
	return env
}

// addUser registers a user directly against the store and returns it with a
// valid token.
func (e *testEnv) addUser(t *testing.T, email, username, password string) (*models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	user := &models.User{Email: email, Username: username, PasswordHash: string(hash)}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("creating user: %v", err)
	}

	token, err := e.tokens.GenerateToken(user)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}
	return user, token
}

// addQuiz creates a quiz directly against the store.
func (e *testEnv) addQuiz(t *testing.T, owner *models.User, name string) *models.Quiz {
	t.Helper()
	quiz := &models.Quiz{
		Name:              name,
		Description:       "test quiz",
		CreatedBy:         owner.ID,
		CreatedByUsername: owner.Username,
	}
	if err := e.quizzes.Create(context.Background(), quiz); err != nil {
		t.Fatalf("creating quiz: %v", err)
	}
	return quiz
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors responses.Envelope with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding envelope from %q: %v", w.Body.String(), err)
	}
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decoding data from %q: %v", string(env.Data), err)
	}
}

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
