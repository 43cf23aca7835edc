package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Delo1999/quiztopia/internal/auth"
	"github.com/Delo1999/quiztopia/internal/models"
	"github.com/Delo1999/quiztopia/internal/repository"
)

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrUserNotFound
}

func setupAuthTest(t *testing.T) (*gin.Engine, *fakeUserStore, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &fakeUserStore{users: map[uuid.UUID]*models.User{}}
	tokens := auth.NewTokenService("middleware-test-secret", "quiztopia", time.Hour)

	r := gin.New()
	r.GET("/protected", RequireAuth(tokens, store), func(c *gin.Context) {
		userID, _ := GetAuthUserID(c)
		email, _ := GetAuthEmail(c)
		username, _ := GetAuthUsername(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email, "username": username})
	})

	return r, store, tokens
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_AllFailuresAreUniform(t *testing.T) {
	r, store, tokens := setupAuthTest(t)

	user := &models.User{ID: uuid.New(), Email: "bob@example.com", Username: "bob"}
	store.users[user.ID] = user

	expired := auth.NewTokenService("middleware-test-secret", "quiztopia", -time.Hour)
	expiredToken, err := expired.GenerateToken(user)
	if err != nil {
		t.Fatalf("generating expired token: %v", err)
	}

	deleted := &models.User{ID: uuid.New(), Email: "gone@example.com", Username: "gone"}
	deletedToken, err := tokens.GenerateToken(deleted)
	if err != nil {
		t.Fatalf("generating token for deleted user: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc123"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expiredToken},
		{"token for deleted user", "Bearer " + deletedToken},
	}

	var firstBody string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, tc.header)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}
			// Every rejection must look identical to the caller.
			if firstBody == "" {
				firstBody = w.Body.String()
			} else if w.Body.String() != firstBody {
				t.Errorf("body = %q, want %q", w.Body.String(), firstBody)
			}
		})
	}
}

func TestRequireAuth_ValidTokenSetsIdentity(t *testing.T) {
	r, store, tokens := setupAuthTest(t)

	user := &models.User{ID: uuid.New(), Email: "carol@example.com", Username: "carol"}
	store.users[user.ID] = user

	token, err := tokens.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	w := get(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{user.ID.String(), "carol@example.com", "carol"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q missing %q", body, want)
		}
	}
}

func TestGetAuthIdentity_AbsentContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := GetAuthUserID(c); ok {
		t.Error("GetAuthUserID() ok = true on empty context")
	}
	if _, ok := GetAuthEmail(c); ok {
		t.Error("GetAuthEmail() ok = true on empty context")
	}
	if _, ok := GetAuthUsername(c); ok {
		t.Error("GetAuthUsername() ok = true on empty context")
	}
}
