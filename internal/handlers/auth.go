package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Delo1999/quiztopia/internal/auth"
	"github.com/Delo1999/quiztopia/internal/config"
	"github.com/Delo1999/quiztopia/internal/models"
	"github.com/Delo1999/quiztopia/internal/repository"
	"github.com/Delo1999/quiztopia/internal/responses"
	"github.com/Delo1999/quiztopia/internal/validation"
)

// dummyPasswordHash is compared against when login hits an unknown email, so
// that the unknown-email and wrong-password paths take the same time and
// return the same response.
const dummyPasswordHash = "$2a$10$sTGx0JjVBbv3kgr3Z3Nv7.qr6xULdWup/oXlrkxZJ3nbQOsV7qiZe"

// Register creates a new user account and returns it with a fresh token.
func Register(cfg *config.Config, users repository.UserStore, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, validation.MsgValidationFailed, []string{"Invalid request body"})
			return
		}

		result := validation.ValidateRegistration(req)
		if !result.IsValid {
			responses.BadRequest(c, validation.MsgValidationFailed, result.Errors)
			return
		}

		// Reject duplicate emails before attempting the write; the unique
		// index still backs this up under races.
		_, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err == nil {
			responses.Conflict(c, validation.MsgEmailAlreadyRegistered)
			return
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			slog.Error("register email lookup failed", "error", err)
			responses.InternalServerError(c, "Failed to register user")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cfg.BcryptCost)
		if err != nil {
			slog.Error("register password hash failed", "error", err)
			responses.InternalServerError(c, "Failed to register user")
			return
		}

		user := &models.User{
			Email:        req.Email,
			Username:     req.Username,
			PasswordHash: string(hash),
		}
		if err := users.Create(c.Request.Context(), user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				responses.Conflict(c, validation.MsgEmailAlreadyRegistered)
				return
			}
			slog.Error("register create user failed", "error", err)
			responses.InternalServerError(c, "Failed to register user")
			return
		}

		token, err := tokens.GenerateToken(user)
		if err != nil {
			slog.Error("register token generation failed", "error", err, "user_id", user.ID)
			responses.InternalServerError(c, "Failed to register user")
			return
		}

		responses.Created(c, models.AuthResponse{
			User:  user.ToResponse(),
			Token: token,
		}, "User registered successfully")
	}
}

// Login verifies the email/password pair and returns the user with a fresh
// token. An unknown email and a wrong password are indistinguishable in the
// response.
func Login(users repository.UserStore, tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, validation.MsgValidationFailed, []string{"Invalid request body"})
			return
		}

		result := validation.ValidateLogin(req)
		if !result.IsValid {
			responses.BadRequest(c, validation.MsgValidationFailed, result.Errors)
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			slog.Error("login email lookup failed", "error", err)
			responses.InternalServerError(c, "Failed to login")
			return
		}

		hash := dummyPasswordHash
		if user != nil {
			hash = user.PasswordHash
		}
		compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password))
		if user == nil || compareErr != nil {
			responses.Unauthorized(c, validation.MsgLoginFailed)
			return
		}

		token, err := tokens.GenerateToken(user)
		if err != nil {
			slog.Error("login token generation failed", "error", err, "user_id", user.ID)
			responses.InternalServerError(c, "Failed to login")
			return
		}

		responses.Success(c, models.AuthResponse{
			User:  user.ToResponse(),
			Token: token,
		}, "Login successful")
	}
}
