// Package validation performs structural validation of inbound payloads.
// Callers branch on Result.IsValid only; Errors is the caller-visible list.
package validation

import (
	"github.com/Delo1999/quiztopia/internal/models"
)

// Result is the outcome of validating one payload.
type Result struct {
	IsValid bool
	Errors  []string
}

func resultOf(errs []string) Result {
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func checkLength(value string, f Field, min, max int, errs []string) []string {
	if value == "" {
		return append(errs, requiredMessage(f))
	}
	if min > 0 && len(value) < min {
		return append(errs, tooShortMessage(f, min))
	}
	if max > 0 && len(value) > max {
		return append(errs, tooLongMessage(f, max))
	}
	return errs
}

// ValidateRegistration validates a registration payload.
func ValidateRegistration(req models.RegisterRequest) Result {
	var errs []string

	if req.Email == "" {
		errs = append(errs, requiredMessage(FieldEmail))
	} else {
		if len(req.Email) > EmailMaxLen {
			errs = append(errs, tooLongMessage(FieldEmail, EmailMaxLen))
		}
		if !emailPattern.MatchString(req.Email) {
			errs = append(errs, MsgEmailInvalid)
		}
	}

	errs = checkLength(req.Password, FieldPassword, PasswordMinLen, PasswordMaxLen, errs)

	if req.Username == "" {
		errs = append(errs, requiredMessage(FieldUsername))
	} else {
		if len(req.Username) < UsernameMinLen {
			errs = append(errs, tooShortMessage(FieldUsername, UsernameMinLen))
		}
		if len(req.Username) > UsernameMaxLen {
			errs = append(errs, tooLongMessage(FieldUsername, UsernameMaxLen))
		}
		if !usernamePattern.MatchString(req.Username) {
			errs = append(errs, MsgUsernameInvalid)
		}
	}

	return resultOf(errs)
}

// ValidateLogin validates a login payload. Only presence is checked so that
// the login response never reveals which part of the credential was wrong.
func ValidateLogin(req models.LoginRequest) Result {
	var errs []string
	if req.Email == "" {
		errs = append(errs, requiredMessage(FieldEmail))
	}
	if req.Password == "" {
		errs = append(errs, requiredMessage(FieldPassword))
	}
	return resultOf(errs)
}

// ValidateQuiz validates a quiz creation payload.
func ValidateQuiz(req models.QuizCreateRequest) Result {
	var errs []string
	errs = checkLength(req.Name, FieldQuizName, QuizNameMinLen, QuizNameMaxLen, errs)
	if req.Description != "" && len(req.Description) > DescriptionMaxLen {
		errs = append(errs, tooLongMessage(FieldDescription, DescriptionMaxLen))
	}
	return resultOf(errs)
}

// ValidateQuestion validates an add-question payload. Both coordinate bounds
// are inclusive.
func ValidateQuestion(req models.QuestionCreateRequest) Result {
	var errs []string

	errs = checkLength(req.Text, FieldQuestionText, QuestionTextMinLen, QuestionTextMaxLen, errs)
	errs = checkLength(req.Answer, FieldAnswer, AnswerMinLen, AnswerMaxLen, errs)

	if req.Longitude == nil || req.Latitude == nil {
		errs = append(errs, MsgCoordinatesRequired)
	} else if *req.Longitude < LongitudeMin || *req.Longitude > LongitudeMax ||
		*req.Latitude < LatitudeMin || *req.Latitude > LatitudeMax {
		errs = append(errs, MsgCoordinatesInvalid)
	}

	switch req.Difficulty {
	case "", models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
	default:
		errs = append(errs, MsgDifficultyInvalid)
	}

	return resultOf(errs)
}

// ValidateScore validates a score submission payload. Zero is a valid score.
func ValidateScore(req models.ScoreRequest) Result {
	var errs []string
	if req.Score == nil {
		errs = append(errs, requiredMessage(FieldScore))
	} else if *req.Score < 0 {
		errs = append(errs, MsgScoreInvalid)
	}
	return resultOf(errs)
}
