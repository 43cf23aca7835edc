package validation

import "regexp"

// Field length and range rules for every validated payload field.
const (
	EmailMaxLen = 255

	PasswordMinLen = 6
	PasswordMaxLen = 128

	UsernameMinLen = 3
	UsernameMaxLen = 50

	QuizNameMinLen    = 3
	QuizNameMaxLen    = 100
	DescriptionMaxLen = 500

	QuestionTextMinLen = 10
	QuestionTextMaxLen = 500
	AnswerMinLen       = 1
	AnswerMaxLen       = 200

	LongitudeMin = -180.0
	LongitudeMax = 180.0
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)
