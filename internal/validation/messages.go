package validation

import "fmt"

// Field identifies a validated payload field. The set is closed: every field
// resolves to its messages through exhaustive switches below, never through
// constructed lookup keys.
type Field int

const (
	FieldEmail Field = iota
	FieldPassword
	FieldUsername
	FieldQuizName
	FieldDescription
	FieldQuestionText
	FieldAnswer
	FieldLongitude
	FieldLatitude
	FieldScore
)

// Error messages that are not derived from a rule bound.
const (
	MsgEmailInvalid           = "Invalid email format"
	MsgUsernameInvalid        = "Username can only contain letters, numbers, hyphens, and underscores"
	MsgCoordinatesRequired    = "Longitude and latitude coordinates are required"
	MsgCoordinatesInvalid     = "Invalid coordinates. Longitude must be between -180 and 180, latitude between -90 and 90"
	MsgScoreInvalid           = "Score must be a non-negative number"
	MsgDifficultyInvalid      = "Difficulty must be one of: easy, medium, hard"
	MsgLoginFailed            = "Invalid email or password"
	MsgUnauthorized           = "Invalid or expired token"
	MsgValidationFailed       = "Validation failed"
	MsgInternalError          = "Internal server error occurred"
	MsgResourceNotFound       = "Resource not found"
	MsgEmailAlreadyRegistered = "User with this email already exists"
)

func (f Field) label() string {
	switch f {
	case FieldEmail:
		return "Email"
	case FieldPassword:
		return "Password"
	case FieldUsername:
		return "Username"
	case FieldQuizName:
		return "Quiz name"
	case FieldDescription:
		return "Description"
	case FieldQuestionText:
		return "Question text"
	case FieldAnswer:
		return "Answer"
	case FieldLongitude:
		return "Longitude"
	case FieldLatitude:
		return "Latitude"
	case FieldScore:
		return "Score"
	}
	return "Field"
}

func requiredMessage(f Field) string {
	return fmt.Sprintf("%s is required", f.label())
}

func tooShortMessage(f Field, min int) string {
	return fmt.Sprintf("%s must be at least %d characters long", f.label(), min)
}

func tooLongMessage(f Field, max int) string {
	return fmt.Sprintf("%s must be no more than %d characters long", f.label(), max)
}
