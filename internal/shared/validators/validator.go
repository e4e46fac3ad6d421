package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// TagGitHubLogin validates a GitHub user login: alphanumerics separated by single hyphens,
// not starting or ending with a hyphen. Length is checked separately with max=39.
const TagGitHubLogin = "github_login"

var gitHubLoginPattern = regexp.MustCompile(`^[A-Za-z0-9]+(-[A-Za-z0-9]+)*$`)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance with the custom tags registered.
func New() *Validate {
	v := validator.New()
	// only fails on an empty tag or nil func
	_ = v.RegisterValidation(TagGitHubLogin, isGitHubLogin)
	return v
}

func isGitHubLogin(fl validator.FieldLevel) bool {
	return gitHubLoginPattern.MatchString(fl.Field().String())
}
