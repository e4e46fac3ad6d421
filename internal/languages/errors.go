package languages

import (
	"fmt"

	"langshare/internal/shared/svcerrors"
)

// LanguageService errors
const (
	codeInvalidLogin = "LANG_1000"
	codeUserNotFound = "LANG_1001"

	codeUpstreamFailed          = "LANG_9000"
	codeInternalNormalizeFailed = "LANG_9001"
)

// errInvalidLogin returns an error when the requested login is not a valid GitHub login.
func errInvalidLogin(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLogin, "invalid github login", cause)
}

// errUserNotFound returns an error when GitHub does not know the login.
func errUserNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeUserNotFound, "github user not found", cause)
}

// errUpstreamFailed returns an error when the GitHub API could not be queried.
func errUpstreamFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeUpstreamFailed, "github api unavailable", fmt.Errorf("repositoryFetchFailed: %w", cause))
}

// errInternalNormalizeFailed returns an error when shares could not be normalized.
func errInternalNormalizeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalNormalizeFailed, fmt.Errorf("shareNormalizeFailed: %w", cause))
}
