package github

import (
	"errors"
	"strings"
)

var (
	ErrUserNotFound = errors.New("github user not found")
)

// GitHub reports unknown logins as a GraphQL error of type NOT_FOUND with this message prefix.
const userNotFoundMessage = "Could not resolve to a User"

func isUserNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), userNotFoundMessage)
}
