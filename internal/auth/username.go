package auth

import (
	"context"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const usernameSuffixLen = 5

// allocateUsername derives a username from the email local-part. If that
// name is already taken, a short random suffix is appended. The suffixed
// value is not re-checked; the store's unique index is the final arbiter.
func allocateUsername(ctx context.Context, users UserStore, email string) (string, error) {
	username := strings.SplitN(email, "@", 2)[0]

	taken, err := users.UsernameExists(ctx, username)
	if err != nil {
		return "", err
	}
	if !taken {
		return username, nil
	}

	suffix, err := gonanoid.New(usernameSuffixLen)
	if err != nil {
		return "", err
	}
	return username + suffix, nil
}
