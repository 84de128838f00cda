package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user identifier as the token's sole custom claim.
// No expiry is set: tokens are long-lived, and callers that need expiry
// must add it explicitly.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// IssueToken signs an HS256 token binding the user identifier.
func IssueToken(userID string, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: userID})
	return token.SignedString(secret)
}

// ParseToken verifies the signature and returns the user identifier.
func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
