package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the raw token from an "Authorization: Bearer ..."
// header value. Returns an error when the header is missing or not in bearer
// form.
func ParseBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("empty authorization header")
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("authorization header is not a bearer token")
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", errors.New("empty bearer token")
	}

	return token, nil
}

// UserIDFromJWT returns the subject claim of a JWT issued by the remote
// store. The token is decoded without signature verification: the client has
// no sign key, and the claim is used only to stamp locally captured sales
// with the operator id. The remote store re-validates the token on every
// call.
func UserIDFromJWT(tokenString string) (string, error) {
	parser := jwt.NewParser()

	var claims jwt.RegisteredClaims
	_, _, err := parser.ParseUnverified(tokenString, &claims)
	if err != nil {
		return "", fmt.Errorf("parse jwt: %w", err)
	}

	if claims.Subject == "" {
		return "", errors.New("jwt has no subject claim")
	}

	return claims.Subject, nil
}
