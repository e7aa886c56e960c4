package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// CatalogTokenClaims is the payload of the jwt_token cookie. The token is
// issued and verified by the catalog API; the storefront only reads it.
type CatalogTokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// ReadTokenClaims decodes claims without verifying the signature.
func ReadTokenClaims(tokenString string) (*CatalogTokenClaims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &CatalogTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// TokenSubject returns the username or subject of a token, or "" when the
// token cannot be decoded.
func TokenSubject(tokenString string) string {
	claims, err := ReadTokenClaims(tokenString)
	if err != nil {
		return ""
	}
	if claims.Username != "" {
		return claims.Username
	}
	return claims.Subject
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
// Format: "Bearer <token>"
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is empty")
	}

	const bearerPrefix = "Bearer "
	if len(authHeader) < len(bearerPrefix) {
		return "", errors.New("invalid authorization header format")
	}

	if authHeader[:len(bearerPrefix)] != bearerPrefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", errors.New("token is empty")
	}

	return token, nil
}
