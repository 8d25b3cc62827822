package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"akademiku_backend/internals/configs"
)

const accessTokenTTL = 24 * time.Hour

// IssueAccessToken signs the HMAC bearer token the parent middleware
// verifies. Claim names match what the middleware hydrates into locals.
func IssueAccessToken(userID, academyID uuid.UUID, role string) (string, int64, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":         userID.String(),
		"user_id":    userID.String(),
		"academy_id": academyID.String(),
		"role":       role,
		"iat":        now.Unix(),
		"exp":        now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(accessTokenTTL.Seconds()), nil
}
