package utils

import (
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/threadlab/threadlab-backend-go/config"
)

// Claims carries the guest session identity. There is no user account
// behind it; the session ID is what owns carts, votes and saved designs.
type Claims struct {
	SessionID string `json:"sessionId"`
	jwt.StandardClaims
}

const sessionTTL = 30 * 24 * time.Hour

func GenerateSessionToken(sessionID string) (string, error) {
	claims := &Claims{
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(sessionTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("SESSION_SECRET", "dev-session-secret")))
}

func ValidateSessionToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GetEnv("SESSION_SECRET", "dev-session-secret")), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}

	return claims, nil
}
