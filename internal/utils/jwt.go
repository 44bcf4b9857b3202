package utils

import (
	"errors"
	"fmt"
	"time"

	"go-blog-server/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims 登录会话 Cookie 的载荷
type SessionClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Remember bool   `json:"remember"`
	Type     string `json:"type"` // "session"
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().Session.Secret)
}

func GenerateSessionToken(id uint, username string, remember bool, duration time.Duration) (string, error) {
	claims := SessionClaims{
		ID:       id,
		Username: username,
		Remember: remember,
		Type:     "session",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			Issuer:    "go-blog-server",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSecret())
}

func ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		if claims.Type != "session" {
			return nil, errors.New("invalid token type")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
