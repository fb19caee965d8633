// internal/auth/jwt.go
package auth

import (
	"budget-tracker/internal/config"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "budget-tracker"

var ErrInvalidToken = errors.New("invalid token")

// Claims полезная нагрузка токена: id пользователя плюс стандартные поля.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secretKey []byte
	expiresIn time.Duration
	parser    *jwt.Parser
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.JWTSecret),
		expiresIn: cfg.JWTExpiresIn,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
		),
	}
}

func (s *TokenService) GenerateToken(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}

	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	slog.Info("JWT generated", "user_id", userID, "expires_at", claims.ExpiresAt.Format(time.DateTime))
	return tokenStr, nil
}

// ParseToken проверяет подпись, издателя и срок, возвращает id пользователя.
func (s *TokenService) ParseToken(tokenStr string) (int64, error) {
	var claims Claims
	if _, err := s.parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	}); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}
	slog.Debug("JWT parsed", "user_id", claims.UserID)
	return claims.UserID, nil
}
