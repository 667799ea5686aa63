package auth

import (
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken - токен просрочен, поврежден или подписан не тем ключом
var ErrInvalidToken = errors.New("invalid session token")

// DefaultTokenTTL - время жизни сессионного токена
const DefaultTokenTTL = 24 * time.Hour

// SessionClaims - расшифрованное содержимое сессионного токена
type SessionClaims struct {
	Email     string
	ExpiresAt time.Time
	// Values - все подписанные claims, включая exp и iat
	Values map[string]any
}

// TokenService выдает и проверяет сессионные токены HS256.
// Кроме секрета состояния не хранит.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL возвращает время жизни выдаваемых токенов
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue подписывает claim как есть, добавляя iat и exp.
// Форма claim не проверяется.
func (s *TokenService) Issue(claim map[string]any) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{}
	maps.Copy(claims, claim)
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись, алгоритм и срок действия и возвращает содержимое
func (s *TokenService) Verify(token string) (*SessionClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &SessionClaims{
		Email:     email,
		ExpiresAt: exp.Time,
		Values:    claims,
	}, nil
}
