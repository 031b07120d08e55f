// Package token выпускает и проверяет подписанные bearer-токены двух классов:
// короткоживущие access и долгоживущие refresh. Классы подписываются разными
// секретами, поэтому токен одного класса никогда не проходит проверку другого.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken возвращается при любой неудачной проверке токена:
// неверная подпись, истекший срок, некорректный формат.
// Единая ошибка не дает вызывающему различать причины отказа.
var ErrInvalidToken = errors.New("invalid token")

// Issuer значение iss в выпускаемых токенах
const Issuer = "taskkeeper"

// Claims представляет JWT claims приложения
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Config содержит секреты и сроки жизни токенов.
// Заполняется один раз при старте процесса и передается в NewService,
// обработчики запросов не читают секреты из глобального состояния.
type Config struct {
	AccessSecret    []byte
	RefreshSecret   []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Service выпускает и проверяет access и refresh токены
type Service struct {
	cfg Config
}

// NewService создает сервис токенов.
// Оба секрета обязательны: их отсутствие — ошибка конфигурации процесса.
func NewService(cfg Config) (*Service, error) {
	if len(cfg.AccessSecret) == 0 {
		return nil, fmt.Errorf("access token secret is required")
	}
	if len(cfg.RefreshSecret) == 0 {
		return nil, fmt.Errorf("refresh token secret is required")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("access token TTL must be positive")
	}
	if cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("refresh token TTL must be positive")
	}
	return &Service{cfg: cfg}, nil
}

// AccessTokenTTL возвращает настроенный срок жизни access токена
func (s *Service) AccessTokenTTL() time.Duration {
	return s.cfg.AccessTokenTTL
}

// IssueAccess создает новый access токен для пользователя
func (s *Service) IssueAccess(userID string) (string, error) {
	return s.issue(userID, s.cfg.AccessSecret, s.cfg.AccessTokenTTL)
}

// IssueRefresh создает новый refresh токен для пользователя
func (s *Service) IssueRefresh(userID string) (string, error) {
	return s.issue(userID, s.cfg.RefreshSecret, s.cfg.RefreshTokenTTL)
}

// VerifyAccess проверяет access токен и возвращает ID пользователя
func (s *Service) VerifyAccess(tokenString string) (string, error) {
	return s.verify(tokenString, s.cfg.AccessSecret)
}

// VerifyRefresh проверяет refresh токен и возвращает ID пользователя
func (s *Service) VerifyRefresh(tokenString string) (string, error) {
	return s.verify(tokenString, s.cfg.RefreshSecret)
}

// issue подписывает токен с указанным секретом и сроком жизни
func (s *Service) issue(userID string, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
			Subject:   userID,
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// verify проверяет подпись и срок действия токена.
// Детали отказа не покидают пакет, наружу уходит только ErrInvalidToken.
func (s *Service) verify(tokenString string, secret []byte) (string, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC, иначе возможна подмена алгоритма
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
