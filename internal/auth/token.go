package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pantgram/homidirect/internal/domain"
)

type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies access tokens. It is constructed once at
// startup with the signing secret and injected where needed; nothing in this
// package reads process-wide state.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

func (s *Service) Issue(u *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:  string(u.Role),
		Email: u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(u.ID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token and rebuilds the principal from its
// claims. Every failure collapses to ErrUnauthenticated; callers do not need
// to know why a token was rejected.
func (s *Service) Verify(tokenStr string) (*domain.Principal, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, domain.ErrUnauthenticated
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	role, ok := domain.ParseRole(c.Role)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return &domain.Principal{ID: id, Email: c.Email, Role: role}, nil
}
