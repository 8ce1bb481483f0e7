// Package auth is the session boundary in front of the ledger. There is
// no real credential store behind it: any well-formed login succeeds
// after a simulated network delay, and the session is a signed JWT the
// middleware checks before any ledger route.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidToken       = errors.New("invalid session token")
)

const tokenTTL = 24 * time.Hour

// Session identifies the authenticated caller.
type Session struct {
	Email string
	Name  string
}

type Service struct {
	secret []byte
	delay  time.Duration
	now    func() time.Time
}

// NewService builds the session boundary. delay is the simulated
// network latency applied to credential submission.
func NewService(secret string, delay time.Duration) *Service {
	return &Service{secret: []byte(secret), delay: delay, now: time.Now}
}

// Login accepts any non-empty email/password pair after the simulated
// delay and returns a signed session token. The delay is cancellable
// through ctx.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}

	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(email, nameFromEmail(email))
}

type RegisterParams struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register applies the password rules, waits the simulated delay, and
// signs the new caller in. Rule violations are rejected before the
// delay, mirroring the entry form.
func (s *Service) Register(ctx context.Context, p RegisterParams) (string, error) {
	if p.Password != p.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	if len(p.Password) < 8 {
		return "", ErrPasswordTooShort
	}

	if err := s.wait(ctx); err != nil {
		return "", err
	}

	if p.Name == "" || p.Email == "" {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(p.Email, p.Name)
}

// Verify parses and validates a session token.
func (s *Service) Verify(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)

	if email == "" {
		return nil, ErrInvalidToken
	}

	return &Session{Email: email, Name: name}, nil
}

func (s *Service) issueToken(email, name string) (string, error) {
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"name": name,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// wait blocks for the configured delay or until ctx is cancelled.
func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func nameFromEmail(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
