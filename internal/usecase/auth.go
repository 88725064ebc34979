package usecase

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
)

const adminSubject = "admin"

var ErrInvalidSession = errors.New("invalid or expired admin session")

// AuthGate é a senha única do painel. Não é uma fronteira de segurança: uma
// senha compartilhada, sem bloqueio por tentativas.
type AuthGate struct {
	password string
	secret   []byte
	ttl      time.Duration
	logger   *zap.Logger
	Now      func() time.Time
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewAuthGate(password, secret string, ttl time.Duration, logger *zap.Logger) *AuthGate {
	return &AuthGate{
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
		logger:   orNop(logger),
		Now:      time.Now,
	}
}

func (g *AuthGate) Login(password string) (Session, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		g.logger.Warn("admin login failed")
		return Session{}, &DomainError{Code: CodeAuthFailed, Message: "Invalid password"}
	}

	now := g.Now()
	exp := now.Add(g.ttl)
	claims := jwt.StandardClaims{
		Subject:   adminSubject,
		IssuedAt:  now.Unix(),
		ExpiresAt: exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return Session{}, &TechnicalError{Code: CodeStoreError, Message: "sign session: " + err.Error(), Err: err}
	}

	g.logger.Info("admin session opened", zap.Time("expires_at", exp))
	return Session{Token: token, ExpiresAt: exp}, nil
}

func (g *AuthGate) Verify(token string) error {
	claims := &jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject != adminSubject {
		return ErrInvalidSession
	}
	return nil
}
