package service

import (
	"context"
	"time"

	"github.com/spec-kit/job-board-service/internal/auth"
	"github.com/spec-kit/job-board-service/internal/config"
	"github.com/spec-kit/job-board-service/internal/domain"
	apperrors "github.com/spec-kit/job-board-service/pkg/util"
)

// AuthService coordinates the login flow against the static registry.
type AuthService struct {
	credentials *auth.CredentialStore
	tokenMgr    *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, credentials *auth.CredentialStore) *AuthService {
	return &AuthService{
		credentials: credentials,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
	}
}

// Login authenticates a username/password pair and issues an access
// token carrying the username as subject.
func (s *AuthService) Login(_ context.Context, username, password string) (*domain.Identity, string, time.Time, error) {
	cred, ok := s.credentials.Lookup(username)
	if ok {
		if err := auth.ComparePassword(cred.PasswordHash, password); err == nil {
			token, exp, err := s.tokenMgr.GenerateToken(cred.Username)
			if err != nil {
				return nil, "", time.Time{}, err
			}
			return &domain.Identity{Username: cred.Username, Role: cred.Role}, token, exp, nil
		}
	}
	return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
