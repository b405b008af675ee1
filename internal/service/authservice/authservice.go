package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/coinkeeper/pkg/auth"
)

const tokenTTL = 24 * time.Hour

var (
	ErrInvalidCaller = errors.New("caller id must be positive")
	ErrInvalidSecret = errors.New("invalid admin secret")
)

type Service struct {
	hashService     auth.HashServiceInterface
	jwtService      auth.JWTServiceInterface
	adminSecretHash string
}

func New(hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, adminSecretHash string) *Service {
	return &Service{
		hashService:     hashService,
		jwtService:      jwtService,
		adminSecretHash: adminSecretHash,
	}
}

// IssueToken exchanges an optional admin secret for a service token. An
// empty secret yields a plain token; a secret that does not match the
// configured bcrypt hash is rejected rather than silently downgraded.
func (s *Service) IssueToken(ctx context.Context, callerID int64, adminSecret string) (string, bool, error) {
	if callerID <= 0 {
		return "", false, ErrInvalidCaller
	}

	isAdmin := false
	if adminSecret != "" {
		if s.adminSecretHash == "" || !s.hashService.CompareSecret(s.adminSecretHash, adminSecret) {
			return "", false, ErrInvalidSecret
		}
		isAdmin = true
	}

	token, err := s.jwtService.GenerateJWT(callerID, isAdmin, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("failed to generate token", zap.Error(err))
		return "", false, err
	}
	return token, isAdmin, nil
}
