package services

import (
	"crypto/subtle"

	"github.com/rs/zerolog"

	"github.com/ltlab/internship-portal/internal/pkg/apperrors"
	"github.com/ltlab/internship-portal/internal/pkg/auth"
)

// AuthService defines the interface for the portal's single-account login.
type AuthService interface {
	Login(email, password string) (string, error)
}

// authServiceImpl implements AuthService against the configured admin
// credential. No account table exists; when the credential is not configured,
// every login attempt fails.
type authServiceImpl struct {
	adminEmail        string
	adminPasswordHash string
	sessions          *auth.SessionService
	logger            zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminEmail, adminPasswordHash string, sessions *auth.SessionService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		sessions:          sessions,
		logger:            logger,
	}
}

// Login checks the credentials and returns a signed session token on success.
func (s *authServiceImpl) Login(email, password string) (string, error) {
	if s.adminEmail == "" || s.adminPasswordHash == "" {
		s.logger.Warn().Msg("Login attempted but no admin credential is configured")
		return "", apperrors.ErrInvalidCredentials
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	if !emailMatch || !auth.CheckPassword(s.adminPasswordHash, password) {
		s.logger.Warn().Str("email", email).Msg("Failed login attempt")
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.CreateToken(email)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to create session token")
		return "", err
	}

	s.logger.Info().Str("email", email).Msg("Login succeeded")
	return token, nil
}
