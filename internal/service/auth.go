package service

import (
	"context"
	"fmt"
	"time"

	"social-backend/internal/auth"
	"social-backend/internal/database"
	"social-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/rs/zerolog/log"
)

const refreshTokenLength = 40

type LoginInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	UserAgent string `json:"-"`
	ClientIP  string `json:"-"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AuthConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type AuthService struct {
	store      UnitOfWork
	hasher     CredentialHasher
	profiles   *UserProfileService
	challenges EmailChallenges
	cfg        AuthConfig
	newToken   func() string
}

func NewAuthService(store UnitOfWork, hasher CredentialHasher, profiles *UserProfileService, challenges EmailChallenges, cfg AuthConfig) (*AuthService, error) {
	generateID, err := nanoid.Standard(refreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	return &AuthService{
		store:      store,
		hasher:     hasher,
		profiles:   profiles,
		challenges: challenges,
		cfg:        cfg,
		newToken:   generateID,
	}, nil
}

// Login checks the credentials and opens a session. Unknown emails, wrong
// passwords and deactivated accounts all yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*TokenPair, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var tokens *TokenPair
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		user, err := q.GetUserByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if user == nil || !user.IsActive || !s.hasher.Matches(in.Password, user.PasswordHash) {
			return ErrInvalidCredentials
		}

		tokens, err = s.openSession(ctx, q, user, in.UserAgent, in.ClientIP)
		return err
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		log.Error().Err(err).Str("email", in.Email).Msg("failed to open session")
		return nil, fmt.Errorf("failed to process login session: %w", err)
	}

	return tokens, nil
}

// Refresh rotates a refresh token: the presented session is deleted and a
// new one is opened in the same transaction. Each refresh token works once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken, userAgent, clientIP string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, newValidationError("refresh_token", "is required")
	}

	var tokens *TokenPair
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		user, err := q.GetUserByRefreshToken(ctx, refreshToken)
		if err != nil {
			return err
		}
		if user == nil || !user.IsActive {
			return ErrInvalidCredentials
		}

		// A concurrent refresh of the same token may have consumed it.
		consumed, err := q.DeleteSessionByRefreshToken(ctx, user.ID, refreshToken)
		if err != nil {
			return err
		}
		if !consumed {
			return ErrInvalidCredentials
		}

		tokens, err = s.openSession(ctx, q, user, userAgent, clientIP)
		return err
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		log.Error().Err(err).Msg("failed to rotate refresh token")
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	return tokens, nil
}

func (s *AuthService) openSession(ctx context.Context, q database.Querier, user *models.User, userAgent, clientIP string) (*TokenPair, error) {
	refreshToken := s.newToken()

	err := q.CreateSession(ctx, database.CreateSessionParams{
		ID:           uuid.New(),
		UserID:       user.ID,
		RefreshToken: refreshToken,
		UserAgent:    userAgent,
		ClientIP:     clientIP,
		ExpiresAt:    time.Now().Add(s.cfg.RefreshTTL),
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateJWT(user, s.cfg.Secret, s.cfg.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *AuthService) ListSessions(ctx context.Context, userID int64) ([]models.Session, error) {
	var sessions []models.Session
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		sessions, err = q.ListSessionsForUser(ctx, userID)
		return err
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to list sessions")
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// RevokeSession ends one of the user's sessions. Sessions of other users
// are reported as not found.
func (s *AuthService) RevokeSession(ctx context.Context, userID int64, sessionID uuid.UUID) error {
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		deleted, err := q.DeleteSessionByID(ctx, sessionID, userID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
		}
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return err
		}
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *AuthService) RevokeAllSessions(ctx context.Context, userID int64) error {
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		n, err := q.DeleteAllSessionsForUser(ctx, userID)
		if err == nil {
			log.Info().Int64("user_id", userID).Int64("sessions", n).Msg("all sessions terminated")
		}
		return err
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to terminate sessions")
		return fmt.Errorf("failed to terminate sessions: %w", err)
	}
	return nil
}

// Logout ends the session owned by userID. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, userID int64, refreshToken string) error {
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		_, err := q.DeleteSessionByRefreshToken(ctx, userID, refreshToken)
		return err
	})
	if err != nil {
		log.Error().Err(err).Int64("user_id", userID).Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ConfirmEmailUpdate writes the address held by an email-change challenge.
// The token is spent only once the new address is stored, so a failed
// update can be retried with the same link.
func (s *AuthService) ConfirmEmailUpdate(ctx context.Context, token string) error {
	if token == "" {
		return newValidationError("token", "is required")
	}

	userID, newEmail, found, err := s.challenges.Lookup(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up email change challenge")
		return fmt.Errorf("failed to look up email change challenge: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: email change token", ErrNotFound)
	}

	if err := s.profiles.UpdateEmail(ctx, userID, newEmail); err != nil {
		return err
	}

	if err := s.challenges.Consume(ctx, token); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("email changed but challenge was not consumed")
	}
	return nil
}
