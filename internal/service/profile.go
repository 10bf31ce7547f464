package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"social-backend/internal/database"
	"social-backend/internal/models"

	"github.com/rs/zerolog/log"
)

type NewProfile struct {
	Email     string  `json:"email" validate:"required,email,max=254"`
	Password  string  `json:"password" validate:"required,min=8,max=72"`
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=30,username"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	About     *string `json:"about,omitempty" validate:"omitempty,max=1000"`
}

// ProfileChanges holds the fields to edit. Nil fields are left as stored.
type ProfileChanges struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,min=3,max=30,username"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	About     *string `json:"about,omitempty" validate:"omitempty,max=1000"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
}

// normalize treats blank optional fields as absent so that validation and
// the store see nil instead of an empty string.
func (p *NewProfile) normalize() {
	p.Username = nilIfBlank(p.Username)
	p.FirstName = nilIfBlank(p.FirstName)
}

// normalize treats a blank username or email as no change.
func (c *ProfileChanges) normalize() {
	c.Username = nilIfBlank(c.Username)
	c.Email = nilIfBlank(c.Email)
}

type UserProfileService struct {
	store    UnitOfWork
	hasher   CredentialHasher
	verifier EmailVerifier
	intN     func(n int) int
}

func NewUserProfileService(store UnitOfWork, hasher CredentialHasher, verifier EmailVerifier) *UserProfileService {
	return &UserProfileService{
		store:    store,
		hasher:   hasher,
		verifier: verifier,
		intN:     rand.IntN,
	}
}

func (s *UserProfileService) Get(ctx context.Context, userID int64) (*models.User, error) {
	var user *models.User

	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		user, err = q.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(err, userID, "get user")
	}

	return user, nil
}

// Create registers a new account and returns its id. The password is hashed
// before it reaches the store.
func (s *UserProfileService) Create(ctx context.Context, profile NewProfile) (int64, error) {
	profile.normalize()
	if err := validateStruct(profile); err != nil {
		return 0, err
	}

	hash, err := s.hasher.Hash(profile.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return 0, fmt.Errorf("internal error hashing password: %w", err)
	}

	var userID int64
	err = s.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		userID, err = q.CreateUser(ctx, database.CreateUserParams{
			Email:        profile.Email,
			Username:     profile.Username,
			PasswordHash: hash,
			FirstName:    profile.FirstName,
			About:        profile.About,
		})
		return err
	})
	if err != nil {
		return 0, s.fail(err, 0, "create user")
	}

	log.Info().Int64("user_id", userID).Msg("user created")
	return userID, nil
}

// Edit applies profile changes. A changed email is not written: a
// verification challenge is sent to the new address instead, and the stored
// email changes only once UpdateEmail is called after confirmation.
func (s *UserProfileService) Edit(ctx context.Context, userID int64, changes ProfileChanges) error {
	changes.normalize()
	if err := validateStruct(changes); err != nil {
		return err
	}

	var pendingEmail string

	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		user, err := q.GetUserByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrNotFound
		}

		if changes.Email != nil && *changes.Email != user.Email {
			owner, err := q.GetUserByEmail(ctx, *changes.Email)
			if err != nil {
				return err
			}
			if owner != nil {
				return database.ErrEmailTaken
			}
			pendingEmail = *changes.Email
		}

		_, err = q.UpdateUserProfile(ctx, database.UpdateUserProfileParams{
			ID:        userID,
			Username:  changes.Username,
			FirstName: changes.FirstName,
			About:     changes.About,
		})
		return err
	})
	if err != nil {
		return s.fail(err, userID, "edit user")
	}

	if pendingEmail != "" {
		if err := s.verifier.SendEmailChange(ctx, userID, pendingEmail); err != nil {
			log.Warn().Err(err).Int64("user_id", userID).Msg("failed to dispatch email change verification")
		}
	}

	return nil
}

// UpdateEmail overwrites the stored email. It is meant to run only after the
// new address was confirmed.
func (s *UserProfileService) UpdateEmail(ctx context.Context, userID int64, newEmail string) error {
	if err := validateEmail(newEmail); err != nil {
		return err
	}

	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		updated, err := q.UpdateUserEmail(ctx, userID, newEmail)
		if err != nil {
			return err
		}
		if !updated {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return s.fail(err, userID, "update user email")
	}

	return nil
}

// Delete hard-deletes the user together with every visibility grant it takes
// part in. Deleting an unknown id succeeds.
func (s *UserProfileService) Delete(ctx context.Context, userID int64) error {
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		deleted, err := q.DeleteUser(ctx, userID)
		if err != nil {
			return err
		}
		if deleted {
			log.Info().Int64("user_id", userID).Msg("user deleted")
		}
		return nil
	})
	if err != nil {
		return s.fail(err, userID, "delete user")
	}

	return nil
}

func (s *UserProfileService) Deactivate(ctx context.Context, userID int64) error {
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		updated, err := q.DeactivateUser(ctx, userID)
		if err != nil {
			return err
		}
		if !updated {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return s.fail(err, userID, "deactivate user")
	}

	return nil
}

func (s *UserProfileService) SuggestUsernames(ctx context.Context, userID int64) ([]string, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	return suggestUsernames(usernameBase(user), s.intN), nil
}

// fail translates err into the service taxonomy, logging anything that is
// not an expected domain outcome.
func (s *UserProfileService) fail(err error, userID int64, op string) error {
	err = translate(err)
	if isDomainError(err) {
		return err
	}

	log.Error().Err(err).Int64("user_id", userID).Msgf("failed to %s", op)
	return fmt.Errorf("failed to %s: %w", op, err)
}

func nilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
