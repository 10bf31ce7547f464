package service

import (
	"context"
	"encoding/json"
	"fmt"

	"social-backend/internal/database"
	"social-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// VisibilityGrantService manages which users may see an owner's first name.
// Per (owner, viewer) pair there are two states: hidden (no grant row) and
// visible (grant row). Grant and Revoke are idempotent in their target state.
type VisibilityGrantService struct {
	store  UnitOfWork
	events EventPublisher
}

func NewVisibilityGrantService(store UnitOfWork, events EventPublisher) *VisibilityGrantService {
	return &VisibilityGrantService{
		store:  store,
		events: events,
	}
}

// Grant lets viewerID see ownerID's first name. Granting an existing pair is
// a no-op. Both users must exist.
func (s *VisibilityGrantService) Grant(ctx context.Context, ownerID, viewerID int64) error {
	var event json.RawMessage

	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		owner, err := q.GetUserByID(ctx, ownerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return fmt.Errorf("%w: owner %d", ErrNotFound, ownerID)
		}

		viewer, err := q.GetUserByID(ctx, viewerID)
		if err != nil {
			return err
		}
		if viewer == nil {
			return fmt.Errorf("%w: viewer %d", ErrNotFound, viewerID)
		}

		created, err := q.InsertGrant(ctx, ownerID, viewerID)
		if err != nil {
			return err
		}
		if !created || ownerID == viewerID {
			return nil
		}

		payload := map[string]interface{}{
			"owner_id":   owner.ID,
			"username":   owner.Username,
			"first_name": owner.FirstName,
		}
		event, err = q.LogEvent(ctx, viewerID, models.EventFirstNameVisible, payload)
		return err
	})
	if err != nil {
		return s.fail(err, ownerID, viewerID, "grant first name visibility")
	}

	s.publish(viewerID, event)
	return nil
}

// Revoke hides ownerID's first name from viewerID again. Revoking a pair
// that was never granted succeeds.
func (s *VisibilityGrantService) Revoke(ctx context.Context, ownerID, viewerID int64) error {
	var event json.RawMessage

	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		removed, err := q.DeleteGrant(ctx, ownerID, viewerID)
		if err != nil {
			return err
		}
		if !removed || ownerID == viewerID {
			return nil
		}

		payload := map[string]interface{}{"owner_id": ownerID}
		event, err = q.LogEvent(ctx, viewerID, models.EventFirstNameHidden, payload)
		return err
	})
	if err != nil {
		return s.fail(err, ownerID, viewerID, "revoke first name visibility")
	}

	s.publish(viewerID, event)
	return nil
}

// IsVisible reports whether viewerID may see ownerID's first name. Owners
// always see their own.
func (s *VisibilityGrantService) IsVisible(ctx context.Context, ownerID, viewerID int64) (bool, error) {
	if ownerID == viewerID {
		return true, nil
	}

	var visible bool
	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		visible, err = q.GrantExists(ctx, ownerID, viewerID)
		return err
	})
	if err != nil {
		return false, s.fail(err, ownerID, viewerID, "check first name visibility")
	}

	return visible, nil
}

// ViewProfile returns ownerID's profile as viewerID sees it: the first name
// is present only when it is visible to the viewer.
func (s *VisibilityGrantService) ViewProfile(ctx context.Context, ownerID, viewerID int64) (*models.PublicProfile, error) {
	var profile *models.PublicProfile

	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		owner, err := q.GetUserByID(ctx, ownerID)
		if err != nil {
			return err
		}
		if owner == nil {
			return ErrNotFound
		}

		visible := ownerID == viewerID
		if !visible {
			visible, err = q.GrantExists(ctx, ownerID, viewerID)
			if err != nil {
				return err
			}
		}

		profile = &models.PublicProfile{
			ID:       owner.ID,
			Username: owner.Username,
			About:    owner.About,
			IsActive: owner.IsActive,
		}
		if visible {
			profile.FirstName = owner.FirstName
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(err, ownerID, viewerID, "view profile")
	}

	return profile, nil
}

func (s *VisibilityGrantService) ListViewers(ctx context.Context, ownerID int64) ([]models.Viewer, error) {
	var viewers []models.Viewer

	err := s.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		viewers, err = q.ListViewers(ctx, ownerID)
		return err
	})
	if err != nil {
		return nil, s.fail(err, ownerID, 0, "list first name viewers")
	}

	return viewers, nil
}

func (s *VisibilityGrantService) publish(userID int64, event json.RawMessage) {
	if event == nil || s.events == nil {
		return
	}
	s.events.PublishEvent(userID, event)
}

func (s *VisibilityGrantService) fail(err error, ownerID, viewerID int64, op string) error {
	err = translate(err)
	if isDomainError(err) {
		return err
	}

	log.Error().Err(err).Int64("owner_id", ownerID).Int64("viewer_id", viewerID).Msgf("failed to %s", op)
	return fmt.Errorf("failed to %s: %w", op, err)
}
