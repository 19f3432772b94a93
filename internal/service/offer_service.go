package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// OfferCreateInput carries the caller-supplied offer fields. The owner is
// always the authenticated caller, never an input.
type OfferCreateInput struct {
	Title       string
	Description string
	Company     string
	Salary      *float64
}

// OfferService manages the job offer listing and its access rules.
type OfferService struct {
	offers     repository.OfferRepository
	cache      repository.ListingCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewOfferService builds the service. Cache may be nil.
func NewOfferService(offers repository.OfferRepository, cache repository.ListingCache, dispatcher events.Dispatcher, logger *zap.Logger) *OfferService {
	return &OfferService{offers: offers, cache: cache, dispatcher: dispatcher, logger: logger}
}

// ListOffers returns the public listing, served from cache when warm.
func (s *OfferService) ListOffers(ctx context.Context) ([]domain.JobOffer, error) {
	if s.cache != nil {
		if offers, err := s.cache.Get(ctx); err == nil {
			return offers, nil
		} else if !errors.Is(err, repository.ErrCacheMiss) {
			s.logger.Warn("listing cache read failed", zap.Error(err))
		}
	}

	offers, err := s.offers.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, offers); err != nil {
			s.logger.Warn("listing cache write failed", zap.Error(err))
		}
	}
	return offers, nil
}

// CreateOffer stores a new offer owned by the caller.
func (s *OfferService) CreateOffer(ctx context.Context, principal *auth.Principal, input OfferCreateInput) (*domain.JobOffer, error) {
	offer := &domain.JobOffer{
		Title:         input.Title,
		Description:   input.Description,
		Company:       input.Company,
		Salary:        input.Salary,
		OwnerID:       principal.User.ID,
		OwnerUsername: principal.User.Username,
	}
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOfferCreated,
		Actor:     events.Actor{Username: principal.User.Username, Role: principal.User.Role},
		Timestamp: time.Now(),
		Payload:   events.OfferCreatedPayload{OfferID: offer.ID, Title: offer.Title, Company: offer.Company},
	})
	return offer, nil
}

// DeleteOffer removes an offer if the caller owns it or holds ROLE_ADMIN.
// The read-then-delete sequence is not atomic against a concurrent delete of
// the same row: the loser just sees not-found.
func (s *OfferService) DeleteOffer(ctx context.Context, principal *auth.Principal, id int64) error {
	offer, err := s.offers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("job offer", map[string]any{"id": id})
		}
		return err
	}

	isAdmin := principal.HasCapability(auth.CapabilityFor(domain.RoleAdmin))
	if !isAdmin && offer.OwnerID != principal.User.ID {
		return apperrors.NewForbidden("you can only delete your own job offers")
	}

	if err := s.offers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("job offer", map[string]any{"id": id})
		}
		return err
	}

	s.invalidateListing(ctx)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventOfferDeleted,
		Actor:     events.Actor{Username: principal.User.Username, Role: principal.User.Role},
		Timestamp: time.Now(),
		Payload: events.OfferDeletedPayload{
			OfferID:       offer.ID,
			Title:         offer.Title,
			OwnerUsername: offer.OwnerUsername,
			ByOwner:       offer.OwnerID == principal.User.ID,
		},
	})
	return nil
}

func (s *OfferService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("listing cache invalidation failed", zap.Error(err))
	}
}

func (s *OfferService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
