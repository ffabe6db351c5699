package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// offerService implements OfferService.
type offerService struct {
	offerRepo repository.OfferRepository
	logger    zerolog.Logger
}

// NewOfferService creates a new special-offer service.
func NewOfferService(offerRepo repository.OfferRepository, logger zerolog.Logger) OfferService {
	return &offerService{
		offerRepo: offerRepo,
		logger:    logger.With().Str("service", "offer").Logger(),
	}
}

// Active retrieves currently valid offers, highest priority first. The
// promoted banner is the first element. A query failure degrades to an empty
// list; storefront rendering never sees the error.
func (s *offerService) Active(ctx context.Context, now time.Time) []model.SpecialOffer {
	offers, err := s.offerRepo.GetActive(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to fetch active offers, returning none")
		return []model.SpecialOffer{}
	}
	if offers == nil {
		return []model.SpecialOffer{}
	}
	return offers
}

// List retrieves every offer for the admin surface.
func (s *offerService) List(ctx context.Context) ([]model.SpecialOffer, error) {
	offers, err := s.offerRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list offers")
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	if offers == nil {
		offers = []model.SpecialOffer{}
	}
	return offers, nil
}

// Get retrieves an offer by its ID.
func (s *offerService) Get(ctx context.Context, id uuid.UUID) (*model.SpecialOffer, error) {
	offer, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to get offer")
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	if offer == nil {
		return nil, model.ErrOfferNotFound
	}
	return offer, nil
}

// Create inserts a new offer.
func (s *offerService) Create(ctx context.Context, offer *model.SpecialOffer) (*model.SpecialOffer, error) {
	if err := s.validate(offer); err != nil {
		return nil, err
	}

	now := time.Now()
	offer.ID = uuid.New()
	offer.CreatedAt = now
	offer.UpdatedAt = now
	if offer.ApplicableProducts == nil {
		offer.ApplicableProducts = []string{}
	}

	if err := s.offerRepo.Create(ctx, offer); err != nil {
		s.logger.Error().Err(err).Str("offer_id", offer.ID.String()).Msg("failed to create offer")
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}

	s.logger.Info().Str("offer_id", offer.ID.String()).Str("title", offer.Title).Msg("offer created")

	return offer, nil
}

// Update replaces the full offer record.
func (s *offerService) Update(ctx context.Context, id uuid.UUID, offer *model.SpecialOffer) (*model.SpecialOffer, error) {
	if err := s.validate(offer); err != nil {
		return nil, err
	}

	offer.ID = id
	offer.UpdatedAt = time.Now()
	if offer.ApplicableProducts == nil {
		offer.ApplicableProducts = []string{}
	}

	if err := s.offerRepo.Update(ctx, offer); err != nil {
		if err == model.ErrOfferNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to update offer")
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}

	s.logger.Info().Str("offer_id", id.String()).Msg("offer updated")

	return offer, nil
}

// Delete removes the offer.
func (s *offerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.offerRepo.Delete(ctx, id); err != nil {
		if err == model.ErrOfferNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to delete offer")
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	s.logger.Info().Str("offer_id", id.String()).Msg("offer deleted")

	return nil
}

func (s *offerService) validate(offer *model.SpecialOffer) error {
	if offer == nil {
		return fmt.Errorf("offer is nil")
	}
	if offer.Title == "" {
		return fmt.Errorf("offer title is required")
	}
	if len(offer.Summary) > model.MaxOfferSummaryLength {
		s.logger.Warn().Int("length", len(offer.Summary)).Msg("offer summary too long")
		return model.ErrSummaryTooLong
	}
	if offer.EndDate.Before(offer.StartDate) {
		return fmt.Errorf("offer end date cannot precede start date")
	}
	return nil
}
