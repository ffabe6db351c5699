package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// offerRepository implements the OfferRepository interface using PostgreSQL.
type offerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOfferRepository creates a new PostgreSQL-backed special-offer repository.
func NewOfferRepository(pool *pgxpool.Pool, logger zerolog.Logger) OfferRepository {
	return &offerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "offer").Logger(),
	}
}

const offerColumns = `id, created_at, updated_at, title, summary, details, is_active, start_date, end_date, applicable_products, priority`

func scanOffer(row pgx.Row) (*model.SpecialOffer, error) {
	var o model.SpecialOffer
	err := row.Scan(
		&o.ID,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.Title,
		&o.Summary,
		&o.Details,
		&o.IsActive,
		&o.StartDate,
		&o.EndDate,
		&o.ApplicableProducts,
		&o.Priority,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offerRepository) queryOffers(ctx context.Context, query string, args ...any) ([]model.SpecialOffer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query offers")
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	var offers []model.SpecialOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan offer row")
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, *o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating offer rows")
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}

	return offers, nil
}

// GetAll retrieves every offer, highest priority first.
func (r *offerRepository) GetAll(ctx context.Context) ([]model.SpecialOffer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM special_offers
		ORDER BY priority DESC, created_at
	`
	return r.queryOffers(ctx, query)
}

// GetActive retrieves offers that are flagged active and whose date range
// contains now, boundaries inclusive, highest priority first. Ties keep the
// store's stable insertion order.
func (r *offerRepository) GetActive(ctx context.Context, now time.Time) ([]model.SpecialOffer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM special_offers
		WHERE is_active = TRUE
		  AND start_date <= $1
		  AND end_date >= $1
		ORDER BY priority DESC, created_at
	`
	return r.queryOffers(ctx, query, now)
}

// GetByID retrieves an offer by its ID.
func (r *offerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SpecialOffer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM special_offers
		WHERE id = $1
	`

	o, err := scanOffer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("offer_id", id.String()).Msg("offer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to query offer")
		return nil, fmt.Errorf("failed to query offer: %w", err)
	}

	return o, nil
}

// Create inserts a new offer.
func (r *offerRepository) Create(ctx context.Context, offer *model.SpecialOffer) error {
	query := `
		INSERT INTO special_offers (id, created_at, updated_at, title, summary, details, is_active, start_date, end_date, applicable_products, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		offer.ID,
		offer.CreatedAt,
		offer.UpdatedAt,
		offer.Title,
		offer.Summary,
		offer.Details,
		offer.IsActive,
		offer.StartDate,
		offer.EndDate,
		offer.ApplicableProducts,
		offer.Priority,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("offer_id", offer.ID.String()).Msg("failed to create offer")
		return fmt.Errorf("failed to create offer: %w", err)
	}

	r.logger.Debug().Str("offer_id", offer.ID.String()).Msg("offer created successfully")

	return nil
}

// Update replaces the full offer record.
func (r *offerRepository) Update(ctx context.Context, offer *model.SpecialOffer) error {
	query := `
		UPDATE special_offers
		SET updated_at = $2, title = $3, summary = $4, details = $5, is_active = $6,
		    start_date = $7, end_date = $8, applicable_products = $9, priority = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		offer.ID,
		offer.UpdatedAt,
		offer.Title,
		offer.Summary,
		offer.Details,
		offer.IsActive,
		offer.StartDate,
		offer.EndDate,
		offer.ApplicableProducts,
		offer.Priority,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("offer_id", offer.ID.String()).Msg("failed to update offer")
		return fmt.Errorf("failed to update offer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("offer_id", offer.ID.String()).Msg("offer not found for update")
		return model.ErrOfferNotFound
	}

	return nil
}

// Delete removes the offer row.
func (r *offerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM special_offers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("offer_id", id.String()).Msg("failed to delete offer")
		return fmt.Errorf("failed to delete offer: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("offer_id", id.String()).Msg("offer not found for delete")
		return model.ErrOfferNotFound
	}

	r.logger.Debug().Str("offer_id", id.String()).Msg("offer deleted successfully")

	return nil
}
