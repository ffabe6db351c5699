package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gosm1/pureperfumes/internal/model"
	"github.com/gosm1/pureperfumes/internal/repository"
	"github.com/gosm1/pureperfumes/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// catalogService implements CatalogService.
type catalogService struct {
	productRepo repository.ProductRepository
	images      storage.ImageStore
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, images storage.ImageStore, logger zerolog.Logger) CatalogService {
	return &catalogService{
		productRepo: productRepo,
		images:      images,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List retrieves products matching the filter text.
func (s *catalogService) List(ctx context.Context, filter string) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	matched := make([]model.Product, 0, len(products))
	needle := strings.ToLower(filter)
	for i := range products {
		if needle != "" &&
			!strings.Contains(strings.ToLower(products[i].Name), needle) &&
			!strings.Contains(strings.ToLower(products[i].Brand), needle) {
			continue
		}
		normalize(&products[i])
		matched = append(matched, products[i])
	}

	s.logger.Debug().
		Int("count", len(matched)).
		Str("filter", filter).
		Msg("retrieved products")

	return matched, nil
}

// ListGrouped partitions the filtered catalogue into standard and pack groups.
func (s *catalogService) ListGrouped(ctx context.Context, filter string) (*ProductGroups, error) {
	products, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	groups := &ProductGroups{
		Standard: []model.Product{},
		Packs:    []model.Product{},
	}
	for _, p := range products {
		if p.IsPack() {
			groups.Packs = append(groups.Packs, p)
		} else {
			groups.Standard = append(groups.Standard, p)
		}
	}

	return groups, nil
}

// Get retrieves a single product by ID.
func (s *catalogService) Get(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	normalize(product)

	return product, nil
}

// Create inserts a new product.
func (s *catalogService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.validate(product); err != nil {
		return nil, err
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	product.CreatedAt = time.Now()
	applyCategoryRule(product)

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("category", string(product.Category)).
		Msg("product created")

	return product, nil
}

// Update replaces the full product record.
func (s *catalogService) Update(ctx context.Context, id string, product *model.Product) (*model.Product, error) {
	if err := s.validate(product); err != nil {
		return nil, err
	}

	product.ID = id
	applyCategoryRule(product)

	if err := s.productRepo.Update(ctx, product); err != nil {
		if err == model.ErrProductNotFound {
			return nil, err
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes the product and cleans up its uploaded images. Image
// cleanup is best-effort: an orphaned image is logged, never surfaced, and
// never blocks the row deletion.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to load product for delete")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if product == nil {
		return model.ErrProductNotFound
	}

	for _, imageURL := range product.Images {
		if err := s.images.Delete(ctx, imageURL); err != nil {
			s.logger.Warn().
				Err(err).
				Str("product_id", id).
				Str("image_url", imageURL).
				Msg("failed to delete product image, continuing")
		}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		if err == model.ErrProductNotFound {
			return err
		}
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}

// validate checks the writable fields common to create and update.
func (s *catalogService) validate(product *model.Product) error {
	if product == nil {
		return fmt.Errorf("product is nil")
	}
	if product.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if product.Brand == "" {
		return fmt.Errorf("product brand is required")
	}
	if product.Price < 0 {
		return fmt.Errorf("product price cannot be negative")
	}
	if !product.Category.IsValid() {
		s.logger.Warn().Str("category", string(product.Category)).Msg("invalid category")
		return model.ErrInvalidCategory
	}
	return nil
}

// applyCategoryRule enforces the mutual exclusivity of the category-dependent
// fields at write time: packs persist theme data and drop notes/seasons,
// everything else persists notes/seasons and drops theme data.
func applyCategoryRule(p *model.Product) {
	if p.IsPack() {
		p.Notes = nil
		p.Seasons = nil
	} else {
		p.Theme = nil
		p.ThemeConfig = nil
	}
}

// normalize fills read-side defaults for standard products stored before the
// notes and seasons columns existed.
func normalize(p *model.Product) {
	if p.IsPack() {
		return
	}
	if p.Notes == nil {
		p.Notes = []string{}
	}
	if p.Seasons == nil {
		p.Seasons = model.DefaultSeasons()
	}
}
