package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gosm1/pureperfumes/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

const productColumns = `id, name, brand, price, original_price, images, tag, category, description, notes, seasons, theme, theme_config, created_at`

// scanProduct scans one product row. The seasons and theme_config JSONB
// columns arrive as raw bytes and are decoded here, at the read boundary.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p           model.Product
		seasons     []byte
		themeConfig []byte
	)

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Brand,
		&p.Price,
		&p.OriginalPrice,
		&p.Images,
		&p.Tag,
		&p.Category,
		&p.Description,
		&p.Notes,
		&seasons,
		&p.Theme,
		&themeConfig,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(seasons) > 0 {
		p.Seasons = &model.Seasons{}
		if err := json.Unmarshal(seasons, p.Seasons); err != nil {
			return nil, fmt.Errorf("failed to decode seasons: %w", err)
		}
	}
	if len(themeConfig) > 0 {
		p.ThemeConfig = &model.ThemeConfig{}
		if err := json.Unmarshal(themeConfig, p.ThemeConfig); err != nil {
			return nil, fmt.Errorf("failed to decode theme config: %w", err)
		}
	}

	return &p, nil
}

// encodeJSON marshals a nullable JSONB value, keeping SQL NULL for nil.
func encodeJSON(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// GetAll retrieves every product, ordered by name.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, name, brand, price, original_price, images, tag, category, description, notes, seasons, theme, theme_config, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	seasons, err := encodeJSON(nullable(product.Seasons))
	if err != nil {
		return fmt.Errorf("failed to encode seasons: %w", err)
	}
	themeConfig, err := encodeJSON(nullable(product.ThemeConfig))
	if err != nil {
		return fmt.Errorf("failed to encode theme config: %w", err)
	}

	_, err = r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Brand,
		product.Price,
		product.OriginalPrice,
		product.Images,
		product.Tag,
		product.Category,
		product.Description,
		product.Notes,
		seasons,
		product.Theme,
		themeConfig,
		product.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return fmt.Errorf("failed to create product: %w", err)
	}

	r.logger.Debug().Str("product_id", product.ID).Msg("product created successfully")

	return nil
}

// Update replaces the full product record.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET name = $2, brand = $3, price = $4, original_price = $5, images = $6,
		    tag = $7, category = $8, description = $9, notes = $10, seasons = $11,
		    theme = $12, theme_config = $13
		WHERE id = $1
	`

	seasons, err := encodeJSON(nullable(product.Seasons))
	if err != nil {
		return fmt.Errorf("failed to encode seasons: %w", err)
	}
	themeConfig, err := encodeJSON(nullable(product.ThemeConfig))
	if err != nil {
		return fmt.Errorf("failed to encode theme config: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Brand,
		product.Price,
		product.OriginalPrice,
		product.Images,
		product.Tag,
		product.Category,
		product.Description,
		product.Notes,
		seasons,
		product.Theme,
		themeConfig,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("product_id", product.ID).Msg("product not found for update")
		return model.ErrProductNotFound
	}

	return nil
}

// Delete removes the product row.
func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	r.logger.Debug().Str("product_id", id).Msg("product deleted successfully")

	return nil
}

// nullable turns a typed nil pointer into an untyped nil so encodeJSON emits
// SQL NULL instead of the JSON literal "null".
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return v
}
