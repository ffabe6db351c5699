package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			brand VARCHAR(255) NOT NULL,
			price DECIMAL(10, 2) NOT NULL,
			original_price DECIMAL(10, 2),
			images TEXT[],
			tag VARCHAR(100),
			category VARCHAR(20) NOT NULL,
			description TEXT,
			notes TEXT[],
			seasons JSONB,
			theme VARCHAR(100),
			theme_config JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(30) NOT NULL,
			city VARCHAR(100) NOT NULL,
			other_city VARCHAR(100),
			address TEXT NOT NULL,
			cart_items JSONB NOT NULL,
			total_price DECIMAL(10, 2) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending'
		);

		CREATE TABLE IF NOT EXISTS special_offers (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			title VARCHAR(255) NOT NULL,
			summary VARCHAR(100) NOT NULL DEFAULT '',
			details TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			start_date TIMESTAMPTZ NOT NULL,
			end_date TIMESTAMPTZ NOT NULL,
			applicable_products TEXT[] NOT NULL DEFAULT '{}',
			priority INTEGER NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_special_offers_active ON special_offers(is_active, start_date, end_date);

		CREATE OR REPLACE FUNCTION notify_orders_changed() RETURNS trigger AS $$
		BEGIN
			PERFORM pg_notify('orders_changed', TG_OP);
			RETURN NULL;
		END;
		$$ LANGUAGE plpgsql;

		DROP TRIGGER IF EXISTS orders_changed_trigger ON orders;
		CREATE TRIGGER orders_changed_trigger
			AFTER INSERT OR UPDATE OR DELETE ON orders
			FOR EACH STATEMENT EXECUTE FUNCTION notify_orders_changed();
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test product data into the database.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		id       string
		name     string
		brand    string
		price    float64
		category string
	}{
		{"P001", "Amber Nights", "Aroma", 299.00, "men"},
		{"P002", "Rose Elixir", "Aroma", 349.00, "women"},
		{"P003", "Oud Intense", "Sillage", 399.00, "men"},
		{"P004", "Duo Discovery", "Sillage", 549.00, "pack"},
		{"P005", "Velvet Gift Box", "Aroma", 649.00, "gift-box"},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, brand, price, category) VALUES ($1, $2, $3, $4, $5)",
			p.id, p.name, p.brand, p.price, p.category,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"orders", "special_offers", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
