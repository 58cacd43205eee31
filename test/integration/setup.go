package integration

import (
	"context"
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

// createSchema creates the database schema for testing. It mirrors the
// embedded goose migration.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			product_id  BIGINT PRIMARY KEY,
			name        VARCHAR(255) NOT NULL,
			category    VARCHAR(100) NOT NULL DEFAULT '',
			brand       VARCHAR(100) NOT NULL DEFAULT '',
			model       VARCHAR(100) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			value       NUMERIC(10, 2) NOT NULL CHECK (value >= 0),
			weight      INTEGER NOT NULL CHECK (weight >= 0),
			created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS orders (
			order_id       BIGSERIAL PRIMARY KEY,
			user_id        BIGINT NOT NULL,
			product_id     BIGINT NOT NULL REFERENCES products (product_id),
			product_name   VARCHAR(255) NOT NULL,
			shipped_status VARCHAR(20) NOT NULL DEFAULT 'pending',
			weight         INTEGER NOT NULL CHECK (weight >= 0),
			value          INTEGER NOT NULL CHECK (value >= 0),
			created_at     TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			arrived_at     TIMESTAMPTZ
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedCatalog inserts a small product catalogue and order history used by
// the integration tests.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	products := `
		INSERT INTO products (product_id, name, category, brand, model, description, value, weight) VALUES
		(1, 'Pro Blender', 'kitchen', 'Acme', 'PB-100', 'A blender', 120.00, 8),
		(2, 'Toaster', 'kitchen', 'Globex', 'T-20', 'A toaster', 45.00, 4),
		(3, 'Pro Kettle', 'kitchen', 'Acme', 'PK-5', 'A kettle', 80.00, 3),
		(4, 'Compressor', 'workshop', 'Initech', 'C-900', 'A compressor', 300.00, 40)
		ON CONFLICT (product_id) DO NOTHING
	`
	if _, err := pool.Exec(ctx, products); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}

	orders := `
		INSERT INTO orders (order_id, user_id, product_id, product_name, shipped_status, weight, value, arrived_at) VALUES
		(1, 1, 1, 'Pro Blender', 'pending', 10, 60, NULL),
		(2, 1, 2, 'Toaster', 'pending', 20, 100, NULL),
		(3, 2, 3, 'Pro Kettle', 'pending', 30, 120, NULL),
		(4, 2, 4, 'Compressor', 'delivered', 40, 300, '2024-03-05T10:00:00Z')
		ON CONFLICT (order_id) DO NOTHING
	`
	if _, err := pool.Exec(ctx, orders); err != nil {
		t.Fatalf("failed to seed orders: %v", err)
	}
}
