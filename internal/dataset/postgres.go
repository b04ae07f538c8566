// internal/dataset/postgres.go
package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"golang.org/x/sync/semaphore"

	"github.com/freshmart/dynamic-pricing/internal/config"
	"github.com/freshmart/dynamic-pricing/internal/domain"
)

// DB wraps the sqlx connection pool used when the product table lives
// in Postgres instead of a CSV file.
type DB struct {
	*sqlx.DB
	sem *semaphore.Weighted
}

var (
	dbInstance *DB
	once       sync.Once
)

// NewDB creates the database connection pool.
func NewDB(cfg *config.DatabaseConfig) (*DB, error) {
	var err error
	once.Do(func() {
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

		var db *sqlx.DB
		db, err = sqlx.Connect("postgres", connStr)
		if err != nil {
			return
		}

		// Configure connection pool
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		dbInstance = &DB{
			DB:  db,
			sem: semaphore.NewWeighted(10), // Limit to 10 concurrent operations
		}
	})

	return dbInstance, err
}

// LoadPostgres reads the product table from the products relation,
// ordered by its insert sequence so the in-memory order matches the
// seeded CSV order.
func LoadPostgres(ctx context.Context, db *DB) (*Table, error) {
	if err := db.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("could not acquire semaphore: %w", err)
	}
	defer db.sem.Release(1)

	var rows []domain.Product
	query := `SELECT product_id, name, category, base_price, stock, sales_7, sales_30, day
		FROM products ORDER BY seq`
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("products table is empty")
	}

	return New(rows)
}
