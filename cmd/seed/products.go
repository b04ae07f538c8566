package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/urfave/cli/v2"

	"github.com/freshmart/dynamic-pricing/internal/dataset"
)

const createProductsTable = `
CREATE TABLE IF NOT EXISTS products (
	seq        SERIAL PRIMARY KEY,
	product_id INTEGER NOT NULL,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL,
	base_price DOUBLE PRECISION NOT NULL,
	stock      INTEGER NOT NULL,
	sales_7    INTEGER NOT NULL,
	sales_30   INTEGER NOT NULL,
	day        INTEGER NOT NULL
)`

// runProductSeeder loads the CSV through the same loader the server
// uses, so anything the server would reject never reaches the table,
// then replaces the products relation in one transaction.
func runProductSeeder(c *cli.Context) error {
	db, ok := c.Context.Value(dbKey).(*sql.DB)
	if !ok || db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	table, err := dataset.LoadCSV(c.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to load CSV: %w", err)
	}

	if _, err := db.ExecContext(c.Context, createProductsTable); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}

	tx, err := db.BeginTx(c.Context, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(c.Context, "DELETE FROM products"); err != nil {
		return fmt.Errorf("failed to clear products table: %w", err)
	}

	stmt, err := tx.PrepareContext(c.Context, `
		INSERT INTO products (product_id, name, category, base_price, stock, sales_7, sales_30, day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range table.All() {
		if _, err := stmt.ExecContext(c.Context,
			p.ProductID, p.Name, p.Category, p.BasePrice, p.Stock, p.Sales7, p.Sales30, p.Day); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Printf("seeded %d products from %s", table.Len(), c.String("csv"))
	return nil
}
