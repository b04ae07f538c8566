package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type dbKeyType struct{}

var dbKey dbKeyType

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func newCSVFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "csv",
		Usage:   "Path to the groceries CSV file",
		Value:   "./data/groceries.csv",
		EnvVars: []string{"DATA_PATH"},
	}
}

func initDB(c *cli.Context) error {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.Context = context.WithValue(c.Context, dbKey, db)
	return nil
}

func closeDB(c *cli.Context) error {
	if db, ok := c.Context.Value(dbKey).(*sql.DB); ok && db != nil {
		return db.Close()
	}
	return nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Load and validate the grocery product dataset",
		Commands: []*cli.Command{
			{
				Name:  "products",
				Usage: "Seed the products table from a groceries CSV file",
				Flags: []cli.Flag{
					newDBURLFlag(),
					newCSVFlag(),
				},
				Before: initDB,
				After:  closeDB,
				Action: runProductSeeder,
			},
			{
				Name:   "validate",
				Usage:  "Load a groceries CSV file and report its shape",
				Flags:  []cli.Flag{newCSVFlag()},
				Action: runValidate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
