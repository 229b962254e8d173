// Package migrations applies the order store schema with goose.
// The SQL files are embedded so the binary migrates without a checkout.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// Up migrates db to the latest version.
func Up(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("db is required")
	}

	provider, err := newProvider(db)
	if err != nil {
		return err
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Version returns the version the database is currently at.
func Version(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newProvider(db)
	if err != nil {
		return 0, err
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("get db version: %w", err)
	}
	return version, nil
}

func newProvider(db *sql.DB) (*goose.Provider, error) {
	migrationsFS, err := fs.Sub(files, dir)
	if err != nil {
		return nil, fmt.Errorf("open migrations dir %q: %w", dir, err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrationsFS)
	if err != nil {
		return nil, fmt.Errorf("create goose provider: %w", err)
	}
	return provider, nil
}
