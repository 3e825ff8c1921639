// Package schema guarantees the portal's namespace and applications table
// exist before the first request is served.
package schema

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ltlab/internship-portal/internal/pkg/logger"
)

// Bootstrapper runs the startup DDL against the store.
type Bootstrapper struct {
	db     *pgxpool.Pool
	schema string
}

// NewBootstrapper creates a Bootstrapper for the given schema name.
func NewBootstrapper(db *pgxpool.Pool, schema string) *Bootstrapper {
	return &Bootstrapper{
		db:     db,
		schema: schema,
	}
}

// Statements returns the DDL run at startup, in execution order. Every
// statement uses IF NOT EXISTS, so running the bootstrap repeatedly leaves
// the store in the same state as running it once.
func Statements(schema string) []string {
	schemaIdent := pgx.Identifier{schema}.Sanitize()
	tableIdent := pgx.Identifier{schema, "applications"}.Sanitize()

	return []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schemaIdent),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			gender VARCHAR(32) NOT NULL,
			whatsapp VARCHAR(50) NOT NULL,
			education VARCHAR(255) NOT NULL,
			country VARCHAR(100) NOT NULL,
			linkedin VARCHAR(255) NOT NULL,
			domains VARCHAR(255) NOT NULL
		)`, tableIdent),
	}
}

// Bootstrap ensures the schema and the applications table exist. All DDL runs
// inside a single transaction, committed before any runtime insert happens.
func (b *Bootstrapper) Bootstrap(ctx context.Context) error {
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin bootstrap transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range Statements(b.schema) {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap statement failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit bootstrap transaction: %w", err)
	}

	logger.Info().Str("schema", b.schema).Msg("Database schema bootstrapped")
	return nil
}
