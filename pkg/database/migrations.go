package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient text search over candidate mechanisms and issue
// descriptions from the dashboard.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_candidates_mechanism_gin
		ON candidates USING gin(to_tsvector('english', mechanism_description))`)
	if err != nil {
		return fmt.Errorf("failed to create mechanism_description GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_issues_description_gin
		ON issues USING gin(to_tsvector('english', description))`)
	if err != nil {
		return fmt.Errorf("failed to create issue description GIN index: %w", err)
	}

	return nil
}
