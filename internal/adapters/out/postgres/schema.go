package postgres

import (
	"context"
	"strings"

	"dentallab/internal/adapters/out/postgres/directoryrepo"
	"dentallab/internal/adapters/out/postgres/orderrepo"
	"dentallab/internal/adapters/out/postgres/stagerepo"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Models lists every table of the lab database, reference data first.
func Models() []any {
	return []any{
		&directoryrepo.DentalDTO{},
		&directoryrepo.AccountDTO{},
		&directoryrepo.CategoryDTO{},
		&directoryrepo.ProductDTO{},
		&directoryrepo.TeethPositionDTO{},
		&directoryrepo.ProductStageDTO{},
		&directoryrepo.GroupStageDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&stagerepo.StageDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// TruncateAll empties the given tables and restarts their id sequences.
// PostgreSQL only.
func TruncateAll(ctx context.Context, db *gorm.DB, tables ...string) error {
	quoted := make([]string, 0, len(tables))
	for _, table := range tables {
		quoted = append(quoted, pq.QuoteIdentifier(table))
	}

	return db.WithContext(ctx).
		Exec("TRUNCATE TABLE " + strings.Join(quoted, ", ") + " RESTART IDENTITY CASCADE").
		Error
}

// TableNames returns the table names of Models in the same order.
func TableNames(db *gorm.DB) ([]string, error) {
	names := make([]string, 0, len(Models()))
	for _, model := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, err
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}
