package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and returns the number of rows
	// written through its repositories. Zero means nothing was persisted.
	Commit(ctx context.Context) (int64, error)

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// StageRepository returns a StageRepository bound to the current transaction.
	StageRepository() StageRepository

	// DirectoryRepository returns a DirectoryRepository bound to the current transaction.
	DirectoryRepository() DirectoryRepository

	// StageTemplateCatalog returns the catalog bound to the current transaction.
	StageTemplateCatalog() StageTemplateCatalog
}
