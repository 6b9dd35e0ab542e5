// Package postgres provides the GORM-based Unit of Work and the schema of the
// lab database.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	written, err := uow.Commit(ctx)
//	if err != nil {
//	    return err
//	}
//	if written == 0 {
//	    return errs.NewNothingCommittedError("create order")
//	}
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Orders and stages carry a version column; a stale write fails instead of overwriting
package postgres

import (
	"context"

	"dentallab/internal/adapters/out/postgres/directoryrepo"
	"dentallab/internal/adapters/out/postgres/orderrepo"
	"dentallab/internal/adapters/out/postgres/stagerepo"
	"dentallab/internal/core/ports"

	"gorm.io/gorm"
)

// trackedWrite is one repository write made during the unit of work.
type trackedWrite struct {
	Rows      int64
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction and counts the rows its
// repositories write, so callers can tell an empty commit from a real one.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	writes []trackedWrite
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	uow.writes = uow.writes[:0]
	return nil
}

// Commit finalizes the transaction and returns the number of rows written.
// After commit, the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) (int64, error) {
	if uow.tx == nil {
		return 0, gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return 0, err
	}

	return uow.Written(), nil
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.writes = uow.writes[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StageRepository() ports.StageRepository {
	return stagerepo.NewGormStageRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DirectoryRepository() ports.DirectoryRepository {
	return directoryrepo.NewGormDirectoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) StageTemplateCatalog() ports.StageTemplateCatalog {
	return directoryrepo.NewGormStageTemplateCatalog(uow.conn())
}

// Track registers rows written by a repository. Repositories call it after
// each successful statement.
func (uow *GormUnitOfWork) Track(rows int64, aggregate any) {
	uow.writes = append(uow.writes, trackedWrite{Rows: rows, Aggregate: aggregate})
}

// Written sums the rows tracked since Begin.
func (uow *GormUnitOfWork) Written() int64 {
	var total int64
	for _, w := range uow.writes {
		total += w.Rows
	}
	return total
}

// conn returns the active transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
