// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dentallab/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle. Commit reports the
	// number of rows written; handlers treat zero as a failed commit.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) (int64, error)
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StageRepoFactory interface {
		StageRepository() ports.StageRepository
	}

	DirectoryRepoFactory interface {
		DirectoryRepository() ports.DirectoryRepository
	}

	CatalogFactory interface {
		StageTemplateCatalog() ports.StageTemplateCatalog
	}

	// OrderUoW is used to create orders: the order itself plus the clinic lookup.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DirectoryRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StageUoW is used for stage updates.
	StageUoW interface {
		TxManager
		StageRepoFactory
		DirectoryRepoFactory
	}

	StageUoWFactory interface {
		Create() StageUoW
	}

	// UoW spans orders, stages, reference data and the stage catalog. Order
	// status changes need all of them because Producing fans out stages.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   stageRepo := uow.StageRepository()
	//   // ... perform operations
	//
	//   written, err := uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		StageRepoFactory
		DirectoryRepoFactory
		CatalogFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
