package ports

import (
	"context"

	"dentallab/internal/core/domain/model/directory"
	"dentallab/internal/core/domain/model/stage"
)

// DirectoryRepository reads reference data. Missing rows are reported as
// errs.ObjectNotFoundError.
type DirectoryRepository interface {
	GetDentalClinic(ctx context.Context, id int64) (directory.DentalClinic, error)
	GetAccount(ctx context.Context, id int64) (directory.Account, error)
}

// StageTemplateCatalog provides the production stage templates of a product category.
type StageTemplateCatalog interface {
	// StagesForCategory returns the templates ordered by indexStage. A category
	// without templates yields an empty slice.
	StagesForCategory(ctx context.Context, categoryID int64) ([]stage.Template, error)
}
