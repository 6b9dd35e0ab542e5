package directoryrepo

import (
	"context"
	"errors"

	"dentallab/internal/core/domain/model/directory"
	"dentallab/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDirectoryRepository implements DirectoryRepository using GORM.
type GormDirectoryRepository struct {
	db *gorm.DB
}

func NewGormDirectoryRepository(db *gorm.DB) *GormDirectoryRepository {
	return &GormDirectoryRepository{db: db}
}

func (r *GormDirectoryRepository) GetDentalClinic(ctx context.Context, id int64) (directory.DentalClinic, error) {
	var dto DentalDTO
	if err := r.first(ctx, &dto, "dental clinic", id); err != nil {
		return directory.DentalClinic{}, err
	}

	return directory.DentalClinic{ID: dto.ID, Name: dto.Name, Address: dto.Address}, nil
}

func (r *GormDirectoryRepository) GetAccount(ctx context.Context, id int64) (directory.Account, error) {
	var dto AccountDTO
	if err := r.first(ctx, &dto, "account", id); err != nil {
		return directory.Account{}, err
	}

	return directory.Account{ID: dto.ID, FullName: dto.FullName, Role: dto.Role}, nil
}

func (r *GormDirectoryRepository) first(ctx context.Context, dest any, name string, id int64) error {
	if err := r.db.WithContext(ctx).First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(name, id)
		}
		return err
	}
	return nil
}
