package directoryrepo

import (
	"context"

	"dentallab/internal/adapters/out/postgres/stagerepo"
	"dentallab/internal/core/domain/model/stage"

	"gorm.io/gorm"
)

// GormStageTemplateCatalog reads stage templates from group_stages joined
// with product_stages.
type GormStageTemplateCatalog struct {
	db *gorm.DB
}

func NewGormStageTemplateCatalog(db *gorm.DB) *GormStageTemplateCatalog {
	return &GormStageTemplateCatalog{db: db}
}

func (c *GormStageTemplateCatalog) StagesForCategory(ctx context.Context, categoryID int64) ([]stage.Template, error) {
	templates := make([]stage.Template, 0)

	rows, err := c.db.WithContext(ctx).Raw(`
		SELECT
			group_stages.category_id,
			product_stages.index_stage,
			product_stages.name,
			product_stages.description,
			product_stages.execution_time
		FROM group_stages
		JOIN product_stages ON product_stages.id = group_stages.product_stage_id
		WHERE group_stages.category_id = ?
		ORDER BY product_stages.index_stage, product_stages.id
	`, categoryID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t     stage.Template
			hours float64
		)
		if err = rows.Scan(&t.CategoryID, &t.Index, &t.Name, &t.Description, &hours); err != nil {
			return nil, err
		}
		t.ExecutionTime = stagerepo.HoursToDuration(hours)
		templates = append(templates, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}
