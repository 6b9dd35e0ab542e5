// Package stagerepo persists the production stages of order items.
package stagerepo

import (
	"time"

	"dentallab/internal/core/domain/model/stage"
)

// StageDTO is one row of order_item_stages. ExecutionTime is stored in hours.
type StageDTO struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	OrderItemID   int64      `gorm:"not null;index:idx_stage_item_index,priority:1"`
	IndexStage    int        `gorm:"not null;index:idx_stage_item_index,priority:2"`
	StaffID       *int64     `gorm:"index"`
	StageName     string     `gorm:"type:varchar(255);not null"`
	Description   string     `gorm:"type:text"`
	ExecutionTime float64    `gorm:"not null"`
	Status        string     `gorm:"type:varchar(20);not null;index"`
	StartDate     time.Time  `gorm:"not null"`
	EndDate       *time.Time
	Note          string     `gorm:"type:text"`
	Image         string     `gorm:"type:text"`
	Version       int        `gorm:"not null;default:1"`
}

func (StageDTO) TableName() string {
	return "order_item_stages"
}

func fromDomain(st *stage.Stage) StageDTO {
	return StageDTO{
		ID:            st.ID(),
		OrderItemID:   st.OrderItemID(),
		IndexStage:    st.Index(),
		StaffID:       st.StaffID(),
		StageName:     st.Name(),
		Description:   st.Description(),
		ExecutionTime: st.ExecutionTime().Hours(),
		Status:        st.Status().String(),
		StartDate:     st.StartDate(),
		EndDate:       st.EndDate(),
		Note:          st.Note(),
		Image:         st.Image(),
		Version:       st.Version(),
	}
}

func toDomain(dto StageDTO) (*stage.Stage, error) {
	status, err := stage.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return stage.RestoreStage(stage.Snapshot{
		ID:            dto.ID,
		OrderItemID:   dto.OrderItemID,
		Index:         dto.IndexStage,
		StaffID:       dto.StaffID,
		Name:          dto.StageName,
		Description:   dto.Description,
		ExecutionTime: HoursToDuration(dto.ExecutionTime),
		Status:        status,
		StartDate:     dto.StartDate,
		EndDate:       dto.EndDate,
		Note:          dto.Note,
		Image:         dto.Image,
		Version:       dto.Version,
	})
}

// HoursToDuration converts a stored execution time to a Duration, rounded to the second.
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour)).Round(time.Second)
}
