// Package directoryrepo reads the lab's reference data: dental clinics,
// accounts, products, tooth positions and the category stage templates.
package directoryrepo

import (
	"github.com/shopspring/decimal"
)

type DentalDTO struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255)"`
}

func (DentalDTO) TableName() string {
	return "dentals"
}

type AccountDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	FullName string `gorm:"type:varchar(255);not null"`
	Role     string `gorm:"type:varchar(50)"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

type CategoryDTO struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type ProductDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	CostPrice   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CategoryID  int64           `gorm:"not null;index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type TeethPositionDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	ToothArch    int    `gorm:"not null"`
	PositionName string `gorm:"type:varchar(50);not null"`
	Description  string `gorm:"type:text"`
}

func (TeethPositionDTO) TableName() string {
	return "teeth_positions"
}

// ProductStageDTO is a named production step. ExecutionTime is in hours.
type ProductStageDTO struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(255);not null"`
	Description   string  `gorm:"type:text"`
	IndexStage    int     `gorm:"not null"`
	ExecutionTime float64 `gorm:"not null"`
}

func (ProductStageDTO) TableName() string {
	return "product_stages"
}

// GroupStageDTO links a product stage into a category's sequence.
type GroupStageDTO struct {
	ID             int64 `gorm:"primaryKey;autoIncrement"`
	CategoryID     int64 `gorm:"not null;index"`
	ProductStageID int64 `gorm:"not null"`
}

func (GroupStageDTO) TableName() string {
	return "group_stages"
}
