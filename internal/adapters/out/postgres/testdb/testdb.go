// Package testdb provides an in-memory database with the lab schema and a
// small reference data set for tests.
package testdb

import (
	"testing"

	"dentallab/internal/adapters/out/postgres"
	"dentallab/internal/adapters/out/postgres/directoryrepo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite opens a migrated in-memory SQLite database. A single connection
// is kept open so every statement sees the same database.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}

// Fixture holds the ids of the seeded reference data.
type Fixture struct {
	ClinicID        int64
	StaffID         int64
	ManagerID       int64
	ZirconiaID      int64 // product whose category has three stages
	TemporaryID     int64 // product whose category has no stages
	TeethPositionID int64
}

// Stage templates of the zirconia category, in order.
var ZirconiaStages = []struct {
	Name  string
	Hours float64
}{
	{"Design", 2},
	{"Milling", 1.5},
	{"Finishing", 1},
}

// Seed inserts one clinic, two accounts, two categories with their products,
// a tooth position and the zirconia stage templates.
func Seed(t testing.TB, db *gorm.DB) Fixture {
	t.Helper()

	clinic := directoryrepo.DentalDTO{Name: "Smile Clinic", Address: "12 Le Loi"}
	staff := directoryrepo.AccountDTO{FullName: "Tran Thi Lan", Role: "Staff"}
	manager := directoryrepo.AccountDTO{FullName: "Nguyen Van Minh", Role: "Manager"}
	zirconia := directoryrepo.CategoryDTO{Name: "Zirconia"}
	temporary := directoryrepo.CategoryDTO{Name: "Temporary"}
	position := directoryrepo.TeethPositionDTO{ToothArch: 1, PositionName: "11", Description: "upper right central incisor"}

	for _, row := range []any{&clinic, &staff, &manager, &zirconia, &temporary, &position} {
		require.NoError(t, db.Create(row).Error)
	}

	crown := directoryrepo.ProductDTO{Name: "Zirconia crown", Description: "Monolithic zirconia", CostPrice: decimal.RequireFromString("80"), CategoryID: zirconia.ID}
	temp := directoryrepo.ProductDTO{Name: "Temporary crown", CostPrice: decimal.RequireFromString("10"), CategoryID: temporary.ID}
	require.NoError(t, db.Create(&crown).Error)
	require.NoError(t, db.Create(&temp).Error)

	// Inserted in reverse so the catalog has to sort by index.
	for i := len(ZirconiaStages) - 1; i >= 0; i-- {
		ps := directoryrepo.ProductStageDTO{
			Name:          ZirconiaStages[i].Name,
			IndexStage:    i + 1,
			ExecutionTime: ZirconiaStages[i].Hours,
		}
		require.NoError(t, db.Create(&ps).Error)
		require.NoError(t, db.Create(&directoryrepo.GroupStageDTO{CategoryID: zirconia.ID, ProductStageID: ps.ID}).Error)
	}

	return Fixture{
		ClinicID:        clinic.ID,
		StaffID:         staff.ID,
		ManagerID:       manager.ID,
		ZirconiaID:      crown.ID,
		TemporaryID:     temp.ID,
		TeethPositionID: position.ID,
	}
}
