package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/domain/model/directory"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var now = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListItemCategories(ctx context.Context, orderID int64) ([]ports.ItemCategory, error) {
	args := m.Called(ctx, orderID)
	if c, ok := args.Get(0).([]ports.ItemCategory); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStageRepository struct{ mock.Mock }

func (m *MockStageRepository) AddMany(ctx context.Context, stages []*stage.Stage) error {
	args := m.Called(ctx, stages)
	return args.Error(0)
}

func (m *MockStageRepository) Update(ctx context.Context, st *stage.Stage) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockStageRepository) Get(ctx context.Context, id int64) (*stage.Stage, error) {
	args := m.Called(ctx, id)
	if st, ok := args.Get(0).(*stage.Stage); ok {
		return st, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStageRepository) ListByItem(ctx context.Context, orderItemID int64) ([]*stage.Stage, error) {
	args := m.Called(ctx, orderItemID)
	if s, ok := args.Get(0).([]*stage.Stage); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStageRepository) CountByOrder(ctx context.Context, orderID int64, status stage.Status) (int, error) {
	args := m.Called(ctx, orderID, status)
	return args.Int(0), args.Error(1)
}

type MockDirectoryRepository struct{ mock.Mock }

func (m *MockDirectoryRepository) GetDentalClinic(ctx context.Context, id int64) (directory.DentalClinic, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.DentalClinic), args.Error(1)
}

func (m *MockDirectoryRepository) GetAccount(ctx context.Context, id int64) (directory.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(directory.Account), args.Error(1)
}

type MockStageTemplateCatalog struct{ mock.Mock }

func (m *MockStageTemplateCatalog) StagesForCategory(ctx context.Context, categoryID int64) ([]stage.Template, error) {
	args := m.Called(ctx, categoryID)
	if t, ok := args.Get(0).([]stage.Template); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StageRepository() ports.StageRepository {
	args := m.Called()
	return args.Get(0).(ports.StageRepository)
}

func (m *MockUoW) DirectoryRepository() ports.DirectoryRepository {
	args := m.Called()
	return args.Get(0).(ports.DirectoryRepository)
}

func (m *MockUoW) StageTemplateCatalog() ports.StageTemplateCatalog {
	args := m.Called()
	return args.Get(0).(ports.StageTemplateCatalog)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStageUoWFactory struct{ mock.Mock }

func (m *MockStageUoWFactory) Create() commands.StageUoW {
	args := m.Called()
	return args.Get(0).(commands.StageUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
