package stagerepo_test

import (
	"context"
	"testing"
	"time"

	"dentallab/internal/adapters/out/postgres/orderrepo"
	"dentallab/internal/adapters/out/postgres/stagerepo"
	"dentallab/internal/adapters/out/postgres/testdb"
	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockRowTracker struct {
	mock.Mock
}

func (m *MockRowTracker) Track(rows int64, aggregate any) {
	m.Called(rows, aggregate)
}

var startedAt = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

type StageRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	fixture    testdb.Fixture
	tracker    *MockRowTracker
	repository *stagerepo.GormStageRepository
	orderID    int64
	itemIDs    []int64
}

func (suite *StageRepositoryTestSuite) SetupTest() {
	suite.db = testdb.NewSQLite(suite.T())
	suite.fixture = testdb.Seed(suite.T(), suite.db)
	suite.tracker = new(MockRowTracker)
	suite.tracker.On("Track", mock.Anything, mock.Anything)
	suite.repository = stagerepo.NewGormStageRepository(suite.db, suite.tracker)

	dto := orderrepo.OrderDTO{
		DentalID:      suite.fixture.ClinicID,
		PatientGender: "Male",
		Status:        "Producing",
		Mode:          "New",
		TeethQuantity: 2,
		TotalAmount:   decimal.NewFromInt(200),
		Discount:      decimal.Zero,
		FinalAmount:   decimal.NewFromInt(200),
		CreatedDate:   startedAt,
		Version:       1,
		Items: []orderrepo.OrderItemDTO{
			{ProductID: suite.fixture.ZirconiaID, TeethPositionID: suite.fixture.TeethPositionID, SellingPrice: decimal.NewFromInt(100), Quantity: 1, TotalAmount: decimal.NewFromInt(100)},
			{ProductID: suite.fixture.ZirconiaID, TeethPositionID: suite.fixture.TeethPositionID, SellingPrice: decimal.NewFromInt(100), Quantity: 1, TotalAmount: decimal.NewFromInt(100)},
		},
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	suite.orderID = dto.ID
	suite.itemIDs = []int64{dto.Items[0].ID, dto.Items[1].ID}
}

func (suite *StageRepositoryTestSuite) addStages(itemID int64, names ...string) []*stage.Stage {
	stages := make([]*stage.Stage, 0, len(names))
	for i, name := range names {
		st, err := stage.NewStage(itemID, stage.Template{
			CategoryID:    1,
			Index:         i + 1,
			Name:          name,
			ExecutionTime: 90 * time.Minute,
		}, startedAt)
		suite.Require().NoError(err)
		stages = append(stages, st)
	}
	suite.Require().NoError(suite.repository.AddMany(context.Background(), stages))
	return stages
}

func (suite *StageRepositoryTestSuite) TestAddMany_AssignsIDs() {
	stages := suite.addStages(suite.itemIDs[0], "Design", "Milling", "Finishing")

	for _, st := range stages {
		suite.Positive(st.ID())
	}
	suite.tracker.AssertCalled(suite.T(), "Track", int64(3), stages)
}

func (suite *StageRepositoryTestSuite) TestAddMany_Empty() {
	suite.Require().NoError(suite.repository.AddMany(context.Background(), nil))
	suite.tracker.AssertNotCalled(suite.T(), "Track", mock.Anything, mock.Anything)
}

func (suite *StageRepositoryTestSuite) TestListByItem_OrderedByIndex() {
	ctx := context.Background()
	suite.addStages(suite.itemIDs[0], "Design", "Milling", "Finishing")
	suite.addStages(suite.itemIDs[1], "Design")

	stages, err := suite.repository.ListByItem(ctx, suite.itemIDs[0])

	suite.Require().NoError(err)
	suite.Require().Len(stages, 3)
	for i, st := range stages {
		suite.Equal(i+1, st.Index())
		suite.Equal(stage.StatusPending, st.Status())
		suite.Equal(90*time.Minute, st.ExecutionTime())
		suite.True(st.StartDate().Equal(startedAt))
		suite.Nil(st.StaffID())
		suite.Nil(st.EndDate())
	}
	suite.Equal("Milling", stages[1].Name())
}

func (suite *StageRepositoryTestSuite) TestUpdate_PersistsChange() {
	ctx := context.Background()
	stages := suite.addStages(suite.itemIDs[0], "Design")
	st := stages[0]
	staff := suite.fixture.StaffID

	suite.Require().NoError(st.MarkPending(&staff, "mine"))
	suite.Require().NoError(suite.repository.Update(ctx, st))
	st.MarkCompleted("done", startedAt.Add(time.Hour))
	suite.Require().NoError(suite.repository.Update(ctx, st))

	stored, err := suite.repository.Get(ctx, st.ID())
	suite.Require().NoError(err)
	suite.Equal(stage.StatusCompleted, stored.Status())
	suite.Equal("done", stored.Note())
	suite.Require().NotNil(stored.StaffID())
	suite.Equal(staff, *stored.StaffID())
	suite.Require().NotNil(stored.EndDate())
	suite.True(stored.EndDate().Equal(startedAt.Add(time.Hour)))
	suite.Equal(3, stored.Version())
}

func (suite *StageRepositoryTestSuite) TestUpdate_StaleVersion() {
	ctx := context.Background()
	stages := suite.addStages(suite.itemIDs[0], "Design")

	stale, err := suite.repository.Get(ctx, stages[0].ID())
	suite.Require().NoError(err)

	suite.Require().NoError(stages[0].MarkCanceled(nil, ""))
	suite.Require().NoError(suite.repository.Update(ctx, stages[0]))

	stale.MarkCompleted("", startedAt)
	err = suite.repository.Update(ctx, stale)

	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *StageRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StageRepositoryTestSuite) TestCountByOrder() {
	ctx := context.Background()
	first := suite.addStages(suite.itemIDs[0], "Design", "Milling")
	suite.addStages(suite.itemIDs[1], "Design")

	first[0].MarkCompleted("", startedAt)
	suite.Require().NoError(suite.repository.Update(ctx, first[0]))

	pending, err := suite.repository.CountByOrder(ctx, suite.orderID, stage.StatusPending)
	suite.Require().NoError(err)
	suite.Equal(2, pending)

	completed, err := suite.repository.CountByOrder(ctx, suite.orderID, stage.StatusCompleted)
	suite.Require().NoError(err)
	suite.Equal(1, completed)
}

func TestStageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(StageRepositoryTestSuite))
}

func TestHoursToDuration(t *testing.T) {
	assert.Equal(t, time.Duration(0), stagerepo.HoursToDuration(0))
	assert.Equal(t, 90*time.Minute, stagerepo.HoursToDuration(1.5))
	assert.Equal(t, 15*time.Minute, stagerepo.HoursToDuration(0.25))
	assert.Equal(t, 20*time.Minute, stagerepo.HoursToDuration(1.0/3))
}
