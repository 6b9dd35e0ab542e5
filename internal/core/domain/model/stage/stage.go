package stage

import (
	"errors"
	"fmt"
	"time"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/pkg/errs"
)

var ErrStageIsNotConstructed = errors.New("Stage must be created via NewStage constructor")

type Stage struct {
	id            int64
	orderItemID   int64
	index         int
	staffID       *int64
	name          string
	description   string
	executionTime time.Duration
	status        Status
	startDate     time.Time
	endDate       *time.Time
	note          string
	image         string
	version       int

	isConstructed bool
}

// NewStage instantiates a Pending stage of an order item from its template.
func NewStage(orderItemID int64, t Template, startDate time.Time) (*Stage, error) {
	if err := errors.Join(
		kernel.ValidateID("order item id", orderItemID),
		t.Validate(),
	); err != nil {
		return nil, err
	}
	if t.Index < 1 {
		return nil, errs.NewValueIsOutOfRangeError("index stage", t.Index, 1, "unbounded")
	}

	return &Stage{
		orderItemID:   orderItemID,
		index:         t.Index,
		name:          t.Name,
		description:   t.Description,
		executionTime: t.ExecutionTime,
		status:        StatusPending,
		startDate:     startDate,
		version:       1,
		isConstructed: true,
	}, nil
}

// Snapshot is the persisted state of a stage.
type Snapshot struct {
	ID            int64
	OrderItemID   int64
	Index         int
	StaffID       *int64
	Name          string
	Description   string
	ExecutionTime time.Duration
	Status        Status
	StartDate     time.Time
	EndDate       *time.Time
	Note          string
	Image         string
	Version       int
}

func RestoreStage(s Snapshot) (*Stage, error) {
	if err := errors.Join(
		kernel.ValidateID("stage id", s.ID),
		kernel.ValidateID("order item id", s.OrderItemID),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Stage{
		id:            s.ID,
		orderItemID:   s.OrderItemID,
		index:         s.Index,
		staffID:       s.StaffID,
		name:          s.Name,
		description:   s.Description,
		executionTime: s.ExecutionTime,
		status:        s.Status,
		startDate:     s.StartDate,
		endDate:       s.EndDate,
		note:          s.Note,
		image:         s.Image,
		version:       s.Version,
		isConstructed: true,
	}, nil
}

func (s *Stage) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStageIsNotConstructed
	}
	return nil
}

func (s *Stage) ID() int64                    { return s.id }
func (s *Stage) OrderItemID() int64           { return s.orderItemID }
func (s *Stage) Index() int                   { return s.index }
func (s *Stage) StaffID() *int64              { return s.staffID }
func (s *Stage) Name() string                 { return s.name }
func (s *Stage) Description() string          { return s.description }
func (s *Stage) ExecutionTime() time.Duration { return s.executionTime }
func (s *Stage) Status() Status               { return s.status }
func (s *Stage) StartDate() time.Time         { return s.startDate }
func (s *Stage) EndDate() *time.Time          { return s.endDate }
func (s *Stage) Note() string                 { return s.note }
func (s *Stage) Image() string                { return s.image }
func (s *Stage) Version() int                 { return s.version }

// DueAt is the time the stage is expected to be finished.
func (s *Stage) DueAt() time.Time {
	return s.startDate.Add(s.executionTime)
}

// IsOverdue reports whether a Pending stage has run past its execution time.
func (s *Stage) IsOverdue(now time.Time) bool {
	return s.status == StatusPending && now.After(s.DueAt())
}

func (s *Stage) AttachID(id int64) error {
	if s.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("stage id", fmt.Errorf("stage already has id %d", s.id))
	}
	if err := kernel.ValidateID("stage id", id); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stage) SyncVersion(version int) {
	s.version = version
}

// MarkPending assigns the operator and (re)opens the stage. A reopened stage
// loses its end date.
func (s *Stage) MarkPending(staffID *int64, note string) error {
	if err := kernel.ValidateOptionalID("staff id", staffID); err != nil {
		return err
	}
	s.staffID = staffID
	s.status = StatusPending
	s.note = note
	s.endDate = nil
	return nil
}

// MarkCompleted closes the stage at the given time. The operator is kept.
func (s *Stage) MarkCompleted(note string, at time.Time) {
	s.status = StatusCompleted
	s.note = note
	s.endDate = &at
}

func (s *Stage) MarkCanceled(staffID *int64, note string) error {
	if err := kernel.ValidateOptionalID("staff id", staffID); err != nil {
		return err
	}
	s.staffID = staffID
	s.status = StatusCanceled
	s.note = note
	s.endDate = nil
	return nil
}
