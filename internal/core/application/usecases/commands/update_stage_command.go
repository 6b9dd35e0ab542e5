package commands

import (
	"errors"
	"strings"

	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/stage"
	"dentallab/internal/pkg/guard"
)

var (
	ErrUpdateStageCommandIsNotConstructed = errors.New(
		"UpdateStageCommand must be created via NewUpdateStageCommand constructor",
	)
)

// UpdateStageCommand moves one production stage. StaffID is optional; when
// given it must name an existing account.
type UpdateStageCommand struct { //nolint:recvcheck //using for validation
	stageID int64
	status  stage.Status
	staffID *int64
	note    string

	guard guard.ConstructorGuard
}

func NewUpdateStageCommand(stageID int64, status stage.Status, staffID *int64, note string) (UpdateStageCommand, error) {
	if err := errors.Join(
		kernel.ValidateID("order item stage id", stageID),
		kernel.ValidateOptionalID("staff id", staffID),
	); err != nil {
		return UpdateStageCommand{}, err
	}

	return UpdateStageCommand{
		stageID: stageID,
		status:  status,
		staffID: staffID,
		note:    strings.TrimSpace(note),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateStageCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStageCommandIsNotConstructed)
}

func (c UpdateStageCommand) StageID() int64       { return c.stageID }
func (c UpdateStageCommand) Status() stage.Status { return c.status }
func (c UpdateStageCommand) StaffID() *int64      { return c.staffID }
func (c UpdateStageCommand) Note() string         { return c.note }
