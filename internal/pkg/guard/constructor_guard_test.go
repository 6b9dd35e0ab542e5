package guard_test

import (
	"errors"
	"testing"

	"dentallab/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("query not constructed")

		// When
		err := g.Validate(expected)

		// Then
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errNotConstructed := errors.New("StageNote must be created via newStageNote")

	type stageNote struct {
		text  string
		guard guard.ConstructorGuard
	}

	newStageNote := func(text string) (stageNote, error) {
		if text == "" {
			return stageNote{}, errors.New("note is required")
		}
		return stageNote{text: text, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("built_through_constructor", func(t *testing.T) {
		note, err := newStageNote("milling done")

		require.NoError(t, err)
		require.NoError(t, note.guard.Validate(errNotConstructed))
		assert.Equal(t, "milling done", note.text)
	})

	t.Run("struct_literal_fails_validation", func(t *testing.T) {
		note := stageNote{text: "bypassed"}

		assert.Equal(t, errNotConstructed, note.guard.Validate(errNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		note, err := newStageNote("")

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, note.guard.Validate(errNotConstructed))
	})
}
