package clock_test

import (
	"testing"
	"time"

	"dentallab/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLabClock(t *testing.T) {
	t.Run("default zone is seven hours ahead of UTC", func(t *testing.T) {
		c, err := clock.NewLabClock("")
		require.NoError(t, err)

		_, offset := c.Now().Zone()
		assert.Equal(t, 7*60*60, offset)
	})

	t.Run("explicit zone is honoured", func(t *testing.T) {
		c, err := clock.NewLabClock("UTC")
		require.NoError(t, err)

		assert.Equal(t, "UTC", c.Location().String())
	})

	t.Run("unknown zone fails", func(t *testing.T) {
		_, err := clock.NewLabClock("Mars/Olympus_Mons")
		require.Error(t, err)
	})
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	c := clock.NewFixed(at)

	assert.Equal(t, at, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, at.Add(90*time.Minute), c.Now())
}
