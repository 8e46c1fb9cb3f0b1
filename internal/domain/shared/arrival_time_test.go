package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0s"},
		{"negative", -time.Minute, "0s"},
		{"sub-second", 900 * time.Millisecond, "0s"},
		{"seconds", 42 * time.Second, "42s"},
		{"minutes and seconds", 3*time.Minute + 4*time.Second, "3m 4s"},
		{"skips zero units", 2*time.Hour + 5*time.Second, "2h 5s"},
		{"days", 26*time.Hour + 3*time.Minute, "1d 2h 3m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.FormatDuration(tt.in))
		})
	}
}

func TestFromNow(t *testing.T) {
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "1h 30m", shared.FromNow("2026-03-01T11:30:00Z", clock))
	assert.Equal(t, "0s", shared.FromNow("2026-03-01T09:00:00Z", clock))
	assert.Equal(t, "not-a-time", shared.FromNow("not-a-time", clock))
}

func TestArrivalTime_Remaining(t *testing.T) {
	// Arrange
	clock := shared.NewMockClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	at, err := shared.NewArrivalTime("2026-03-01T10:00:30.750Z")
	require.NoError(t, err)

	// Act / Assert
	assert.Equal(t, 30*time.Second, at.Remaining(clock))
	assert.False(t, at.HasArrived(clock))

	clock.Advance(31 * time.Second)
	assert.True(t, at.HasArrived(clock))
}

func TestNewArrivalTime_Invalid(t *testing.T) {
	_, err := shared.NewArrivalTime("")
	assert.Error(t, err)

	_, err = shared.NewArrivalTime("yesterday")
	assert.Error(t, err)
}
