package navigation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/navigation"
	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

func TestShip_NeedsPolling(t *testing.T) {
	clock := shared.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name string
		ship navigation.Ship
		want bool
	}{
		{
			name: "docked and idle",
			ship: navigation.Ship{Nav: navigation.Nav{Status: navigation.NavStatusDocked}},
			want: false,
		},
		{
			name: "in transit",
			ship: navigation.Ship{Nav: navigation.Nav{Status: navigation.NavStatusInTransit}},
			want: true,
		},
		{
			name: "cooldown running",
			ship: navigation.Ship{
				Nav:      navigation.Nav{Status: navigation.NavStatusInOrbit},
				Cooldown: navigation.Cooldown{Expiration: "2026-01-01T12:01:00Z"},
			},
			want: true,
		},
		{
			name: "cooldown expired",
			ship: navigation.Ship{
				Nav:      navigation.Nav{Status: navigation.NavStatusInOrbit},
				Cooldown: navigation.Cooldown{Expiration: "2026-01-01T11:59:00Z"},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ship.NeedsPolling(clock))
		})
	}
}

func TestShip_FuelFull(t *testing.T) {
	full := navigation.Ship{Fuel: navigation.Fuel{Current: 400, Capacity: 400}}
	partial := navigation.Ship{Fuel: navigation.Fuel{Current: 120, Capacity: 400}}

	assert.True(t, full.FuelFull())
	assert.False(t, partial.FuelFull())
}
