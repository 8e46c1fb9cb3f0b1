package shared_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

func TestNewWaypoint(t *testing.T) {
	wp, err := shared.NewWaypoint("X1-GZ7-A1", shared.WaypointTypePlanet, 10, -20)

	require.NoError(t, err)
	assert.Equal(t, "X1-GZ7", wp.SystemSymbol)
	assert.Equal(t, 10, wp.X)
	assert.Equal(t, -20, wp.Y)

	_, err = shared.NewWaypoint("", shared.WaypointTypePlanet, 0, 0)
	assert.Error(t, err)
}

func TestWaypoint_DistanceTo(t *testing.T) {
	a := shared.Waypoint{X: 0, Y: 0}
	b := shared.Waypoint{X: 3, Y: 4}

	assert.Equal(t, 5.0, a.DistanceTo(&b))
	assert.Equal(t, 5.0, b.DistanceTo(&a))
	assert.Equal(t, 0.0, a.DistanceTo(&a))
}

func TestWaypoint_HasTrait(t *testing.T) {
	wp := shared.Waypoint{Traits: []shared.WaypointTrait{{Symbol: shared.TraitMarketplace}}}

	assert.True(t, wp.HasTrait(shared.TraitMarketplace))
	assert.False(t, wp.HasTrait(shared.TraitShipyard))
}

func TestFindWaypoint(t *testing.T) {
	list := []shared.Waypoint{{Symbol: "X1-GZ7-A1"}, {Symbol: "X1-GZ7-B2"}}

	wp, ok := shared.FindWaypoint(list, "X1-GZ7-B2")
	require.True(t, ok)
	assert.Equal(t, "X1-GZ7-B2", wp.Symbol)

	_, ok = shared.FindWaypoint(list, "X1-GZ7-Z9")
	assert.False(t, ok)
}

func TestExtractSystemSymbol(t *testing.T) {
	assert.Equal(t, "X1-AB12", shared.ExtractSystemSymbol("X1-AB12-C3D4"))
	assert.Equal(t, "NOHYPHEN", shared.ExtractSystemSymbol("NOHYPHEN"))
}

func TestWaypointType_Rank(t *testing.T) {
	assert.Less(t, shared.WaypointTypePlanet.Rank(), shared.WaypointTypeGasGiant.Rank())
	assert.Less(t, shared.WaypointTypeMoon.Rank(), shared.WaypointTypeAsteroid.Rank())
	assert.Less(t, shared.WaypointTypeAsteroid.Rank(), shared.WaypointTypeFuelStation.Rank())
	assert.Greater(t, shared.WaypointType("WORMHOLE").Rank(), shared.WaypointTypeFuelStation.Rank())
}

func TestErrors_DetectedThroughWrapping(t *testing.T) {
	nf := shared.NewNotFoundError("waypoint", "X1-GZ7-A1", "X1-GZ7")
	up := shared.NewUpstreamError("GetShip", 502, "bad gateway", errors.New("status 502"))

	assert.True(t, shared.IsNotFound(fmt.Errorf("resolve ship: %w", nf)))
	assert.False(t, shared.IsUpstream(fmt.Errorf("resolve ship: %w", nf)))
	assert.True(t, shared.IsUpstream(fmt.Errorf("resolve ship: %w", up)))
	assert.Equal(t, "waypoint X1-GZ7-A1 not found in X1-GZ7", nf.Error())
	assert.Contains(t, up.Error(), "upstream status 502")
}
