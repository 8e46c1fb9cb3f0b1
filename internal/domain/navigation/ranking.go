package navigation

import (
	"sort"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

// RankedWaypoint pairs a waypoint with its distance from the ranking origin
type RankedWaypoint struct {
	Waypoint shared.Waypoint
	Distance float64
}

// Rank orders waypoints by Euclidean distance from origin, nearest first.
//
// Nothing is filtered: the origin itself (if present) ranks first at 0.
// Equal distances keep their input order.
func Rank(origin shared.Waypoint, waypoints []shared.Waypoint) []RankedWaypoint {
	ranked := make([]RankedWaypoint, len(waypoints))
	for i := range waypoints {
		ranked[i] = RankedWaypoint{
			Waypoint: waypoints[i],
			Distance: origin.DistanceTo(&waypoints[i]),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	return ranked
}
