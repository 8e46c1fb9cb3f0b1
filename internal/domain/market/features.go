package market

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
)

// Feature is something a ship can make use of at a waypoint
type Feature int

const (
	FeatureMarketplace Feature = iota
	FeatureShipyard
	FeatureFuel
)

func (f Feature) String() string {
	switch f {
	case FeatureMarketplace:
		return "Marketplace"
	case FeatureShipyard:
		return "Shipyard"
	case FeatureFuel:
		return "Fuel"
	default:
		return fmt.Sprintf("Feature(%d)", int(f))
	}
}

// FeatureSet holds at most one of each Feature, always in declaration order
type FeatureSet []Feature

// Has reports whether f is in the set
func (s FeatureSet) Has(f Feature) bool {
	for _, x := range s {
		if x == f {
			return true
		}
	}
	return false
}

// MarketLookup fetches a waypoint's market
type MarketLookup interface {
	GetMarket(ctx context.Context, systemSymbol, waypointSymbol string) (*Market, error)
}

// MarketLookupFunc adapts a plain function to MarketLookup
type MarketLookupFunc func(ctx context.Context, systemSymbol, waypointSymbol string) (*Market, error)

func (f MarketLookupFunc) GetMarket(ctx context.Context, systemSymbol, waypointSymbol string) (*Market, error) {
	return f(ctx, systemSymbol, waypointSymbol)
}

// Classify derives the feature set of a waypoint from its traits.
//
// The market is looked up only for waypoints carrying the MARKETPLACE trait,
// and only to decide whether fuel is on offer. Traits other than MARKETPLACE
// and SHIPYARD do not map to a feature and are skipped.
func Classify(ctx context.Context, waypoint shared.Waypoint, lookup MarketLookup) (FeatureSet, error) {
	var marketplace, shipyard bool
	for _, trait := range waypoint.Traits {
		switch trait.Symbol {
		case shared.TraitMarketplace:
			marketplace = true
		case shared.TraitShipyard:
			shipyard = true
		}
	}

	features := FeatureSet{}
	if marketplace {
		features = append(features, FeatureMarketplace)
	}
	if shipyard {
		features = append(features, FeatureShipyard)
	}
	if !marketplace {
		return features, nil
	}

	m, err := lookup.GetMarket(ctx, waypoint.SystemSymbol, waypoint.Symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get market at %s: %w", waypoint.Symbol, err)
	}
	if m != nil && m.SellsFuel() {
		features = append(features, FeatureFuel)
	}

	return features, nil
}
