package market

// FuelSymbol is the trade symbol of ship fuel
const FuelSymbol = "FUEL"

// Market is a snapshot of a waypoint's marketplace.
//
// Exchange, Imports and Exports list what the market deals in; TradeGoods
// (prices, supply) is only populated while a ship is present.
type Market struct {
	Symbol     string      `json:"symbol"`
	Exports    []TradeRef  `json:"exports"`
	Imports    []TradeRef  `json:"imports"`
	Exchange   []TradeRef  `json:"exchange"`
	TradeGoods []TradeGood `json:"tradeGoods,omitempty"`
}

// TradeRef names a commodity without price information
type TradeRef struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TradeGood is a priced listing. Prices follow the market's perspective:
// PurchasePrice is what a ship pays, SellPrice what a ship receives.
type TradeGood struct {
	Symbol        string `json:"symbol"`
	Type          string `json:"type"`
	TradeVolume   int    `json:"tradeVolume"`
	Supply        string `json:"supply"`
	Activity      string `json:"activity,omitempty"`
	PurchasePrice int    `json:"purchasePrice"`
	SellPrice     int    `json:"sellPrice"`
}

// Supplies reports whether ships can buy symbol here. Imports are goods the
// market buys, so they do not count.
func (m *Market) Supplies(symbol string) bool {
	for _, refs := range [][]TradeRef{m.Exchange, m.Exports} {
		for _, ref := range refs {
			if ref.Symbol == symbol {
				return true
			}
		}
	}
	return false
}

// SellsFuel reports whether ships can refuel here
func (m *Market) SellsFuel() bool {
	return m.Supplies(FuelSymbol)
}

// FindGood searches for a priced trade good by symbol
func (m *Market) FindGood(symbol string) *TradeGood {
	for i := range m.TradeGoods {
		if m.TradeGoods[i].Symbol == symbol {
			good := m.TradeGoods[i]
			return &good
		}
	}
	return nil
}

// SellResult is the outcome of selling one cargo item at a market
type SellResult struct {
	TradeSymbol  string
	UnitsSold    int
	TotalRevenue int
}
