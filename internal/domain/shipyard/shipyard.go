package shipyard

// Shipyard lists the ship types a waypoint builds. Ships (with prices) is
// only populated while one of the agent's ships is present.
type Shipyard struct {
	Symbol          string     `json:"symbol"`
	ShipTypes       []ShipType `json:"shipTypes"`
	Ships           []Listing  `json:"ships,omitempty"`
	ModificationFee int        `json:"modificationsFee"`
}

type ShipType struct {
	Type string `json:"type"`
}

// Listing is a ship for sale
type Listing struct {
	Type          string `json:"type"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Supply        string `json:"supply"`
	PurchasePrice int    `json:"purchasePrice"`
	Frame         Frame  `json:"frame"`
}

type Frame struct {
	Symbol         string `json:"symbol"`
	Name           string `json:"name"`
	FuelCapacity   int    `json:"fuelCapacity"`
	ModuleSlots    int    `json:"moduleSlots"`
	MountingPoints int    `json:"mountingPoints"`
}

// PurchaseResult is what the API returns after buying a ship
type PurchaseResult struct {
	ShipSymbol string
	ShipType   string
	Price      int
	Credits    int64
}
