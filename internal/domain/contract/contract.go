package contract

// Contract is a faction contract offered to or accepted by the agent
type Contract struct {
	ID               string `json:"id"`
	FactionSymbol    string `json:"factionSymbol"`
	Type             string `json:"type"`
	Terms            Terms  `json:"terms"`
	Accepted         bool   `json:"accepted"`
	Fulfilled        bool   `json:"fulfilled"`
	Expiration       string `json:"expiration"`
	DeadlineToAccept string `json:"deadlineToAccept,omitempty"`
}

type Terms struct {
	Deadline string     `json:"deadline"`
	Payment  Payment    `json:"payment"`
	Deliver  []Delivery `json:"deliver,omitempty"`
}

type Payment struct {
	OnAccepted  int `json:"onAccepted"`
	OnFulfilled int `json:"onFulfilled"`
}

type Delivery struct {
	TradeSymbol       string `json:"tradeSymbol"`
	DestinationSymbol string `json:"destinationSymbol"`
	UnitsRequired     int    `json:"unitsRequired"`
	UnitsFulfilled    int    `json:"unitsFulfilled"`
}

// Remaining returns how many units are still owed on the delivery
func (d Delivery) Remaining() int {
	if d.UnitsFulfilled >= d.UnitsRequired {
		return 0
	}
	return d.UnitsRequired - d.UnitsFulfilled
}
