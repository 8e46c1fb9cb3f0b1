package player

import "github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"

// Agent is the player's agent as reported by the API
type Agent struct {
	AccountID       string `json:"accountId"`
	Symbol          string `json:"symbol"`
	Headquarters    string `json:"headquarters"`
	Credits         int64  `json:"credits"`
	StartingFaction string `json:"startingFaction"`
	ShipCount       int    `json:"shipCount"`
}

// HomeSystem returns the system containing the agent's headquarters
func (a *Agent) HomeSystem() string {
	return shared.ExtractSystemSymbol(a.Headquarters)
}
