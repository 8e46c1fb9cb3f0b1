package commands

import (
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
	"github.com/andrescamacho/spacetraders-dashboard/internal/application/ship/types"
	domainPorts "github.com/andrescamacho/spacetraders-dashboard/internal/domain/ports"
)

// RegisterHandlers wires every ship command into the mediator
func RegisterHandlers(m mediator.Mediator, apiClient domainPorts.APIClient) error {
	registrations := []func() error{
		func() error {
			return mediator.RegisterHandler[*types.DockShipCommand](m, NewDockShipHandler(apiClient))
		},
		func() error {
			return mediator.RegisterHandler[*types.OrbitShipCommand](m, NewOrbitShipHandler(apiClient))
		},
		func() error {
			return mediator.RegisterHandler[*types.NavigateShipCommand](m, NewNavigateShipHandler(apiClient))
		},
		func() error {
			return mediator.RegisterHandler[*types.RefuelShipCommand](m, NewRefuelShipHandler(apiClient))
		},
		func() error {
			return mediator.RegisterHandler[*types.ExtractResourcesCommand](m, NewExtractResourcesHandler(apiClient))
		},
		func() error {
			return mediator.RegisterHandler[*types.DumpCargoCommand](m, NewDumpCargoHandler(apiClient))
		},
	}

	for _, register := range registrations {
		if err := register(); err != nil {
			return err
		}
	}
	return nil
}
