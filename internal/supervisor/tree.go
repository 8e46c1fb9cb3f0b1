// Package supervisor runs the dashboard's long-lived services under a
// suture supervision tree, restarting any that fail.
package supervisor

import (
	"context"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// TreeConfig holds supervisor restart parameters
type TreeConfig struct {
	// FailureThreshold is the number of failures before entering backoff. Default: 5
	FailureThreshold float64

	// FailureDecay is the rate at which failures decay in seconds. Default: 30
	FailureDecay float64

	// FailureBackoff is the duration to wait when threshold is exceeded. Default: 15s
	FailureBackoff time.Duration

	// ShutdownTimeout is the maximum time to wait for a service to stop. Default: 10s
	ShutdownTimeout time.Duration
}

// Tree is a root supervisor with one child for serving and one for background upkeep
type Tree struct {
	root        *suture.Supervisor
	serving     *suture.Supervisor
	maintenance *suture.Supervisor
}

// NewTree builds the supervision tree, filling zero config values with defaults
func NewTree(config TreeConfig) *Tree {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 5.0
	}
	if config.FailureDecay == 0 {
		config.FailureDecay = 30.0
	}
	if config.FailureBackoff == 0 {
		config.FailureBackoff = 15 * time.Second
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}

	rootSpec := suture.Spec{
		EventHook:        logEvent,
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}
	childSpec := suture.Spec{
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	root := suture.New("spacetraders-dashboard", rootSpec)
	serving := suture.New("serving", childSpec)
	maintenance := suture.New("maintenance", childSpec)
	root.Add(serving)
	root.Add(maintenance)

	return &Tree{root: root, serving: serving, maintenance: maintenance}
}

// logEvent forwards supervisor events (panics, restarts, backoff) to the process logger
func logEvent(e suture.Event) {
	logging.Warn().Str("component", "supervisor").Msg(e.String())
}

// AddServingService adds a service that answers requests
func (t *Tree) AddServingService(svc suture.Service) suture.ServiceToken {
	return t.serving.Add(svc)
}

// AddMaintenanceService adds a background upkeep service
func (t *Tree) AddMaintenanceService(svc suture.Service) suture.ServiceToken {
	return t.maintenance.Add(svc)
}

// Serve runs the tree until ctx is cancelled
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in a goroutine
func (t *Tree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}
