package metrics

import (
	"context"
	"reflect"
	"time"

	"github.com/andrescamacho/spacetraders-dashboard/internal/application/mediator"
)

// PrometheusMiddleware times every mediator dispatch and counts its outcome.
// A nil collector turns the middleware into a pass-through.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(extractCommandName(request), time.Since(start).Seconds(), err == nil)

		return response, err
	}
}

// extractCommandName returns the bare type name of a request:
// *types.NavigateShipCommand and types.NavigateShipCommand both give "NavigateShipCommand".
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	t := reflect.TypeOf(request)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
