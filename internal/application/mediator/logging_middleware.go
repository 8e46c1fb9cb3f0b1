package mediator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// LoggingMiddleware logs every dispatched request with its outcome and duration.
// Failures log at warn since most of them are upstream rejections the user can retry.
func LoggingMiddleware() Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		name := requestName(request)
		start := time.Now()

		resp, err := next(ctx, request)

		log := logging.Ctx(ctx)
		if err != nil {
			log.Warn().Err(err).Str("request", name).Dur("duration", time.Since(start)).Msg("request failed")
			return resp, err
		}
		log.Debug().Str("request", name).Dur("duration", time.Since(start)).Msg("request handled")
		return resp, nil
	}
}

func requestName(request Request) string {
	name := strings.TrimPrefix(fmt.Sprintf("%T", request), "*")
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
