package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/andrescamacho/spacetraders-dashboard/internal/domain/shared"
	"github.com/andrescamacho/spacetraders-dashboard/internal/infrastructure/logging"
)

// statusFor maps an error to the HTTP status the dashboard answers with
func statusFor(err error) int {
	// Context errors arrive wrapped in UpstreamError, so they are checked first
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	case shared.IsNotFound(err):
		return http.StatusNotFound
	case shared.IsUpstream(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

type errorView struct {
	Status  int
	Title   string
	Message string
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	event := logging.Ctx(r.Context()).Warn()
	if status == http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request failed")

	view := errorView{Status: status, Title: http.StatusText(status), Message: err.Error()}
	if renderErr := s.views.render(w, status, "error", view); renderErr != nil {
		http.Error(w, "Something went wrong: "+err.Error(), status)
	}
}
