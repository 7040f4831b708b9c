package server

import (
	"net/http"

	"github.com/felixge/httpsnoop"
)

// logRequests records one structured line per handled request with the final
// status code and handler duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(next, w, r)
		s.log.Info("handled",
			"method", r.Method,
			"url", r.URL.String(),
			"status", m.Code,
			"duration", m.Duration,
		)
	})
}
