package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/valtree/pkg/logger"
)

// Check is a named readiness probe.
type Check struct {
	Name string
	Func func(context.Context) error
}

type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthCheckHandler serves liveness when no checks are given ("alive") and
// readiness otherwise: 200 "ready" when every check passes, 503 "not_ready"
// listing the failing checks.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := healthReport{Status: "alive"}
		status := http.StatusOK
		if len(checks) > 0 {
			report.Status = "ready"
			for _, c := range checks {
				if err := c.Func(r.Context()); err != nil {
					if log != nil {
						log.WarnContext(r.Context(), "readiness check failed",
							logger.Component("httpserver"),
							slog.String("check", c.Name),
							logger.Error(err),
						)
					}
					if report.Checks == nil {
						report.Checks = map[string]string{}
					}
					report.Checks[c.Name] = err.Error()
					report.Status = "not_ready"
					status = http.StatusServiceUnavailable
				}
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	}
}
