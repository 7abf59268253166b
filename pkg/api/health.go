package api

import (
	"net/http"

	"github.com/sarefinport/sarefinport/pkg/httputil"
)

type healthResponse struct {
	Status   string `json:"status"`
	Uptime   int64  `json:"uptime"`
	Database string `json:"database"`
	Version  string `json:"version,omitempty"`
}

// handleHealth reports 503 when the database does not answer a ping.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Uptime:   int64(a.Uptime().Seconds()),
		Database: "ok",
		Version:  a.version,
	}
	status := http.StatusOK
	if err := a.store.Ping(r.Context()); err != nil {
		a.log.Warn("health check: database unreachable", "error", err)
		resp.Status = "degraded"
		resp.Database = "error"
		status = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, status, resp)
}
