package demo

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HerbHall/flowsight/pkg/opsmodel"
	"github.com/HerbHall/flowsight/pkg/plugin"
)

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "POST", Path: "/current-state", Handler: m.handleCurrentState},
		{Method: "POST", Path: "/historical-data", Handler: m.handleHistoricalData},
	}
}

// handleCurrentState returns a mock operational snapshot.
//
//	@Summary		Current operational state
//	@Description	Returns a mock snapshot of the four-stage case pipeline. A production deployment replaces this with a live data source.
//	@Tags			demo
//	@Produce		json
//	@Success		200 {object} opsmodel.OperationalState
//	@Router			/demo/current-state [post]
func (m *Module) handleCurrentState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, CurrentState(time.Now().UTC()))
}

// handleHistoricalData returns synthetic hourly operational history.
//
//	@Summary		Historical data
//	@Description	Returns synthetic hourly history: sine-wave volume with noise, Poisson breach counts, and staffing levels.
//	@Tags			demo
//	@Accept			json
//	@Produce		json
//	@Param			request body opsmodel.HistoricalDataRequest true "History request"
//	@Success		200 {object} opsmodel.HistoricalDataResponse
//	@Failure		400 {object} map[string]any
//	@Router			/demo/historical-data [post]
func (m *Module) handleHistoricalData(w http.ResponseWriter, r *http.Request) {
	var req opsmodel.HistoricalDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	hours := req.Hours
	if hours == 0 {
		hours = m.cfg.DefaultHistoryHours
	}
	if hours < 1 {
		writeError(w, http.StatusBadRequest, "hours must be >= 1")
		return
	}
	if hours > m.cfg.MaxHistoryHours {
		writeError(w, http.StatusBadRequest, "hours exceeds the configured maximum")
		return
	}

	now := time.Now().UTC()
	s := newSynthesizer(uint64(now.UnixNano()))

	writeJSON(w, http.StatusOK, opsmodel.HistoricalDataResponse{
		Data:  s.history(now, hours),
		Hours: hours,
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"type":   "https://flowsight.dev/problems/" + http.StatusText(status),
		"title":  http.StatusText(status),
		"status": status,
		"detail": detail,
	})
}
