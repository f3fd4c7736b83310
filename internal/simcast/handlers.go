package simcast

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/HerbHall/flowsight/pkg/opsmodel"
	"github.com/HerbHall/flowsight/pkg/plugin"
)

// Routes implements plugin.HTTPProvider.
func (m *Module) Routes() []plugin.Route {
	return []plugin.Route{
		{Method: "POST", Path: "/simulate", Handler: m.handleSimulate},
		{Method: "POST", Path: "/benchmark", Handler: m.handleBenchmark},
		{Method: "POST", Path: "/optimize", Handler: m.handleOptimize},
		{Method: "POST", Path: "/volume", Handler: m.handleVolume},
	}
}

// handleSimulate runs a predictive simulation with optional staffing changes.
//
//	@Summary		Run simulation
//	@Description	Runs an hour-by-hour queue simulation and returns the forecast, staffing suggestions, and run metadata.
//	@Tags			simcast
//	@Accept			json
//	@Produce		json
//	@Param			request body opsmodel.SimulationRequest true "Simulation request"
//	@Success		200 {object} opsmodel.SimulationResponse
//	@Failure		400 {object} map[string]any
//	@Router			/simcast/simulate [post]
func (m *Module) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req opsmodel.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validateSimulationRequest(&req, m.cfg.MaxForecastHours); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if m.bus != nil {
		m.bus.PublishAsync(r.Context(), plugin.Event{
			Topic:  TopicSimulationStarted,
			Source: "simcast",
			Payload: SimulationEvent{
				Mode:          "simulate",
				ForecastHours: req.ForecastHours,
				QueueCount:    len(req.CurrentState.WorkQueues),
			},
		})
	}

	start := time.Now()
	resp := m.engine.Simulate(req)
	simulationsTotal.WithLabelValues("simulate").Inc()
	simulationDuration.WithLabelValues("simulate").Observe(time.Since(start).Seconds())
	recordSuggestions(resp.Suggestions)

	m.publishRunEvents(r.Context(), "simulate", resp)

	writeJSON(w, http.StatusOK, resp)
}

// handleBenchmark compares the current configuration against one with the
// top suggested staffing changes applied.
//
//	@Summary		Benchmark staffing
//	@Description	Runs a baseline simulation, applies the top suggested staffing changes, re-runs, and reports the improvement.
//	@Tags			simcast
//	@Accept			json
//	@Produce		json
//	@Param			request body opsmodel.SimulationRequest true "Benchmark request"
//	@Success		200 {object} opsmodel.BenchmarkReport
//	@Failure		400 {object} map[string]any
//	@Router			/simcast/benchmark [post]
func (m *Module) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	var req opsmodel.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validateSimulationRequest(&req, m.cfg.MaxForecastHours); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	report := m.engine.RunBenchmark(req)
	simulationsTotal.WithLabelValues("benchmark").Inc()
	simulationDuration.WithLabelValues("benchmark").Observe(time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, report)
}

// handleOptimize returns staffing suggestions from a short forecast over
// the submitted state.
//
//	@Summary		Optimization suggestions
//	@Description	Runs a short forecast over the submitted state and returns ranked staffing suggestions.
//	@Tags			simcast
//	@Accept			json
//	@Produce		json
//	@Param			state body opsmodel.OperationalState true "Current operational state"
//	@Success		200 {object} map[string]any
//	@Failure		400 {object} map[string]any
//	@Router			/simcast/optimize [post]
func (m *Module) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var state opsmodel.OperationalState
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validateState(&state); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	suggestions, horizon := m.engine.Optimize(state)
	simulationsTotal.WithLabelValues("optimize").Inc()
	simulationDuration.WithLabelValues("optimize").Observe(time.Since(start).Seconds())
	recordSuggestions(suggestions)

	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions":      suggestions,
		"timestamp":        time.Now().UTC(),
		"forecast_horizon": horizon,
	})
}

// handleVolume projects future incoming-work volume from historical data.
//
//	@Summary		Volume projection
//	@Description	Projects future hourly work volume from a historical series using trend extrapolation with seasonal weighting.
//	@Tags			simcast
//	@Accept			json
//	@Produce		json
//	@Param			request body opsmodel.VolumeRequest true "Volume projection request"
//	@Success		200 {object} opsmodel.VolumeResponse
//	@Failure		400 {object} map[string]any
//	@Router			/simcast/volume [post]
func (m *Module) handleVolume(w http.ResponseWriter, r *http.Request) {
	var req opsmodel.VolumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := validateVolumeRequest(&req, m.cfg.MaxForecastHours); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	projected := m.engine.ForecastVolume(req.History, req.StepsAhead, req.StartHour)
	writeJSON(w, http.StatusOK, opsmodel.VolumeResponse{Projected: projected})
}

// publishRunEvents emits the simulation lifecycle events for a completed run.
func (m *Module) publishRunEvents(ctx context.Context, mode string, resp opsmodel.SimulationResponse) {
	if m.bus == nil {
		return
	}

	m.bus.PublishAsync(ctx, plugin.Event{
		Topic:  TopicSimulationCompleted,
		Source: "simcast",
		Payload: SimulationEvent{
			SimulationID:  resp.Metadata.SimulationID,
			Mode:          mode,
			ForecastHours: resp.Metadata.ForecastHours,
			QueueCount:    queueCount(resp.Forecast),
			AverageRisk:   resp.Metadata.AverageBreachRisk,
			PeakRiskHour:  resp.Metadata.PeakRiskHour,
		},
	})

	if len(resp.Suggestions) > 0 {
		high := 0
		for _, s := range resp.Suggestions {
			if s.Severity == opsmodel.SeverityHigh {
				high++
			}
		}
		m.bus.PublishAsync(ctx, plugin.Event{
			Topic:  TopicSuggestionsGenerated,
			Source: "simcast",
			Payload: SuggestionsEvent{
				SimulationID: resp.Metadata.SimulationID,
				Count:        len(resp.Suggestions),
				HighSeverity: high,
			},
		})
	}
}

func queueCount(forecast []opsmodel.HourlyForecast) int {
	if len(forecast) == 0 {
		return 0
	}
	return len(forecast[0].Predictions)
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
