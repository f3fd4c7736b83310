// Package opsmodel provides public SDK types for the FlowSight simulation system.
package opsmodel

import "time"

// WorkQueue is one stage in the processing pipeline.
type WorkQueue struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	WorkInProgress int     `json:"work_in_progress"` // Items waiting or being processed
	Capacity       int     `json:"capacity"`         // Nominal item capacity (> 0)
	AvgProcessTime float64 `json:"avg_process_time"` // Minutes per item (> 0)
	Employees      int     `json:"employees"`        // Staffed headcount (>= 1)
	Complexity     float64 `json:"complexity"`       // 1.0 = simple, up to 3.0 = very complex
}

// OperationalState is a full snapshot of the queue network. Queue order is
// the pipeline order: queue 0 receives external input, each later queue
// receives a fraction of its upstream neighbor's backlog.
type OperationalState struct {
	WorkQueues   []WorkQueue `json:"work_queues"`
	IncomingRate float64     `json:"incoming_rate"` // Items per hour
	Timestamp    time.Time   `json:"timestamp"`
	SLAThreshold float64     `json:"sla_threshold"` // Maximum acceptable wait, minutes
}

// Clone returns a deep copy of the state. Simulation runs mutate queue
// backlog in place, so every run must operate on its own copy.
func (s OperationalState) Clone() OperationalState {
	out := s
	out.WorkQueues = make([]WorkQueue, len(s.WorkQueues))
	copy(out.WorkQueues, s.WorkQueues)
	return out
}

// Queue returns a pointer to the queue with the given ID, or nil.
func (s *OperationalState) Queue(id string) *WorkQueue {
	for i := range s.WorkQueues {
		if s.WorkQueues[i].ID == id {
			return &s.WorkQueues[i]
		}
	}
	return nil
}

// ResourceChange adjusts one queue's headcount by a signed delta.
// The resulting headcount is clamped to a minimum of 1.
type ResourceChange struct {
	QueueID        string `json:"queue_id"`
	EmployeeChange int    `json:"employee_change"`
}

// QueuePrediction is the per-queue output of one simulated hour.
// Derived data; never mutated after creation.
type QueuePrediction struct {
	WorkInProgress        int     `json:"work_in_progress"`
	Utilization           float64 `json:"utilization"`             // Percent
	BottleneckProbability float64 `json:"bottleneck_probability"`  // Percent, [0,100]
	SLABreachProbability  float64 `json:"sla_breach_probability"`  // Percent, [0,99.9]
	AvgWaitTime           float64 `json:"avg_wait_time"`           // Minutes
	Processed             float64 `json:"processed"`               // Items completed this hour
}

// HourlyForecast is the network-wide prediction for one simulated hour.
type HourlyForecast struct {
	Hour            int                        `json:"hour"` // 1-based hour index
	Timestamp       time.Time                  `json:"timestamp"`
	Predictions     map[string]QueuePrediction `json:"predictions"` // Keyed by queue ID
	TotalBreachRisk float64                    `json:"total_breach_risk"`
}

// Suggestion severities, ordered high before medium before low.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// SeverityRank returns the sort priority of a severity (lower sorts first).
// Unknown severities sort last.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}

// Suggestion is a recommended staffing action for one queue.
type Suggestion struct {
	Severity       string          `json:"severity"` // "high", "medium", "low"
	Queue          string          `json:"queue"`    // Display name
	QueueID        string          `json:"queue_id"`
	Action         string          `json:"action"`
	Impact         string          `json:"impact"`
	ResourceChange *ResourceChange `json:"resource_change,omitempty"`
	Reasoning      string          `json:"reasoning"`
}

// SimulationRequest is the request body for POST /simcast/simulate and
// POST /simcast/benchmark.
type SimulationRequest struct {
	CurrentState    OperationalState `json:"current_state"`
	ForecastHours   int              `json:"forecast_hours"`
	ResourceChanges []ResourceChange `json:"resource_changes,omitempty"`
	Seed            *int64           `json:"seed,omitempty"` // Pins the demand noise for reproducible runs
}

// SimulationMetadata summarizes a completed simulation run.
type SimulationMetadata struct {
	SimulationID           string    `json:"simulation_id"`
	ForecastHours          int       `json:"forecast_hours"`
	AverageBreachRisk      float64   `json:"average_breach_risk"`
	PeakRiskHour           int       `json:"peak_risk_hour"`
	PeakRiskValue          float64   `json:"peak_risk_value"`
	ResourceChangesApplied int       `json:"resource_changes_applied"`
	SuggestionsGenerated   int       `json:"suggestions_generated"`
	GeneratedAt            time.Time `json:"generated_at"`
}

// SimulationResponse is the response for POST /simcast/simulate.
type SimulationResponse struct {
	Forecast    []HourlyForecast   `json:"forecast"`
	Suggestions []Suggestion       `json:"suggestions"`
	Metadata    SimulationMetadata `json:"metadata"`
}

// BenchmarkRun reports one side of a baseline-vs-optimized comparison.
type BenchmarkRun struct {
	AverageBreachRisk float64          `json:"average_breach_risk"`
	Forecast          []HourlyForecast `json:"forecast"`
	AppliedChanges    []ResourceChange `json:"applied_changes,omitempty"`
}

// BenchmarkImprovement quantifies the optimized run against the baseline.
type BenchmarkImprovement struct {
	PercentageReduction float64 `json:"percentage_reduction"`
	SuggestionsApplied  int     `json:"suggestions_applied"`
}

// BenchmarkReport is the response for POST /simcast/benchmark.
type BenchmarkReport struct {
	Baseline    BenchmarkRun         `json:"baseline"`
	Optimized   BenchmarkRun         `json:"optimized"`
	Improvement BenchmarkImprovement `json:"improvement"`
}

// VolumeRequest is the request body for POST /simcast/volume.
type VolumeRequest struct {
	History    []float64 `json:"history"`     // Observed hourly volumes, oldest first
	StepsAhead int       `json:"steps_ahead"` // Hours to project
	StartHour  int       `json:"start_hour"`  // Hour-of-day (0-23) of the first projected step
}

// VolumeResponse is the response for POST /simcast/volume.
type VolumeResponse struct {
	Projected []float64 `json:"projected"`
}

// HistoricalDataRequest is the request body for POST /demo/historical-data.
type HistoricalDataRequest struct {
	Hours int `json:"hours"`
}

// HistoricalPoint is one hour of synthetic operational history.
type HistoricalPoint struct {
	Timestamp       time.Time `json:"timestamp"`
	Volume          int       `json:"volume"`
	Breaches        int       `json:"breaches"`
	AvgProcessTime  float64   `json:"avg_process_time"`
	ActiveEmployees int       `json:"active_employees"`
}

// HistoricalDataResponse is the response for POST /demo/historical-data.
type HistoricalDataResponse struct {
	Data  []HistoricalPoint `json:"data"`
	Hours int               `json:"hours"`
}
