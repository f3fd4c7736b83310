package simcast

// Event topics published by the Simcast module.
const (
	TopicSimulationStarted    = "simcast.simulation.started"
	TopicSimulationCompleted  = "simcast.simulation.completed"
	TopicSuggestionsGenerated = "simcast.suggestions.generated"
)

// SimulationEvent is the payload for simulation lifecycle topics.
type SimulationEvent struct {
	SimulationID  string  `json:"simulation_id"`
	Mode          string  `json:"mode"` // "simulate", "benchmark", "optimize"
	ForecastHours int     `json:"forecast_hours"`
	QueueCount    int     `json:"queue_count"`
	AverageRisk   float64 `json:"average_risk,omitempty"`
	PeakRiskHour  int     `json:"peak_risk_hour,omitempty"`
}

// SuggestionsEvent is the payload for TopicSuggestionsGenerated.
type SuggestionsEvent struct {
	SimulationID string `json:"simulation_id"`
	Count        int    `json:"count"`
	HighSeverity int    `json:"high_severity"`
}
