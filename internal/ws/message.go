package ws

import "time"

// MessageType discriminates WebSocket messages.
type MessageType string

const (
	MessageSimulationStarted   MessageType = "simulation.started"
	MessageSimulationCompleted MessageType = "simulation.completed"
	MessageSuggestionsReady    MessageType = "suggestions.ready"
)

// Message is the envelope for all WebSocket messages.
type Message struct {
	Type         MessageType `json:"type"`
	SimulationID string      `json:"simulation_id,omitempty"`
	Timestamp    time.Time   `json:"timestamp"`
	Data         any         `json:"data"`
}

// SimulationStartedData is the payload for simulation.started messages.
type SimulationStartedData struct {
	Mode          string `json:"mode"`
	ForecastHours int    `json:"forecast_hours"`
	QueueCount    int    `json:"queue_count"`
}

// SimulationCompletedData is the payload for simulation.completed messages.
type SimulationCompletedData struct {
	Mode          string  `json:"mode"`
	ForecastHours int     `json:"forecast_hours"`
	AverageRisk   float64 `json:"average_risk"`
	PeakRiskHour  int     `json:"peak_risk_hour"`
}

// SuggestionsReadyData is the payload for suggestions.ready messages.
type SuggestionsReadyData struct {
	Count        int `json:"count"`
	HighSeverity int `json:"high_severity"`
}
