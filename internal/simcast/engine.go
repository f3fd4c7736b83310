package simcast

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HerbHall/flowsight/pkg/opsmodel"
)

// Engine runs queue-network simulations. It holds only configuration and a
// logger, so a single instance is safe to share across concurrent requests;
// every run operates on its own deep copy of the input state.
type Engine struct {
	cfg    SimcastConfig
	logger *zap.Logger
}

// NewEngine creates a simulation engine with the given configuration.
func NewEngine(cfg SimcastConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{cfg: cfg, logger: logger}
}

// RunSimulation applies the staffing deltas to a private copy of the state
// and simulates hour by hour, returning one forecast per hour. The returned
// slice is empty (non-nil) when forecastHours is zero.
func (e *Engine) RunSimulation(state opsmodel.OperationalState, forecastHours int, changes []opsmodel.ResourceChange, noise Noise) []opsmodel.HourlyForecast {
	working := state.Clone()
	e.applyResourceChanges(&working, changes)

	refHour := working.Timestamp.Hour()
	forecast := make([]opsmodel.HourlyForecast, 0, max(forecastHours, 0))

	for hour := 0; hour < forecastHours; hour++ {
		hf := e.simulateHour(&working, refHour, hour, noise)
		forecast = append(forecast, hf)

		// simulateHour already folded the new backlog into the working
		// queues; advance the clock for the next iteration.
		working.Timestamp = hf.Timestamp
	}

	return forecast
}

// applyResourceChanges adjusts headcounts in place. Unknown queue IDs are
// ignored with a warning; resulting headcount never drops below 1.
func (e *Engine) applyResourceChanges(state *opsmodel.OperationalState, changes []opsmodel.ResourceChange) {
	for _, change := range changes {
		q := state.Queue(change.QueueID)
		if q == nil {
			e.logger.Warn("resource change targets unknown queue",
				zap.String("queue_id", change.QueueID))
			continue
		}
		q.Employees = max(1, q.Employees+change.EmployeeChange)
	}
}

// Simulate runs a full simulation for an API request: forecast, suggestions
// derived from the final hour, and summary metadata.
func (e *Engine) Simulate(req opsmodel.SimulationRequest) opsmodel.SimulationResponse {
	noise := e.newNoise(req.Seed)

	forecast := e.RunSimulation(req.CurrentState, req.ForecastHours, req.ResourceChanges, noise)
	suggestions := GenerateSuggestions(forecast, &req.CurrentState)

	return opsmodel.SimulationResponse{
		Forecast:    forecast,
		Suggestions: suggestions,
		Metadata:    e.summarize(forecast, req, len(suggestions)),
	}
}

// RunBenchmark compares the unmodified configuration against one with the
// top suggested staffing changes applied. Both runs draw from identically
// seeded noise sources so the comparison isolates the staffing effect.
func (e *Engine) RunBenchmark(req opsmodel.SimulationRequest) opsmodel.BenchmarkReport {
	seed := e.benchmarkSeed(req.Seed)

	baseline := e.RunSimulation(req.CurrentState, req.ForecastHours, nil, e.seededNoise(seed))
	suggestions := GenerateSuggestions(baseline, &req.CurrentState)

	var optimizedChanges []opsmodel.ResourceChange
	for _, s := range suggestions {
		if s.ResourceChange == nil {
			continue
		}
		optimizedChanges = append(optimizedChanges, *s.ResourceChange)
		if len(optimizedChanges) == e.cfg.MaxBenchmarkChanges {
			break
		}
	}

	optimized := baseline
	if len(optimizedChanges) > 0 {
		optimized = e.RunSimulation(req.CurrentState, req.ForecastHours, optimizedChanges, e.seededNoise(seed))
	}

	baselineAvg := meanBreachRisk(baseline)
	optimizedAvg := meanBreachRisk(optimized)

	var improvement float64
	if baselineAvg > 0 {
		improvement = (baselineAvg - optimizedAvg) / baselineAvg * 100
	}

	return opsmodel.BenchmarkReport{
		Baseline: opsmodel.BenchmarkRun{
			AverageBreachRisk: round2(baselineAvg),
			Forecast:          baseline,
		},
		Optimized: opsmodel.BenchmarkRun{
			AverageBreachRisk: round2(optimizedAvg),
			Forecast:          optimized,
			AppliedChanges:    optimizedChanges,
		},
		Improvement: opsmodel.BenchmarkImprovement{
			PercentageReduction: round2(improvement),
			SuggestionsApplied:  len(optimizedChanges),
		},
	}
}

// Optimize runs a short forecast over the given state and returns the
// resulting staffing suggestions.
func (e *Engine) Optimize(state opsmodel.OperationalState) ([]opsmodel.Suggestion, int) {
	horizon := e.cfg.OptimizeHorizonHours
	forecast := e.RunSimulation(state, horizon, nil, e.newNoise(nil))
	return GenerateSuggestions(forecast, &state), horizon
}

// newNoise builds the demand perturbation source for one run. A caller
// seed pins the sequence; sigma 0 disables perturbation entirely.
func (e *Engine) newNoise(seed *int64) Noise {
	if e.cfg.NoiseSigma == 0 {
		return UnitNoise{}
	}
	if seed != nil {
		return NewGaussianNoise(*seed, e.cfg.NoiseSigma)
	}
	return NewGaussianNoise(time.Now().UnixNano(), e.cfg.NoiseSigma)
}

func (e *Engine) seededNoise(seed int64) Noise {
	if e.cfg.NoiseSigma == 0 {
		return UnitNoise{}
	}
	return NewGaussianNoise(seed, e.cfg.NoiseSigma)
}

func (e *Engine) benchmarkSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

func (e *Engine) summarize(forecast []opsmodel.HourlyForecast, req opsmodel.SimulationRequest, suggestionCount int) opsmodel.SimulationMetadata {
	meta := opsmodel.SimulationMetadata{
		SimulationID:           uuid.NewString(),
		ForecastHours:          req.ForecastHours,
		ResourceChangesApplied: len(req.ResourceChanges),
		SuggestionsGenerated:   suggestionCount,
		GeneratedAt:            time.Now().UTC(),
	}

	if len(forecast) == 0 {
		return meta
	}

	peak := forecast[0]
	for _, hf := range forecast[1:] {
		if hf.TotalBreachRisk > peak.TotalBreachRisk {
			peak = hf
		}
	}

	meta.AverageBreachRisk = round2(meanBreachRisk(forecast))
	meta.PeakRiskHour = peak.Hour
	meta.PeakRiskValue = round2(peak.TotalBreachRisk)
	return meta
}

func meanBreachRisk(forecast []opsmodel.HourlyForecast) float64 {
	if len(forecast) == 0 {
		return 0
	}
	var sum float64
	for _, hf := range forecast {
		sum += hf.TotalBreachRisk
	}
	return sum / float64(len(forecast))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
