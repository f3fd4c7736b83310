package simcast

import (
	"math"
	"time"

	"github.com/HerbHall/flowsight/pkg/opsmodel"
)

// Per-unit penalties applied as item complexity rises above 1.0.
const (
	efficiencyPenalty = 0.05 // Throughput efficiency lost per complexity point
	volatilityWeight  = 0.2  // Queue volatility gained per complexity point
)

// simulateHour advances the working state by one hour and returns the
// resulting forecast. refHour is the hour-of-day of the run's first step;
// offset is the zero-based hour index within the run.
//
// Queue backlog is mutated in place as each queue is processed, so a
// downstream queue's hand-off draws on its upstream neighbor's WIP as
// already updated earlier in this same pass.
func (e *Engine) simulateHour(state *opsmodel.OperationalState, refHour, offset int, noise Noise) opsmodel.HourlyForecast {
	hourOfDay := (refHour + offset) % 24

	// External demand for the hour: seasonally weighted base rate with a
	// stochastic perturbation from the injected source.
	incomingVolume := state.IncomingRate * SeasonalFactor(hourOfDay) * noise.Factor()

	predictions := make(map[string]opsmodel.QueuePrediction, len(state.WorkQueues))
	var riskSum float64

	for i := range state.WorkQueues {
		q := &state.WorkQueues[i]

		efficiency := e.cfg.BaseEfficiency - (q.Complexity-1)*efficiencyPenalty

		var processingPower float64
		if q.AvgProcessTime > 0 {
			processingPower = float64(q.Employees) * (60 / q.AvgProcessTime) * efficiency
		}

		var incoming float64
		if i == 0 {
			incoming = incomingVolume
		} else {
			// Hand-off lag: a fixed fraction of the upstream backlog
			// moves down the pipeline each hour.
			incoming = float64(state.WorkQueues[i-1].WorkInProgress) * e.cfg.FlowRate
		}

		oldWIP := float64(q.WorkInProgress)
		processed := math.Min(oldWIP, processingPower)
		newWIP := math.Max(0, oldWIP+incoming-processed)

		var utilization float64
		if q.Capacity > 0 {
			utilization = newWIP / float64(q.Capacity)
		}

		var normalizedVariance float64
		if q.Capacity > 0 {
			normalizedVariance = backlogSpread(oldWIP) / float64(q.Capacity)
		}

		bottleneckProb := BottleneckProbability(utilization, q.Complexity, normalizedVariance)

		var avgWaitTime float64
		if processingPower > 0 {
			avgWaitTime = (newWIP / processingPower) * q.AvgProcessTime
		}

		volatility := 1 + (q.Complexity-1)*volatilityWeight
		breachProb := BreachProbability(avgWaitTime, state.SLAThreshold, volatility)

		predictions[q.ID] = opsmodel.QueuePrediction{
			WorkInProgress:        int(math.Round(newWIP)),
			Utilization:           utilization * 100,
			BottleneckProbability: bottleneckProb,
			SLABreachProbability:  breachProb,
			AvgWaitTime:           avgWaitTime,
			Processed:             processed,
		}
		riskSum += breachProb

		q.WorkInProgress = int(math.Round(newWIP))
	}

	var totalRisk float64
	if len(state.WorkQueues) > 0 {
		totalRisk = riskSum / float64(len(state.WorkQueues))
	}

	return opsmodel.HourlyForecast{
		Hour:            offset + 1,
		Timestamp:       state.Timestamp.Add(time.Hour),
		Predictions:     predictions,
		TotalBreachRisk: totalRisk,
	}
}

// backlogSpread is a short-term backlog variance proxy: the population
// standard deviation of the backlog at -10%, nominal, and +10%.
func backlogSpread(wip float64) float64 {
	points := [3]float64{wip * 0.9, wip, wip * 1.1}
	mean := (points[0] + points[1] + points[2]) / 3

	var ss float64
	for _, p := range points {
		d := p - mean
		ss += d * d
	}
	return math.Sqrt(ss / 3)
}
