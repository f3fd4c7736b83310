package simcast

// trendWindow bounds how many recent points contribute to the trend estimate.
const trendWindow = 10

// ForecastVolume projects future incoming-work volume using a smoothed level
// plus a seasonally weighted trend. history holds observed hourly volumes
// (oldest first); startHour is the hour-of-day (0-23) of the first projected
// step. Returns exactly stepsAhead values, each floored at zero.
//
// With fewer than two historical points there is no trend to extrapolate:
// a single point is repeated, and an empty history projects zeros.
func (e *Engine) ForecastVolume(history []float64, stepsAhead, startHour int) []float64 {
	if stepsAhead <= 0 {
		return []float64{}
	}
	predictions := make([]float64, 0, stepsAhead)

	if len(history) == 0 {
		return make([]float64, stepsAhead)
	}
	if len(history) < 2 {
		for range stepsAhead {
			predictions = append(predictions, history[len(history)-1])
		}
		return predictions
	}

	// Trend: mean of successive differences over the most recent points.
	recent := history
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}
	var diffSum float64
	for i := 1; i < len(recent); i++ {
		diffSum += recent[i] - recent[i-1]
	}
	trend := diffSum / float64(len(recent)-1)

	level := history[0]
	for step := range stepsAhead {
		next := level + trend*SeasonalFactor(startHour+step)
		if next < 0 {
			next = 0
		}
		predictions = append(predictions, next)

		// Exponential smoothing toward each new prediction.
		level = e.cfg.SmoothingAlpha*next + (1-e.cfg.SmoothingAlpha)*level
	}

	return predictions
}
