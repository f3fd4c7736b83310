package simcast

import "math"

// Breakpoints of the three-segment breach-probability curve over the
// wait/threshold ratio: negligible while comfortably under threshold,
// moderate as wait approaches it, steep once it is exceeded.
const (
	lowRiskRatio  = 0.5
	highRiskRatio = 0.8
	maxBreachProb = 99.9
)

// BreachProbability estimates the probability that the expected wait time
// breaches the SLA threshold, as a percentage in [0, 99.9]. waitTime and
// slaThreshold are minutes; volatility (>= 1) amplifies the estimate for
// less predictable queues.
func BreachProbability(waitTime, slaThreshold, volatility float64) float64 {
	if slaThreshold <= 0 {
		return 0
	}
	ratio := waitTime / slaThreshold

	var prob float64
	switch {
	case ratio < lowRiskRatio:
		prob = ratio * 20 // 0-10%
	case ratio < highRiskRatio:
		prob = 10 + (ratio-lowRiskRatio)*80 // 10-34%
	default:
		prob = 34 + (ratio-highRiskRatio)*280 // uncapped until the final clamp
	}

	prob *= volatility

	return math.Min(maxBreachProb, math.Max(0, prob))
}
