package simcast

import "math"

// Logistic curve parameters for bottleneck risk. Risk is low and flat below
// ~50% utilization, rises sharply around 70%, and saturates above ~90%.
const (
	logisticCenter    = 0.7
	logisticSteepness = 10.0
	complexityWeight  = 0.3
	varianceWeight    = 0.5
)

// BottleneckProbability scores the likelihood that a queue is or becomes a
// throughput bottleneck, as a percentage in [0, 100]. Utilization is a
// fraction (0-1), complexity >= 1, variance is a normalized backlog variance
// proxy >= 0. Monotonically non-decreasing in all three inputs.
func BottleneckProbability(utilization, complexity, variance float64) float64 {
	base := 1 / (1 + math.Exp(-logisticSteepness*(utilization-logisticCenter)))

	complexityFactor := 1 + (complexity-1)*complexityWeight
	varianceFactor := 1 + variance*varianceWeight

	return math.Min(100, base*100*complexityFactor*varianceFactor)
}
