package demo

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/HerbHall/flowsight/pkg/opsmodel"
)

// Shape constants for the synthetic history series. Volume follows a
// daily sine wave peaking mid-afternoon; staffing follows a shifted
// wave peaking in the early afternoon.
const (
	baseVolume        = 300
	volumeSwing       = 100
	volumeNoiseSigma  = 25
	meanBreachesPerHr = 8
	baseProcessTime   = 35
	processTimeSigma  = 10
	baseEmployees     = 15
	employeeSwing     = 5
)

// synthesizer generates plausible historical operational data. Not safe
// for concurrent use; each request builds its own.
type synthesizer struct {
	rng *rand.Rand
}

func newSynthesizer(seed uint64) *synthesizer {
	return &synthesizer{rng: rand.New(rand.NewPCG(seed, seed^0xda3e39cb94b95bdb))}
}

// history generates hours of hourly data ending at now, oldest first.
func (s *synthesizer) history(now time.Time, hours int) []opsmodel.HistoricalPoint {
	data := make([]opsmodel.HistoricalPoint, 0, hours)

	for i := 0; i < hours; i++ {
		ts := now.Add(-time.Duration(hours-i) * time.Hour)
		hourOfDay := float64(ts.Hour())

		seasonal := volumeSwing * math.Sin((hourOfDay-6)*math.Pi/12)
		volume := baseVolume + seasonal + s.rng.NormFloat64()*volumeNoiseSigma

		data = append(data, opsmodel.HistoricalPoint{
			Timestamp:       ts,
			Volume:          int(math.Round(math.Max(0, volume))),
			Breaches:        s.poisson(meanBreachesPerHr),
			AvgProcessTime:  round1(baseProcessTime + s.rng.NormFloat64()*processTimeSigma),
			ActiveEmployees: int(math.Round(baseEmployees + employeeSwing*math.Sin((hourOfDay-9)*math.Pi/8))),
		})
	}
	return data
}

// poisson draws a Poisson-distributed count via Knuth's method.
// Fine for small means; the breach rate here is single digits.
func (s *synthesizer) poisson(mean float64) int {
	l := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= s.rng.Float64()
		if p <= l {
			return k
		}
		k++
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CurrentState returns a fixed operational snapshot of a four-stage case
// pipeline. Stands in for a live operational data source.
func CurrentState(now time.Time) opsmodel.OperationalState {
	return opsmodel.OperationalState{
		WorkQueues: []opsmodel.WorkQueue{
			{
				ID:             "intake",
				Name:           "Case Intake",
				WorkInProgress: 45,
				Capacity:       50,
				AvgProcessTime: 15,
				Employees:      5,
				Complexity:     1.0,
			},
			{
				ID:             "review",
				Name:           "Manual Review",
				WorkInProgress: 78,
				Capacity:       60,
				AvgProcessTime: 45,
				Employees:      8,
				Complexity:     2.5,
			},
			{
				ID:             "approval",
				Name:           "Final Approval",
				WorkInProgress: 23,
				Capacity:       40,
				AvgProcessTime: 30,
				Employees:      4,
				Complexity:     1.8,
			},
			{
				ID:             "completion",
				Name:           "Case Completion",
				WorkInProgress: 12,
				Capacity:       50,
				AvgProcessTime: 10,
				Employees:      3,
				Complexity:     1.0,
			},
		},
		IncomingRate: 8.5,
		Timestamp:    now,
		SLAThreshold: 120,
	}
}
