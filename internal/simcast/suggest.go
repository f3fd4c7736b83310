package simcast

import (
	"fmt"
	"math"
	"sort"

	"github.com/HerbHall/flowsight/pkg/opsmodel"
)

// Rule thresholds for staffing recommendations, evaluated against each
// queue's final-hour prediction.
const (
	breachAlertPct     = 70 // Above this breach probability, add staff
	idleUtilizationPct = 40 // Below this utilization, staff can be freed
	bottleneckWarnPct  = 60 // Early-warning bottleneck probability
	breachWarnPct      = 40 // Breach probability backing the early warning
	safeCapacityRatio  = 0.7
	impactFactor       = 0.6
)

// GenerateSuggestions inspects the final hour of a forecast and proposes
// staffing actions per queue. Rules are mutually exclusive and checked in
// priority order: overloaded queues get a concrete headcount addition,
// underused queues a reallocation hint, and queues trending toward a
// bottleneck an advisory. Results are ordered by severity; ties keep the
// pipeline order.
func GenerateSuggestions(forecast []opsmodel.HourlyForecast, state *opsmodel.OperationalState) []opsmodel.Suggestion {
	suggestions := []opsmodel.Suggestion{}
	if len(forecast) == 0 {
		return suggestions
	}
	finalHour := forecast[len(forecast)-1]

	for _, q := range state.WorkQueues {
		pred, ok := finalHour.Predictions[q.ID]
		if !ok {
			continue
		}

		switch {
		case pred.SLABreachProbability > breachAlertPct:
			needed := int(math.Ceil(
				(float64(pred.WorkInProgress) - float64(q.Capacity)*safeCapacityRatio) /
					(60 / q.AvgProcessTime)))
			impact := pred.SLABreachProbability * impactFactor

			suggestions = append(suggestions, opsmodel.Suggestion{
				Severity:  opsmodel.SeverityHigh,
				Queue:     q.Name,
				QueueID:   q.ID,
				Action:    fmt.Sprintf("Add %d employee(s)", needed),
				Impact:    fmt.Sprintf("Reduce breach risk by ~%.0f%%", impact),
				Reasoning: fmt.Sprintf("Current workload (%d cases) exceeds safe capacity with high breach probability", pred.WorkInProgress),
				ResourceChange: &opsmodel.ResourceChange{
					QueueID:        q.ID,
					EmployeeChange: needed,
				},
			})

		case pred.Utilization < idleUtilizationPct && q.Employees > 2:
			suggestions = append(suggestions, opsmodel.Suggestion{
				Severity:  opsmodel.SeverityLow,
				Queue:     q.Name,
				QueueID:   q.ID,
				Action:    "Reallocate 1-2 employee(s)",
				Impact:    "Free resources without risk increase",
				Reasoning: fmt.Sprintf("Low utilization (%.1f%%) indicates spare capacity", pred.Utilization),
				ResourceChange: &opsmodel.ResourceChange{
					QueueID:        q.ID,
					EmployeeChange: -1,
				},
			})

		case pred.BottleneckProbability > bottleneckWarnPct && pred.SLABreachProbability > breachWarnPct:
			suggestions = append(suggestions, opsmodel.Suggestion{
				Severity:  opsmodel.SeverityMedium,
				Queue:     q.Name,
				QueueID:   q.ID,
				Action:    "Monitor closely and prepare to add resources",
				Impact:    "Prevent bottleneck formation",
				Reasoning: "Early indicators of bottleneck formation detected",
			})
		}
	}

	// Stable sort keeps pipeline order within a severity tier.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return opsmodel.SeverityRank(suggestions[i].Severity) < opsmodel.SeverityRank(suggestions[j].Severity)
	})
	return suggestions
}
