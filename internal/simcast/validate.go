package simcast

import (
	"fmt"

	"github.com/HerbHall/flowsight/pkg/opsmodel"
)

// validateState checks the field constraints of an operational state.
func validateState(state *opsmodel.OperationalState) error {
	if len(state.WorkQueues) == 0 {
		return fmt.Errorf("current_state must contain at least one work queue")
	}
	if state.IncomingRate < 0 {
		return fmt.Errorf("incoming_rate must be >= 0, got %v", state.IncomingRate)
	}
	if state.SLAThreshold <= 0 {
		return fmt.Errorf("sla_threshold must be > 0, got %v", state.SLAThreshold)
	}

	seen := make(map[string]struct{}, len(state.WorkQueues))
	for i, q := range state.WorkQueues {
		if q.ID == "" {
			return fmt.Errorf("work_queues[%d]: id is required", i)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("work_queues[%d]: duplicate queue id %q", i, q.ID)
		}
		seen[q.ID] = struct{}{}

		if q.WorkInProgress < 0 {
			return fmt.Errorf("queue %q: work_in_progress must be >= 0, got %d", q.ID, q.WorkInProgress)
		}
		if q.Capacity <= 0 {
			return fmt.Errorf("queue %q: capacity must be > 0, got %d", q.ID, q.Capacity)
		}
		if q.AvgProcessTime <= 0 {
			return fmt.Errorf("queue %q: avg_process_time must be > 0, got %v", q.ID, q.AvgProcessTime)
		}
		if q.Employees < 1 {
			return fmt.Errorf("queue %q: employees must be >= 1, got %d", q.ID, q.Employees)
		}
		if q.Complexity < 1 {
			return fmt.Errorf("queue %q: complexity must be >= 1.0, got %v", q.ID, q.Complexity)
		}
	}
	return nil
}

// validateSimulationRequest checks a simulate/benchmark request body.
func validateSimulationRequest(req *opsmodel.SimulationRequest, maxHours int) error {
	if req.ForecastHours < 0 {
		return fmt.Errorf("forecast_hours must be >= 0, got %d", req.ForecastHours)
	}
	if req.ForecastHours > maxHours {
		return fmt.Errorf("forecast_hours must be <= %d, got %d", maxHours, req.ForecastHours)
	}
	return validateState(&req.CurrentState)
}

// validateVolumeRequest checks a volume projection request body.
func validateVolumeRequest(req *opsmodel.VolumeRequest, maxSteps int) error {
	if req.StepsAhead < 0 {
		return fmt.Errorf("steps_ahead must be >= 0, got %d", req.StepsAhead)
	}
	if req.StepsAhead > maxSteps {
		return fmt.Errorf("steps_ahead must be <= %d, got %d", maxSteps, req.StepsAhead)
	}
	if req.StartHour < 0 || req.StartHour > 23 {
		return fmt.Errorf("start_hour must be in [0, 23], got %d", req.StartHour)
	}
	for i, v := range req.History {
		if v < 0 {
			return fmt.Errorf("history[%d] must be >= 0, got %v", i, v)
		}
	}
	return nil
}
