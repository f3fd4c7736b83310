package opsmodel

import (
	"testing"
	"time"
)

func sampleState() OperationalState {
	return OperationalState{
		WorkQueues: []WorkQueue{
			{ID: "intake", Name: "Intake", WorkInProgress: 40, Capacity: 100, AvgProcessTime: 15, Employees: 5, Complexity: 1.0},
			{ID: "review", Name: "Review", WorkInProgress: 25, Capacity: 80, AvgProcessTime: 30, Employees: 4, Complexity: 1.5},
		},
		IncomingRate: 8.5,
		Timestamp:    time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		SLAThreshold: 120,
	}
}

func TestClone_DeepCopiesQueues(t *testing.T) {
	original := sampleState()
	clone := original.Clone()

	clone.WorkQueues[0].WorkInProgress = 999
	clone.WorkQueues[1].Employees = 1

	if original.WorkQueues[0].WorkInProgress != 40 {
		t.Errorf("original WIP = %d, want 40 (clone must not alias)", original.WorkQueues[0].WorkInProgress)
	}
	if original.WorkQueues[1].Employees != 4 {
		t.Errorf("original employees = %d, want 4 (clone must not alias)", original.WorkQueues[1].Employees)
	}
}

func TestQueue_Lookup(t *testing.T) {
	state := sampleState()

	q := state.Queue("review")
	if q == nil {
		t.Fatal("Queue(review) = nil, want queue")
	}
	if q.Name != "Review" {
		t.Errorf("name = %q, want Review", q.Name)
	}

	// Returned pointer must address the state's own slice element.
	q.Employees = 7
	if state.WorkQueues[1].Employees != 7 {
		t.Error("Queue must return a pointer into the state")
	}

	if state.Queue("missing") != nil {
		t.Error("Queue(missing) != nil, want nil")
	}
}

func TestSeverityRank_Ordering(t *testing.T) {
	if !(SeverityRank(SeverityHigh) < SeverityRank(SeverityMedium) &&
		SeverityRank(SeverityMedium) < SeverityRank(SeverityLow)) {
		t.Errorf("rank order high=%d medium=%d low=%d, want strictly ascending",
			SeverityRank(SeverityHigh), SeverityRank(SeverityMedium), SeverityRank(SeverityLow))
	}
	if SeverityRank("bogus") <= SeverityRank(SeverityLow) {
		t.Errorf("unknown severity rank = %d, want greater than low's %d",
			SeverityRank("bogus"), SeverityRank(SeverityLow))
	}
}
