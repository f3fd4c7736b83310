package simcast

import (
	"math"
	"testing"

	"go.uber.org/zap"
)

func testEngine() *Engine {
	return NewEngine(DefaultConfig(), zap.NewNop())
}

func TestForecastVolume_EmptyHistory(t *testing.T) {
	got := testEngine().ForecastVolume(nil, 5, 0)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	for i, v := range got {
		if v != 0 {
			t.Errorf("got[%d] = %v, want 0", i, v)
		}
	}
}

func TestForecastVolume_SinglePointRepeats(t *testing.T) {
	got := testEngine().ForecastVolume([]float64{42}, 3, 0)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, v := range got {
		if v != 42 {
			t.Errorf("got[%d] = %v, want 42", i, v)
		}
	}
}

func TestForecastVolume_FlatHistoryStaysFlat(t *testing.T) {
	history := []float64{100, 100, 100, 100}
	got := testEngine().ForecastVolume(history, 4, 9)
	for i, v := range got {
		if v != 100 {
			t.Errorf("got[%d] = %v, want 100", i, v)
		}
	}
}

func TestForecastVolume_UpwardTrend(t *testing.T) {
	// Unit upward trend, projected over overnight hours (factor 0.6).
	history := []float64{10, 11, 12, 13}
	got := testEngine().ForecastVolume(history, 2, 0)

	if math.Abs(got[0]-10.6) > 1e-9 {
		t.Errorf("got[0] = %v, want 10.6", got[0])
	}
	// Level smooths toward 10.6: 0.3*10.6 + 0.7*10 = 10.18, then +0.6.
	if math.Abs(got[1]-10.78) > 1e-9 {
		t.Errorf("got[1] = %v, want 10.78", got[1])
	}
}

func TestForecastVolume_FlooredAtZero(t *testing.T) {
	history := []float64{10, 7, 4, 1}
	got := testEngine().ForecastVolume(history, 12, 9)
	for i, v := range got {
		if v < 0 {
			t.Errorf("got[%d] = %v, want >= 0", i, v)
		}
	}
}

func TestForecastVolume_TrendWindowLimitsLookback(t *testing.T) {
	// Old steep growth outside the 10-point window must not leak into
	// the trend estimate: the recent window is flat.
	history := make([]float64, 0, 15)
	for i := 0; i < 5; i++ {
		history = append(history, float64(i*100))
	}
	for i := 0; i < 10; i++ {
		history = append(history, 400)
	}
	got := testEngine().ForecastVolume(history, 1, 9)
	// Level starts at history[0] = 0 with zero trend.
	if got[0] != 0 {
		t.Errorf("got[0] = %v, want 0 (flat recent window, level at first point)", got[0])
	}
}

func TestForecastVolume_ZeroSteps(t *testing.T) {
	got := testEngine().ForecastVolume([]float64{1, 2}, 0, 0)
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
