package strip

import (
	"math"
	"testing"
)

func TestMovingAverage(t *testing.T) {
	tests := []struct {
		name   string
		series []float64
		window int
		want   []float64
	}{
		{
			name:   "window one is identity",
			series: []float64{1, 2, 3, 4},
			window: 1,
			want:   []float64{1, 2, 3, 4},
		},
		{
			name:   "window three centers",
			series: []float64{0, 3, 0, 3, 0},
			window: 3,
			want:   []float64{1.5, 1, 2, 1, 1.5},
		},
		{
			name:   "constant series unchanged",
			series: []float64{5, 5, 5, 5, 5},
			window: 5,
			want:   []float64{5, 5, 5, 5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := movingAverage(tt.series, tt.window)
			if len(got) != len(tt.want) {
				t.Fatalf("length: got %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("index %d: got %g, want %g", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConditionSignal_ProminenceNonNegative(t *testing.T) {
	samples := bandSamples(96, evenBands(96, 6, 200, 40, 40))
	sig := ConditionSignal(samples, DefaultParams())

	if len(sig.Prominence) != len(samples) {
		t.Fatalf("prominence length: got %d, want %d", len(sig.Prominence), len(samples))
	}
	for i, v := range sig.Prominence {
		if v < 0 {
			t.Errorf("prominence[%d] = %g, want >= 0", i, v)
		}
	}
}

func TestConditionSignal_FlatSeriesIsFlat(t *testing.T) {
	samples := bandSamples(96, []band{{start: 0, end: 95, r: 200, g: 40, b: 40}})
	sig := ConditionSignal(samples, DefaultParams())

	for i, v := range sig.Prominence {
		if v != 0 {
			t.Errorf("prominence[%d] = %g, want 0 for a flat series", i, v)
		}
	}
}

func TestConditionSignal_PeaksInsidePads(t *testing.T) {
	bands := evenBands(96, 3, 200, 40, 40)
	samples := bandSamples(96, bands)
	sig := ConditionSignal(samples, DefaultParams())

	for _, bd := range bands {
		mid := (bd.start + bd.end) / 2
		if sig.Prominence[mid] <= 0 {
			t.Errorf("prominence at pad center %d = %g, want > 0", mid, sig.Prominence[mid])
		}
	}

	// Gap centers should be much less prominent than pad centers.
	firstGap := (bands[0].end + bands[1].start) / 2
	padMid := (bands[0].start + bands[0].end) / 2
	if sig.Prominence[firstGap] >= sig.Prominence[padMid] {
		t.Errorf("gap prominence %g not below pad prominence %g",
			sig.Prominence[firstGap], sig.Prominence[padMid])
	}
}

func TestConditionSignal_Deterministic(t *testing.T) {
	samples := bandSamples(96, evenBands(96, 6, 40, 160, 220))
	p := DefaultParams()

	a := ConditionSignal(samples, p)
	b := ConditionSignal(samples, p)
	for i := range a.Prominence {
		if a.Prominence[i] != b.Prominence[i] {
			t.Fatalf("prominence[%d] differs between identical runs", i)
		}
	}
}

func TestBaselineWindow(t *testing.T) {
	p := DefaultParams()
	tests := []struct {
		n    int
		want int
	}{
		{96, 17}, // 96/6 = 16, next odd
		{54, 9},  // 54/6 = 9, already odd and at the floor
		{30, 9},  // below the floor
		{120, 21},
	}
	for _, tt := range tests {
		if got := p.baselineWindow(tt.n); got != tt.want {
			t.Errorf("baselineWindow(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}
