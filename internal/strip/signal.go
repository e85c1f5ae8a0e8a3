package strip

// Signal is the conditioned saturation series for one sample run: the
// smoothed series, its wider local baseline, and the derived prominence
// series that drives all peak logic. Prominence approximates how much a
// point stands out against its local surroundings.
type Signal struct {
	Smoothed   []float64
	Baseline   []float64
	Prominence []float64
}

// ConditionSignal derives the smoothed, baseline and prominence series from
// the raw saturation values. Pure function; retains no state across calls.
func ConditionSignal(samples []AxisSample, p Params) Signal {
	n := len(samples)
	raw := make([]float64, n)
	for i, s := range samples {
		raw[i] = s.Saturation
	}

	smoothed := movingAverage(raw, p.SmoothWindow)
	baseline := movingAverage(raw, p.baselineWindow(n))

	minSmoothed := 0.0
	if n > 0 {
		minSmoothed = smoothed[0]
		for _, v := range smoothed[1:] {
			if v < minSmoothed {
				minSmoothed = v
			}
		}
	}

	// Prominence: saturation above the local baseline, lifted by a fraction
	// of the height above the global minimum so broad plateaus of saturated
	// pads are not flattened away, floored at zero.
	prominence := make([]float64, n)
	for i := 0; i < n; i++ {
		aboveBase := smoothed[i] - baseline[i]
		aboveMin := p.ProminenceLift * (smoothed[i] - minSmoothed)
		pr := aboveBase
		if aboveMin > pr {
			pr = aboveMin
		}
		if pr < 0 {
			pr = 0
		}
		prominence[i] = pr
	}

	return Signal{Smoothed: smoothed, Baseline: baseline, Prominence: prominence}
}

// movingAverage computes a centered moving average, shrinking the window at
// the series edges.
func movingAverage(series []float64, window int) []float64 {
	n := len(series)
	out := make([]float64, n)
	if window < 1 {
		window = 1
	}
	half := window / 2

	for i := 0; i < n; i++ {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > n-1 {
			hi = n - 1
		}
		var sum float64
		for j := lo; j <= hi; j++ {
			sum += series[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return out
}
