package indicators

// MACDResult holds the MACD line, its signal line, and the histogram.
type MACDResult struct {
	Line      []float64
	Signal    []float64
	Histogram []float64
}

// CalculateMACD computes fast EMA minus slow EMA, a signal EMA of the MACD
// line, and their difference. Valid values start once the slow EMA plus the
// signal EMA have seeded; earlier positions stay zero.
func CalculateMACD(closes []float64, fast, slow, signal int) MACDResult {
	n := len(closes)
	res := MACDResult{
		Line:      make([]float64, n),
		Signal:    make([]float64, n),
		Histogram: make([]float64, n),
	}
	if n < slow {
		return res
	}

	emaFast := CalculateEMA(closes, fast)
	emaSlow := CalculateEMA(closes, slow)

	for i := slow - 1; i < n; i++ {
		res.Line[i] = emaFast[i] - emaSlow[i]
	}

	// Signal line is an EMA over the valid MACD segment only.
	valid := res.Line[slow-1:]
	if len(valid) >= signal {
		sigValid := CalculateEMA(valid, signal)
		copy(res.Signal[slow-1:], sigValid)
		for i := slow - 1 + signal - 1; i < n; i++ {
			res.Histogram[i] = res.Line[i] - res.Signal[i]
		}
	}
	return res
}

// MACDMinBars is the history needed for a full MACD snapshot.
func MACDMinBars(slow, signal int) int {
	return slow + signal - 1
}
