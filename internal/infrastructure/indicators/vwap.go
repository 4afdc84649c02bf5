package indicators

// CalculateVWAP computes the volume-weighted average of typical price
// (high+low+close)/3 over a rolling window. Positions before the first
// full window are left at zero; zero-volume windows yield zero.
func CalculateVWAP(highs, lows, closes, volumes []float64, window int) []float64 {
	n := len(closes)
	vwap := make([]float64, n)
	if window <= 0 || n < window {
		return vwap
	}

	tpv := 0.0 // typical price * volume, running window sum
	vol := 0.0
	for i := 0; i < n; i++ {
		tp := (highs[i] + lows[i] + closes[i]) / 3.0
		tpv += tp * volumes[i]
		vol += volumes[i]

		if i >= window {
			oldTP := (highs[i-window] + lows[i-window] + closes[i-window]) / 3.0
			tpv -= oldTP * volumes[i-window]
			vol -= volumes[i-window]
		}
		if i >= window-1 && vol > 0 {
			vwap[i] = tpv / vol
		}
	}
	return vwap
}
