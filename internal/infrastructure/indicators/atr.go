package indicators

import "math"

// TrueRange is the greatest of high-low, |high-prevClose|, |low-prevClose|.
func TrueRange(high, low, prevClose float64) float64 {
	tr := high - low
	if hc := math.Abs(high - prevClose); hc > tr {
		tr = hc
	}
	if lc := math.Abs(low - prevClose); lc > tr {
		tr = lc
	}
	return tr
}

// CalculateATR computes the Wilder-smoothed Average True Range. The first
// valid value is at index period; earlier positions stay zero.
func CalculateATR(highs, lows, closes []float64, period int) []float64 {
	n := len(closes)
	atr := make([]float64, n)
	if period <= 0 || n < period+1 {
		return atr
	}

	trs := make([]float64, n)
	trs[0] = highs[0] - lows[0]
	for i := 1; i < n; i++ {
		trs[i] = TrueRange(highs[i], lows[i], closes[i-1])
	}

	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += trs[i]
	}
	atr[period] = sum / float64(period)

	for i := period + 1; i < n; i++ {
		atr[i] = (atr[i-1]*float64(period-1) + trs[i]) / float64(period)
	}
	return atr
}
