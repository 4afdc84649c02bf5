package indicators

import "math"

// BollingerBands holds the three band series.
type BollingerBands struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// CalculateBollingerBands computes a period-bar SMA middle band with upper
// and lower bands at +/- multiplier population standard deviations.
func CalculateBollingerBands(closes []float64, period int, multiplier float64) BollingerBands {
	n := len(closes)
	bb := BollingerBands{
		Upper:  make([]float64, n),
		Middle: make([]float64, n),
		Lower:  make([]float64, n),
	}
	if period <= 0 || n < period {
		return bb
	}

	for i := period - 1; i < n; i++ {
		window := closes[i-period+1 : i+1]
		ma := mean(window)
		sd := stddev(window, ma)

		bb.Middle[i] = ma
		bb.Upper[i] = ma + multiplier*sd
		bb.Lower[i] = ma - multiplier*sd
	}
	return bb
}

func mean(data []float64) float64 {
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func stddev(data []float64, mu float64) float64 {
	if len(data) < 2 {
		return 0
	}
	sumSq := 0.0
	for _, v := range data {
		d := v - mu
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(data)))
}
