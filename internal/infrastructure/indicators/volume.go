package indicators

// VolumeRatio compares the latest bar's volume to the average of the
// preceding avgPeriod bars. Returns ok=false with insufficient history or
// a zero average.
func VolumeRatio(volumes []float64, avgPeriod int) (float64, bool) {
	n := len(volumes)
	if avgPeriod <= 0 || n < avgPeriod+1 {
		return 0, false
	}

	sum := 0.0
	for i := n - 1 - avgPeriod; i < n-1; i++ {
		sum += volumes[i]
	}
	avg := sum / float64(avgPeriod)
	if avg <= 0 {
		return 0, false
	}
	return volumes[n-1] / avg, true
}
