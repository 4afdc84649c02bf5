package indicators

// FloorPivots are classic floor-trader levels from one prior bar.
type FloorPivots struct {
	PP float64
	R1 float64
	R2 float64
	S1 float64
	S2 float64
}

// CalculateFloorPivots derives support/resistance from the previous bar's
// high, low, and close.
func CalculateFloorPivots(prevHigh, prevLow, prevClose float64) FloorPivots {
	pp := (prevHigh + prevLow + prevClose) / 3.0
	rng := prevHigh - prevLow
	return FloorPivots{
		PP: pp,
		R1: 2*pp - prevLow,
		S1: 2*pp - prevHigh,
		R2: pp + rng,
		S2: pp - rng,
	}
}

// Retracement holds Fibonacci retracement levels of a price swing.
type Retracement struct {
	SwingHigh float64
	SwingLow  float64
	L236      float64
	L382      float64
	L500      float64
	L618      float64
	L786      float64
}

// CalculateRetracement finds the swing high/low over the last lookback bars
// and places retracement levels at the standard ratios of the swing range,
// measured down from the swing high. Returns ok=false when the history is
// shorter than the lookback or the swing range is flat.
func CalculateRetracement(highs, lows []float64, lookback int) (Retracement, bool) {
	n := len(highs)
	if lookback <= 1 || n < lookback || len(lows) < lookback {
		return Retracement{}, false
	}

	hi := highs[n-lookback]
	lo := lows[n-lookback]
	for i := n - lookback + 1; i < n; i++ {
		if highs[i] > hi {
			hi = highs[i]
		}
		if lows[i] < lo {
			lo = lows[i]
		}
	}

	rng := hi - lo
	if rng <= 0 {
		return Retracement{}, false
	}

	return Retracement{
		SwingHigh: hi,
		SwingLow:  lo,
		L236:      hi - 0.236*rng,
		L382:      hi - 0.382*rng,
		L500:      hi - 0.500*rng,
		L618:      hi - 0.618*rng,
		L786:      hi - 0.786*rng,
	}, true
}
