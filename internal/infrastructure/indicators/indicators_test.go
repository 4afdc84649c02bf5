package indicators

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestCalculateSMA(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}
	sma := CalculateSMA(data, 3)

	if sma[0] != 0 || sma[1] != 0 {
		t.Error("expected zero before first full window")
	}
	if !almostEqual(sma[2], 2, 1e-9) {
		t.Errorf("sma[2] = %v, want 2", sma[2])
	}
	if !almostEqual(sma[4], 4, 1e-9) {
		t.Errorf("sma[4] = %v, want 4", sma[4])
	}
}

func TestCalculateSMA_InsufficientData(t *testing.T) {
	sma := CalculateSMA([]float64{1, 2}, 5)
	for i, v := range sma {
		if v != 0 {
			t.Errorf("sma[%d] = %v, want 0", i, v)
		}
	}
}

func TestCalculateEMA_SeededWithSMA(t *testing.T) {
	data := []float64{2, 4, 6, 8}
	ema := CalculateEMA(data, 3)
	if !almostEqual(ema[2], 4, 1e-9) {
		t.Errorf("ema seed = %v, want 4", ema[2])
	}
	// k = 0.5: ema[3] = 8*0.5 + 4*0.5 = 6
	if !almostEqual(ema[3], 6, 1e-9) {
		t.Errorf("ema[3] = %v, want 6", ema[3])
	}
}

func TestCalculateRSI_Bounds(t *testing.T) {
	closes := []float64{44, 44.3, 44.1, 43.6, 44.3, 44.8, 45.1, 45.4, 45.8, 46.1,
		45.9, 46.2, 45.6, 46.3, 46.3, 46.0, 46.0, 46.4, 46.2, 45.6}
	rsi := CalculateRSI(closes, 14)

	for i := 14; i < len(closes); i++ {
		if rsi[i] < 0 || rsi[i] > 100 {
			t.Errorf("rsi[%d] = %v, out of [0,100]", i, rsi[i])
		}
	}
}

func TestCalculateRSI_AllGains(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi := CalculateRSI(closes, 14)
	if rsi[len(closes)-1] != 100 {
		t.Errorf("rsi for monotone gains = %v, want 100", rsi[len(closes)-1])
	}
}

func TestCalculateRSI_InsufficientHistory(t *testing.T) {
	closes := []float64{1, 2, 3}
	rsi := CalculateRSI(closes, 14)
	for i, v := range rsi {
		if v != 0 {
			t.Errorf("rsi[%d] = %v, want 0 with short history", i, v)
		}
	}
}

func TestCalculateBollingerBands(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100
	}
	bb := CalculateBollingerBands(closes, 20, 2.0)

	last := len(closes) - 1
	if bb.Middle[last] != 100 {
		t.Errorf("middle = %v, want 100", bb.Middle[last])
	}
	// Flat series: zero deviation, bands collapse onto the middle.
	if bb.Upper[last] != 100 || bb.Lower[last] != 100 {
		t.Errorf("flat series bands = %v/%v, want 100/100", bb.Upper[last], bb.Lower[last])
	}
}

func TestCalculateBollingerBands_Ordering(t *testing.T) {
	closes := []float64{98, 101, 99, 102, 97, 103, 100, 104, 96, 105,
		99, 101, 98, 103, 100, 102, 97, 104, 99, 101}
	bb := CalculateBollingerBands(closes, 20, 2.0)
	last := len(closes) - 1
	if !(bb.Lower[last] < bb.Middle[last] && bb.Middle[last] < bb.Upper[last]) {
		t.Errorf("band ordering violated: %v %v %v", bb.Lower[last], bb.Middle[last], bb.Upper[last])
	}
}

func TestTrueRange(t *testing.T) {
	tests := []struct {
		high, low, prevClose, want float64
	}{
		{105, 100, 102, 5},  // plain range
		{105, 100, 110, 10}, // gap down: |high - prevClose|
		{105, 100, 95, 10},  // gap up: |low - prevClose|
	}
	for _, tt := range tests {
		if got := TrueRange(tt.high, tt.low, tt.prevClose); !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("TrueRange(%v,%v,%v) = %v, want %v", tt.high, tt.low, tt.prevClose, got, tt.want)
		}
	}
}

func TestCalculateATR_ConstantRange(t *testing.T) {
	n := 20
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	for i := 0; i < n; i++ {
		highs[i] = 102
		lows[i] = 100
		closes[i] = 101
	}
	atr := CalculateATR(highs, lows, closes, 14)
	if !almostEqual(atr[n-1], 2, 1e-9) {
		t.Errorf("flat ATR = %v, want 2", atr[n-1])
	}
}

func TestCalculateVWAP_Window(t *testing.T) {
	n := 5
	highs := []float64{10, 20, 30, 40, 50}
	lows := []float64{10, 20, 30, 40, 50}
	closes := []float64{10, 20, 30, 40, 50}
	volumes := []float64{1, 1, 1, 1, 1}

	vwap := CalculateVWAP(highs, lows, closes, volumes, 3)
	if vwap[0] != 0 || vwap[1] != 0 {
		t.Error("expected zero before first full window")
	}
	// Equal volumes: rolling mean of typical prices.
	if !almostEqual(vwap[2], 20, 1e-9) || !almostEqual(vwap[n-1], 40, 1e-9) {
		t.Errorf("vwap = %v, want window means", vwap)
	}
}

func TestCalculateVWAP_VolumeWeighting(t *testing.T) {
	highs := []float64{10, 20}
	lows := []float64{10, 20}
	closes := []float64{10, 20}
	volumes := []float64{3, 1}

	vwap := CalculateVWAP(highs, lows, closes, volumes, 2)
	// (10*3 + 20*1) / 4 = 12.5
	if !almostEqual(vwap[1], 12.5, 1e-9) {
		t.Errorf("vwap[1] = %v, want 12.5", vwap[1])
	}
}

func TestCalculateFloorPivots(t *testing.T) {
	fp := CalculateFloorPivots(110, 100, 105)

	if !almostEqual(fp.PP, 105, 1e-9) {
		t.Errorf("PP = %v, want 105", fp.PP)
	}
	if !almostEqual(fp.R1, 110, 1e-9) {
		t.Errorf("R1 = %v, want 110", fp.R1)
	}
	if !almostEqual(fp.S1, 100, 1e-9) {
		t.Errorf("S1 = %v, want 100", fp.S1)
	}
	if !almostEqual(fp.R2, 115, 1e-9) {
		t.Errorf("R2 = %v, want 115", fp.R2)
	}
	if !almostEqual(fp.S2, 95, 1e-9) {
		t.Errorf("S2 = %v, want 95", fp.S2)
	}
}

func TestCalculateRetracement(t *testing.T) {
	highs := []float64{100, 150, 140, 130, 120}
	lows := []float64{90, 100, 110, 105, 100}

	fib, ok := CalculateRetracement(highs, lows, 5)
	if !ok {
		t.Fatal("expected a retracement")
	}
	if fib.SwingHigh != 150 || fib.SwingLow != 90 {
		t.Fatalf("swing = %v/%v, want 150/90", fib.SwingHigh, fib.SwingLow)
	}
	if !almostEqual(fib.L500, 120, 1e-9) {
		t.Errorf("L500 = %v, want 120", fib.L500)
	}
	if !almostEqual(fib.L236, 150-0.236*60, 1e-9) {
		t.Errorf("L236 = %v", fib.L236)
	}
	// Levels descend from 23.6 to 78.6.
	if !(fib.L236 > fib.L382 && fib.L382 > fib.L500 && fib.L500 > fib.L618 && fib.L618 > fib.L786) {
		t.Error("retracement levels not descending")
	}
}

func TestCalculateRetracement_Flat(t *testing.T) {
	highs := []float64{100, 100, 100}
	lows := []float64{100, 100, 100}
	if _, ok := CalculateRetracement(highs, lows, 3); ok {
		t.Error("expected no retracement on a flat swing")
	}
}

func TestVolumeRatio(t *testing.T) {
	volumes := make([]float64, 21)
	for i := 0; i < 20; i++ {
		volumes[i] = 100
	}
	volumes[20] = 250

	ratio, ok := VolumeRatio(volumes, 20)
	if !ok {
		t.Fatal("expected a ratio")
	}
	if !almostEqual(ratio, 2.5, 1e-9) {
		t.Errorf("ratio = %v, want 2.5", ratio)
	}
}

func TestVolumeRatio_InsufficientHistory(t *testing.T) {
	if _, ok := VolumeRatio([]float64{100, 200}, 20); ok {
		t.Error("expected no ratio with short history")
	}
}

func TestCalculateMACD_ValuesAndWarmup(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.5
	}
	macd := CalculateMACD(closes, 12, 26, 9)

	last := len(closes) - 1
	// Steady uptrend: fast EMA above slow EMA.
	if macd.Line[last] <= 0 {
		t.Errorf("macd line = %v, want > 0 in an uptrend", macd.Line[last])
	}
	if macd.Line[10] != 0 {
		t.Errorf("macd line before warmup = %v, want 0", macd.Line[10])
	}
	if !almostEqual(macd.Histogram[last], macd.Line[last]-macd.Signal[last], 1e-9) {
		t.Error("histogram != line - signal")
	}
}
