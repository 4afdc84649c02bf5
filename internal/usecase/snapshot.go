package usecase

import (
	"github.com/abk234/TradingAgents-sub000/internal/domain"
	"github.com/abk234/TradingAgents-sub000/internal/infrastructure/indicators"
)

// BuildSnapshot computes every indicator for the ticker as of the last bar.
// Pure function of the input history. Indicators with too little history
// are left nil; the only error is malformed input.
func BuildSnapshot(ticker string, bars []domain.PriceBar, cfg domain.ScanConfig) (*domain.IndicatorSnapshot, error) {
	if err := domain.ValidateBars(ticker, bars); err != nil {
		return nil, err
	}

	n := len(bars)
	closes := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	volumes := make([]float64, n)
	for i, b := range bars {
		closes[i] = b.Close
		highs[i] = b.High
		lows[i] = b.Low
		volumes[i] = b.Volume
	}
	last := n - 1

	snap := &domain.IndicatorSnapshot{
		Ticker: ticker,
		Date:   bars[last].Date,
	}

	if n >= cfg.RSIPeriod+1 {
		rsi := indicators.CalculateRSI(closes, cfg.RSIPeriod)
		snap.RSI = domain.Float(rsi[last])
	}

	if n >= cfg.MACDSlow {
		macd := indicators.CalculateMACD(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
		snap.MACD = domain.Float(macd.Line[last])
		if n >= indicators.MACDMinBars(cfg.MACDSlow, cfg.MACDSignal) {
			snap.MACDSignal = domain.Float(macd.Signal[last])
			snap.MACDHist = domain.Float(macd.Histogram[last])
		}
	}

	if n >= cfg.BBPeriod {
		bb := indicators.CalculateBollingerBands(closes, cfg.BBPeriod, cfg.BBMultiplier)
		snap.BBUpper = domain.Float(bb.Upper[last])
		snap.BBMiddle = domain.Float(bb.Middle[last])
		snap.BBLower = domain.Float(bb.Lower[last])
	}

	for _, sma := range []struct {
		period int
		field  **float64
	}{
		{20, &snap.SMA20},
		{50, &snap.SMA50},
		{200, &snap.SMA200},
	} {
		if n >= sma.period {
			values := indicators.CalculateSMA(closes, sma.period)
			*sma.field = domain.Float(values[last])
		}
	}

	if n >= cfg.VWAPWindow {
		vwap := indicators.CalculateVWAP(highs, lows, closes, volumes, cfg.VWAPWindow)
		if vwap[last] > 0 {
			snap.VWAP = domain.Float(vwap[last])
		}
	}

	if n >= cfg.ATRPeriod+1 {
		atr := indicators.CalculateATR(highs, lows, closes, cfg.ATRPeriod)
		snap.ATR = domain.Float(atr[last])
		if closes[last] > 0 {
			snap.ATRPercent = domain.Float(atr[last] / closes[last] * 100)
		}
	}

	if n >= 2 {
		prev := bars[n-2]
		fp := indicators.CalculateFloorPivots(prev.High, prev.Low, prev.Close)
		snap.Pivot = &domain.PivotLevels{PP: fp.PP, R1: fp.R1, R2: fp.R2, S1: fp.S1, S2: fp.S2}
	}

	if fib, ok := indicators.CalculateRetracement(highs, lows, cfg.FibLookback); ok {
		snap.Fib = &domain.FibLevels{
			SwingHigh: fib.SwingHigh,
			SwingLow:  fib.SwingLow,
			L236:      fib.L236,
			L382:      fib.L382,
			L500:      fib.L500,
			L618:      fib.L618,
			L786:      fib.L786,
		}
	}

	if ratio, ok := indicators.VolumeRatio(volumes, cfg.VolumeAvgPeriod); ok {
		snap.VolumeRatio = domain.Float(ratio)
	}

	return snap, nil
}
