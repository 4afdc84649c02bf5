package usecase

import "github.com/abk234/TradingAgents-sub000/internal/domain"

// CalculateScore aggregates the directional signals into a single [0,100]
// opportunity score. Each signal contributes a bounded number of points in
// a documented direction; contributions are evaluated in a fixed order so
// the output is deterministic. Higher is more attractive to the long side.
func CalculateScore(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) (float64, []domain.SignalContribution) {
	w := cfg.Weights
	score := w.Baseline
	var signals []domain.SignalContribution

	add := func(name string, dir domain.SignalDirection, points float64) {
		score += points
		signals = append(signals, domain.SignalContribution{Name: name, Direction: dir, Points: points})
	}

	// RSI: graded oversold is bullish, graded overbought bearish.
	if snap.RSI != nil {
		switch rsi := *snap.RSI; {
		case rsi < 20:
			add("rsi_oversold", domain.DirectionBullish, w.RSIOversold)
		case rsi < cfg.RSIOversold:
			add("rsi_oversold", domain.DirectionBullish, w.RSIOversold*0.6)
		case rsi > 80:
			add("rsi_overbought", domain.DirectionBearish, -w.RSIOverbought)
		case rsi > cfg.RSIOverbought:
			add("rsi_overbought", domain.DirectionBearish, -w.RSIOverbought*0.6)
		default:
			add("rsi_neutral", domain.DirectionNeutral, 0)
		}
	}

	// MACD: histogram sign gives the crossover direction; agreement of the
	// line's sign strengthens it.
	if snap.MACDHist != nil && snap.MACD != nil {
		hist, line := *snap.MACDHist, *snap.MACD
		switch {
		case hist > 0 && line > 0:
			add("macd_bull_cross", domain.DirectionBullish, w.MACDCross)
		case hist > 0:
			add("macd_bull_cross", domain.DirectionBullish, w.MACDCross*0.5)
		case hist < 0 && line < 0:
			add("macd_bear_cross", domain.DirectionBearish, -w.MACDCross)
		case hist < 0:
			add("macd_bear_cross", domain.DirectionBearish, -w.MACDCross*0.5)
		default:
			add("macd_flat", domain.DirectionNeutral, 0)
		}
	}

	// Moving-average alignment: full stack above is bullish, below bearish.
	if snap.SMA20 != nil && snap.SMA50 != nil {
		aligned := 0
		if price > *snap.SMA20 {
			aligned++
		}
		if *snap.SMA20 > *snap.SMA50 {
			aligned++
		}
		if snap.SMA200 != nil && *snap.SMA50 > *snap.SMA200 {
			aligned++
		}
		switch {
		case aligned >= 3:
			add("ma_alignment", domain.DirectionBullish, w.MAAlignment)
		case aligned == 2:
			add("ma_alignment", domain.DirectionBullish, w.MAAlignment*0.5)
		case aligned == 0:
			add("ma_alignment", domain.DirectionBearish, -w.MAAlignment)
		default:
			add("ma_alignment", domain.DirectionNeutral, 0)
		}
	}

	// VWAP distance: trading under VWAP is a discount, over it a premium.
	if snap.VWAP != nil && *snap.VWAP > 0 {
		dist := (price - *snap.VWAP) / *snap.VWAP * 100
		switch {
		case dist < -2:
			add("vwap_discount", domain.DirectionBullish, w.VWAPDistance)
		case dist < -0.5:
			add("vwap_discount", domain.DirectionBullish, w.VWAPDistance*0.5)
		case dist > 2:
			add("vwap_premium", domain.DirectionBearish, -w.VWAPDistance)
		case dist > 0.5:
			add("vwap_premium", domain.DirectionBearish, -w.VWAPDistance*0.5)
		default:
			add("vwap_fair", domain.DirectionNeutral, 0)
		}
	}

	// Bollinger position: lower-band touches are bullish, upper-band
	// rides bearish; a tight squeeze signals an imminent move.
	if snap.BBUpper != nil && snap.BBLower != nil && snap.BBMiddle != nil && *snap.BBMiddle > 0 {
		switch {
		case price <= *snap.BBLower:
			add("bb_lower_touch", domain.DirectionBullish, w.BBPosition)
		case price >= *snap.BBUpper:
			add("bb_upper_ride", domain.DirectionBearish, -w.BBPosition)
		default:
			width := (*snap.BBUpper - *snap.BBLower) / *snap.BBMiddle * 100
			if width < 3 {
				add("bb_squeeze", domain.DirectionBullish, w.BBPosition*0.5)
			} else {
				add("bb_inside", domain.DirectionNeutral, 0)
			}
		}
	}

	// Pivot zone: below S1 is oversold against support, above R1 extended.
	if snap.Pivot != nil {
		switch {
		case price < snap.Pivot.S1:
			add("pivot_below_s1", domain.DirectionBullish, w.PivotZone)
		case price > snap.Pivot.R1:
			add("pivot_above_r1", domain.DirectionBearish, -w.PivotZone)
		default:
			add("pivot_range", domain.DirectionNeutral, 0)
		}
	}

	// Volume confirmation: elevated volume confirms the move, dried-up
	// volume weakens it.
	if snap.VolumeRatio != nil {
		switch ratio := *snap.VolumeRatio; {
		case ratio >= 1.5:
			add("volume_confirm", domain.DirectionBullish, w.VolumeConfirm)
		case ratio >= 1.2:
			add("volume_confirm", domain.DirectionBullish, w.VolumeConfirm*0.5)
		case ratio < 0.7:
			add("volume_dryup", domain.DirectionBearish, -w.VolumeConfirm*0.5)
		default:
			add("volume_normal", domain.DirectionNeutral, 0)
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, signals
}
