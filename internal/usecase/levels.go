package usecase

import "github.com/abk234/TradingAgents-sub000/internal/domain"

// CalculateTarget picks the most conservative resistance above the current
// price: the minimum of the eligible candidates. Falls back to a fixed
// percentage above price when nothing qualifies.
func CalculateTarget(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) float64 {
	var candidates []float64

	if snap.BBUpper != nil {
		candidates = append(candidates, *snap.BBUpper)
	}
	if snap.SMA50 != nil && *snap.SMA50 > price {
		candidates = append(candidates, *snap.SMA50)
	}
	if snap.SMA200 != nil && *snap.SMA200 > price {
		candidates = append(candidates, *snap.SMA200)
	}
	if snap.Pivot != nil {
		candidates = append(candidates, snap.Pivot.R1, snap.Pivot.R2)
	}

	target := 0.0
	for _, c := range candidates {
		if c <= price {
			continue
		}
		if target == 0 || c < target {
			target = c
		}
	}
	if target == 0 {
		target = price * cfg.TargetFallbackPct
	}
	return target
}

// CalculateStopLoss places the stop a notch below the closest support under
// the current price. When no support exists, or when a computed stop would
// sit at or above the entry floor, the entry-based fallback is substituted
// and the record flagged for audit.
func CalculateStopLoss(price, entryMin float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) (stop float64, inconsistent bool) {
	var candidates []float64

	if snap.BBLower != nil {
		candidates = append(candidates, *snap.BBLower)
	}
	if snap.SMA50 != nil {
		candidates = append(candidates, *snap.SMA50)
	}
	if snap.SMA200 != nil {
		candidates = append(candidates, *snap.SMA200)
	}
	if snap.Pivot != nil {
		candidates = append(candidates, snap.Pivot.S1)
	}

	support := 0.0
	for _, c := range candidates {
		if c >= price {
			continue
		}
		if c > support {
			support = c
		}
	}

	if support == 0 {
		return entryMin * cfg.StopFallbackPct, false
	}

	stop = support * cfg.StopSupportPct
	if stop >= entryMin {
		// Invariant violated by a non-fallback computation: flag it and
		// substitute the fallback, never pass it through silently.
		return entryMin * cfg.StopFallbackPct, true
	}
	return stop, false
}
