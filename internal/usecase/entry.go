package usecase

import (
	"math"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

// entryDecision is one tier's proposed entry band and timing.
type entryDecision struct {
	min    float64
	max    float64
	timing domain.EntryTiming
}

// entryTier proposes an entry band, or nil when its indicator is absent or
// its condition does not hold. Tiers never error; absence of an indicator
// just falls through to the next tier.
type entryTier interface {
	Name() string
	Evaluate(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) *entryDecision
}

// vwapTier: price trading at a discount to VWAP is an immediate buy.
type vwapTier struct{}

func (vwapTier) Name() string { return "vwap" }

func (vwapTier) Evaluate(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) *entryDecision {
	if snap.VWAP == nil || price >= *snap.VWAP*cfg.VWAPDiscount {
		return nil
	}
	return &entryDecision{
		min:    price * cfg.VWAPBandFloor,
		max:    *snap.VWAP * cfg.VWAPBandCeil,
		timing: domain.TimingBuyNow,
	}
}

// pivotTier: price below first pivot support is oversold; band sits around S1.
type pivotTier struct{}

func (pivotTier) Name() string { return "pivot" }

func (pivotTier) Evaluate(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) *entryDecision {
	if snap.Pivot == nil || price >= snap.Pivot.S1 {
		return nil
	}
	return &entryDecision{
		min:    snap.Pivot.S1 * cfg.PivotBandFloor,
		max:    snap.Pivot.S1 * cfg.PivotBandCeil,
		timing: domain.TimingBuyNow,
	}
}

// rsiTier: oversold RSI buys a band just under the current price.
type rsiTier struct{}

func (rsiTier) Name() string { return "rsi" }

func (rsiTier) Evaluate(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) *entryDecision {
	if snap.RSI == nil || *snap.RSI >= cfg.RSIOversold {
		return nil
	}
	return &entryDecision{
		min:    price * cfg.RSIBandFloor,
		max:    price * cfg.RSIBandCeil,
		timing: domain.TimingBuyNow,
	}
}

// bollingerTier: price near the lower band accumulates between the lower
// band and the midpoint toward the middle band.
type bollingerTier struct{}

func (bollingerTier) Name() string { return "bollinger" }

func (bollingerTier) Evaluate(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) *entryDecision {
	if snap.BBLower == nil || snap.BBMiddle == nil || *snap.BBLower <= 0 {
		return nil
	}
	distPct := math.Abs(price-*snap.BBLower) / *snap.BBLower * 100
	if distPct > cfg.BBProximityPct {
		return nil
	}
	return &entryDecision{
		min:    *snap.BBLower,
		max:    (*snap.BBLower + *snap.BBMiddle) / 2,
		timing: domain.TimingAccumulate,
	}
}

// defaultTier always applies. Overbought RSI waits for a pullback below the
// current price; otherwise accumulate around it.
type defaultTier struct{}

func (defaultTier) Name() string { return "default" }

func (defaultTier) Evaluate(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) *entryDecision {
	if snap.RSI != nil && *snap.RSI > cfg.RSIOverbought {
		return &entryDecision{
			min:    price * cfg.PullbackBandFloor,
			max:    price * cfg.PullbackBandCeil,
			timing: domain.TimingWaitForPullback,
		}
	}
	return &entryDecision{
		min:    price * cfg.DefaultBandFloor,
		max:    price * cfg.DefaultBandCeil,
		timing: domain.TimingAccumulate,
	}
}

// entryTiers is the ordered strategy chain. First applicable tier wins.
var entryTiers = []entryTier{
	vwapTier{},
	pivotTier{},
	rsiTier{},
	bollingerTier{},
	defaultTier{},
}

// CalculateEntry walks the tier chain and applies the volatility band
// adjustment afterward. The default tier guarantees a decision.
func CalculateEntry(price float64, snap *domain.IndicatorSnapshot, cfg domain.ScanConfig) (entryMin, entryMax float64, timing domain.EntryTiming) {
	var dec *entryDecision
	for _, tier := range entryTiers {
		if dec = tier.Evaluate(price, snap, cfg); dec != nil {
			break
		}
	}

	min, max := dec.min, dec.max
	if min > max {
		min, max = max, min
	}
	min, max = adjustBandForVolatility(min, max, snap.ATRPercent, cfg)
	return min, max, dec.timing
}

// adjustBandForVolatility scales the band width about its midpoint: wider
// in volatile names, tighter in quiet ones.
func adjustBandForVolatility(min, max float64, atrPercent *float64, cfg domain.ScanConfig) (float64, float64) {
	if atrPercent == nil {
		return min, max
	}

	mult := 1.0
	switch {
	case *atrPercent > cfg.HighVolATRPct:
		mult = cfg.HighVolMultiplier
	case *atrPercent < cfg.LowVolATRPct:
		mult = cfg.LowVolMultiplier
	}
	if mult == 1.0 {
		return min, max
	}

	mid := (min + max) / 2
	half := (max - min) / 2 * mult
	return mid - half, mid + half
}
