package usecase

import "github.com/abk234/TradingAgents-sub000/internal/domain"

// Classify maps a priority score plus its dominant signals to one of the
// nine recommendation categories. Pure function: unknown states fall to
// UNKNOWN rather than erroring.
func Classify(score float64, signals []domain.SignalContribution, cfg domain.ScanConfig) domain.Recommendation {
	if len(signals) == 0 {
		// No indicator produced a signal: too little history to judge.
		return domain.RecUnknown
	}

	c := cfg.Cutoffs
	switch {
	case score >= c.StrongBuy:
		return domain.RecStrongBuy
	case score >= c.Buy:
		// An oversold dip with an otherwise strong score is its own
		// category so dip-buyers can filter for it.
		if hasBullishSignal(signals, "rsi_oversold") || hasBullishSignal(signals, "bb_lower_touch") {
			return domain.RecBuyDip
		}
		return domain.RecBuy
	case score >= c.Accumulate:
		return domain.RecAccumulate
	case score >= c.Hold:
		return domain.RecHold
	case score >= c.Wait:
		return domain.RecWait
	case score >= c.Sell:
		return domain.RecSell
	default:
		return domain.RecStrongSell
	}
}

func hasBullishSignal(signals []domain.SignalContribution, name string) bool {
	for _, s := range signals {
		if s.Name == name && s.Direction == domain.DirectionBullish {
			return true
		}
	}
	return false
}
