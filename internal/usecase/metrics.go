package usecase

import "github.com/abk234/TradingAgents-sub000/internal/domain"

// ApplyMetrics fills gain percent and risk/reward on the parameters.
// Both are nullable: a metric is withheld, and the record flagged where
// that hides a broken invariant, rather than dividing by a bad risk.
func ApplyMetrics(p *domain.TradeParameters) {
	if p.Target != nil && p.EntryMin > 0 {
		gain := (*p.Target - p.EntryMin) / p.EntryMin * 100
		p.GainPercent = domain.Float(gain)

		if p.EntryMax > *p.Target {
			p.AddFlag(domain.FlagEntryAboveTarget)
		}
	}

	if p.Target != nil && p.StopLoss != nil {
		risk := p.EntryMin - *p.StopLoss
		reward := *p.Target - p.EntryMin
		if risk > 0 {
			p.RiskReward = domain.Float(reward / risk)
		} else {
			p.AddFlag(domain.FlagNonPositiveRisk)
		}
	}
}
