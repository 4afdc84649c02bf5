package domain

// EntryTiming classifies how aggressively to enter a position.
type EntryTiming string

const (
	TimingBuyNow          EntryTiming = "BUY_NOW"
	TimingAccumulate      EntryTiming = "ACCUMULATE"
	TimingWaitForPullback EntryTiming = "WAIT_FOR_PULLBACK"
)

// Audit flags attached to a result when an invariant had to be repaired.
// Flagged records are reported alongside the ranked list, never hidden.
const (
	FlagCalcInconsistency = "calc_inconsistency" // non-fallback stop >= entry, fallback substituted
	FlagEntryAboveTarget  = "entry_above_target" // entry_max > target anomaly
	FlagNonPositiveRisk   = "non_positive_risk"  // risk <= 0, ratio withheld
)

// TradeParameters are the actionable numbers for one scan result.
// Intended ordering when all fields are populated:
// stop_loss < entry_min <= entry_max < target.
type TradeParameters struct {
	EntryMin    float64     `json:"entryMin"`
	EntryMax    float64     `json:"entryMax"`
	EntryTiming EntryTiming `json:"entryTiming"`
	Target      *float64    `json:"target,omitempty"`
	StopLoss    *float64    `json:"stopLoss,omitempty"`
	GainPercent *float64    `json:"gainPercent,omitempty"`
	RiskReward  *float64    `json:"riskReward,omitempty"`
	Flags       []string    `json:"flags,omitempty"`
}

// Flagged reports whether the given audit flag is set.
func (p *TradeParameters) Flagged(flag string) bool {
	for _, f := range p.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// AddFlag appends an audit flag once.
func (p *TradeParameters) AddFlag(flag string) {
	if !p.Flagged(flag) {
		p.Flags = append(p.Flags, flag)
	}
}
