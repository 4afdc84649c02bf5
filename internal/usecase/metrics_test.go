package usecase

import (
	"testing"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

func TestApplyMetrics_GainPercent(t *testing.T) {
	p := domain.TradeParameters{
		EntryMin: 100,
		EntryMax: 102,
		Target:   domain.Float(110),
	}
	ApplyMetrics(&p)

	if p.GainPercent == nil {
		t.Fatal("gain percent not computed")
	}
	if !closeTo(*p.GainPercent, 10.0, 1e-9) {
		t.Errorf("gain = %v, want 10.0", *p.GainPercent)
	}
	if len(p.Flags) != 0 {
		t.Errorf("unexpected flags %v", p.Flags)
	}
}

func TestApplyMetrics_RiskReward(t *testing.T) {
	tests := []struct {
		name     string
		entryMin float64
		stop     float64
		target   float64
		want     float64
	}{
		{"tight stop below wide band", 266.63, 260.00, 272.01, 0.81},
		{"close stop under a far target", 535.21, 529.80, 560.13, 4.61},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.TradeParameters{
				EntryMin: tt.entryMin,
				EntryMax: tt.entryMin,
				Target:   domain.Float(tt.target),
				StopLoss: domain.Float(tt.stop),
			}
			ApplyMetrics(&p)

			if p.RiskReward == nil {
				t.Fatal("risk/reward not computed")
			}
			if !closeTo(*p.RiskReward, tt.want, 0.01) {
				t.Errorf("risk/reward = %v, want ~%v", *p.RiskReward, tt.want)
			}
		})
	}
}

func TestApplyMetrics_NilTargetWithholdsMetrics(t *testing.T) {
	p := domain.TradeParameters{
		EntryMin: 100,
		EntryMax: 102,
		StopLoss: domain.Float(95),
	}
	ApplyMetrics(&p)

	if p.GainPercent != nil || p.RiskReward != nil {
		t.Error("metrics computed without a target")
	}
}

func TestApplyMetrics_NonPositiveRisk(t *testing.T) {
	p := domain.TradeParameters{
		EntryMin: 100,
		EntryMax: 102,
		Target:   domain.Float(110),
		StopLoss: domain.Float(100), // risk == 0
	}
	ApplyMetrics(&p)

	if p.RiskReward != nil {
		t.Errorf("risk/reward = %v for zero risk, want nil", *p.RiskReward)
	}
	if !p.Flagged(domain.FlagNonPositiveRisk) {
		t.Errorf("flags = %v, want %s", p.Flags, domain.FlagNonPositiveRisk)
	}
}

func TestApplyMetrics_EntryAboveTarget(t *testing.T) {
	p := domain.TradeParameters{
		EntryMin: 100,
		EntryMax: 112,
		Target:   domain.Float(110),
	}
	ApplyMetrics(&p)

	if !p.Flagged(domain.FlagEntryAboveTarget) {
		t.Errorf("flags = %v, want %s", p.Flags, domain.FlagEntryAboveTarget)
	}
	if p.GainPercent == nil {
		t.Error("gain percent should still be computed")
	}
}
