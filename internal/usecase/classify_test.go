package usecase

import (
	"testing"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

func TestClassify_Cutoffs(t *testing.T) {
	cfg := domain.DefaultScanConfig()
	neutral := []domain.SignalContribution{
		{Name: "rsi_neutral", Direction: domain.DirectionNeutral, Points: 0},
	}

	tests := []struct {
		score float64
		want  domain.Recommendation
	}{
		{100, domain.RecStrongBuy},
		{80, domain.RecStrongBuy},
		{79.9, domain.RecBuy},
		{65, domain.RecBuy},
		{64.9, domain.RecAccumulate},
		{55, domain.RecAccumulate},
		{54.9, domain.RecHold},
		{45, domain.RecHold},
		{44.9, domain.RecWait},
		{35, domain.RecWait},
		{34.9, domain.RecSell},
		{25, domain.RecSell},
		{24.9, domain.RecStrongSell},
		{0, domain.RecStrongSell},
	}

	for _, tt := range tests {
		if got := Classify(tt.score, neutral, cfg); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassify_NoSignalsIsUnknown(t *testing.T) {
	cfg := domain.DefaultScanConfig()
	if got := Classify(70, nil, cfg); got != domain.RecUnknown {
		t.Errorf("Classify with no signals = %s, want %s", got, domain.RecUnknown)
	}
}

func TestClassify_BuyDip(t *testing.T) {
	cfg := domain.DefaultScanConfig()

	tests := []struct {
		name    string
		score   float64
		signals []domain.SignalContribution
		want    domain.Recommendation
	}{
		{
			name:  "oversold rsi in the buy band is a dip",
			score: 70,
			signals: []domain.SignalContribution{
				{Name: "rsi_oversold", Direction: domain.DirectionBullish, Points: 12},
			},
			want: domain.RecBuyDip,
		},
		{
			name:  "lower band touch in the buy band is a dip",
			score: 70,
			signals: []domain.SignalContribution{
				{Name: "bb_lower_touch", Direction: domain.DirectionBullish, Points: 8},
			},
			want: domain.RecBuyDip,
		},
		{
			name:  "strong buy outranks the dip label",
			score: 85,
			signals: []domain.SignalContribution{
				{Name: "rsi_oversold", Direction: domain.DirectionBullish, Points: 12},
			},
			want: domain.RecStrongBuy,
		},
		{
			name:  "bearish signal of the same name is not a dip",
			score: 70,
			signals: []domain.SignalContribution{
				{Name: "rsi_overbought", Direction: domain.DirectionBearish, Points: -12},
			},
			want: domain.RecBuy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.score, tt.signals, cfg); got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRecommendationRanks(t *testing.T) {
	order := []domain.Recommendation{
		domain.RecStrongBuy,
		domain.RecBuyDip,
		domain.RecBuy,
		domain.RecAccumulate,
		domain.RecHold,
		domain.RecWait,
		domain.RecSell,
		domain.RecStrongSell,
		domain.RecUnknown,
	}
	for i, rec := range order {
		if rec.Rank() != i+1 {
			t.Errorf("%s rank = %d, want %d", rec, rec.Rank(), i+1)
		}
	}
	if got := domain.Recommendation("BOGUS").Rank(); got != domain.RecUnknown.Rank() {
		t.Errorf("unrecognized recommendation rank = %d, want %d", got, domain.RecUnknown.Rank())
	}
}
