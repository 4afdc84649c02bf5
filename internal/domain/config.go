package domain

// ScoringWeights bounds each signal's contribution to the priority score.
// The scorer starts from a neutral baseline and adds or subtracts each
// weight depending on the signal's direction, then clamps to [0,100].
type ScoringWeights struct {
	Baseline      float64 `yaml:"baseline" json:"baseline"`
	RSIOversold   float64 `yaml:"rsi_oversold" json:"rsiOversold"`
	RSIOverbought float64 `yaml:"rsi_overbought" json:"rsiOverbought"`
	MACDCross     float64 `yaml:"macd_cross" json:"macdCross"`
	MAAlignment   float64 `yaml:"ma_alignment" json:"maAlignment"`
	VWAPDistance  float64 `yaml:"vwap_distance" json:"vwapDistance"`
	BBPosition    float64 `yaml:"bb_position" json:"bbPosition"`
	PivotZone     float64 `yaml:"pivot_zone" json:"pivotZone"`
	VolumeConfirm float64 `yaml:"volume_confirm" json:"volumeConfirm"`
}

// ClassifierCutoffs are the score thresholds between recommendation
// categories, evaluated highest first.
type ClassifierCutoffs struct {
	StrongBuy  float64 `yaml:"strong_buy" json:"strongBuy"`
	Buy        float64 `yaml:"buy" json:"buy"`
	Accumulate float64 `yaml:"accumulate" json:"accumulate"`
	Hold       float64 `yaml:"hold" json:"hold"`
	Wait       float64 `yaml:"wait" json:"wait"`
	Sell       float64 `yaml:"sell" json:"sell"`
}

// ScanConfig is the full configuration surface of the engine. All the
// thresholds referenced by the calculators are defaults here, not
// hard-coded constants; it is passed explicitly, never read from globals.
type ScanConfig struct {
	// Indicator periods.
	RSIPeriod       int `yaml:"rsi_period" json:"rsiPeriod"`
	MACDFast        int `yaml:"macd_fast" json:"macdFast"`
	MACDSlow        int `yaml:"macd_slow" json:"macdSlow"`
	MACDSignal      int `yaml:"macd_signal" json:"macdSignal"`
	BBPeriod        int `yaml:"bb_period" json:"bbPeriod"`
	ATRPeriod       int `yaml:"atr_period" json:"atrPeriod"`
	VWAPWindow      int `yaml:"vwap_window" json:"vwapWindow"`
	FibLookback     int `yaml:"fib_lookback" json:"fibLookback"`
	VolumeAvgPeriod int `yaml:"volume_avg_period" json:"volumeAvgPeriod"`

	BBMultiplier float64 `yaml:"bb_multiplier" json:"bbMultiplier"`

	// Entry tier thresholds.
	VWAPDiscount   float64 `yaml:"vwap_discount" json:"vwapDiscount"`     // tier 1 trigger: price < vwap * discount
	VWAPBandFloor  float64 `yaml:"vwap_band_floor" json:"vwapBandFloor"`  // band floor: price * floor
	VWAPBandCeil   float64 `yaml:"vwap_band_ceil" json:"vwapBandCeil"`    // band ceiling: vwap * ceil
	RSIOversold    float64 `yaml:"rsi_oversold" json:"rsiOversold"`
	RSIOverbought  float64 `yaml:"rsi_overbought" json:"rsiOverbought"`
	BBProximityPct float64 `yaml:"bb_proximity_pct" json:"bbProximityPct"` // "within N%" of bb_lower

	// Tier band construction. Floors/ceilings multiply the tier's anchor:
	// current price for the rsi, default, and pullback bands, S1 for the
	// pivot band.
	RSIBandFloor      float64 `yaml:"rsi_band_floor" json:"rsiBandFloor"`
	RSIBandCeil       float64 `yaml:"rsi_band_ceil" json:"rsiBandCeil"`
	PivotBandFloor    float64 `yaml:"pivot_band_floor" json:"pivotBandFloor"`
	PivotBandCeil     float64 `yaml:"pivot_band_ceil" json:"pivotBandCeil"`
	DefaultBandFloor  float64 `yaml:"default_band_floor" json:"defaultBandFloor"`
	DefaultBandCeil   float64 `yaml:"default_band_ceil" json:"defaultBandCeil"`
	PullbackBandFloor float64 `yaml:"pullback_band_floor" json:"pullbackBandFloor"`
	PullbackBandCeil  float64 `yaml:"pullback_band_ceil" json:"pullbackBandCeil"`

	// Volatility band scaling by ATR percent.
	HighVolATRPct     float64 `yaml:"high_vol_atr_pct" json:"highVolATRPct"`
	LowVolATRPct      float64 `yaml:"low_vol_atr_pct" json:"lowVolATRPct"`
	HighVolMultiplier float64 `yaml:"high_vol_multiplier" json:"highVolMultiplier"`
	LowVolMultiplier  float64 `yaml:"low_vol_multiplier" json:"lowVolMultiplier"`

	// Target/stop fallbacks.
	TargetFallbackPct float64 `yaml:"target_fallback_pct" json:"targetFallbackPct"` // target = price * pct
	StopSupportPct    float64 `yaml:"stop_support_pct" json:"stopSupportPct"`       // stop = support * pct
	StopFallbackPct   float64 `yaml:"stop_fallback_pct" json:"stopFallbackPct"`     // stop = entry_min * pct

	Weights ScoringWeights    `yaml:"weights" json:"weights"`
	Cutoffs ClassifierCutoffs `yaml:"cutoffs" json:"cutoffs"`

	// Outcome resolution horizon, in bars after the scan date.
	OutcomeHorizonDays int `yaml:"outcome_horizon_days" json:"outcomeHorizonDays"`
}

// DefaultScanConfig returns the documented defaults.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		RSIPeriod:       14,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
		BBPeriod:        20,
		ATRPeriod:       14,
		VWAPWindow:      20,
		FibLookback:     60,
		VolumeAvgPeriod: 20,

		BBMultiplier: 2.0,

		VWAPDiscount:   0.995,
		VWAPBandFloor:  0.99,
		VWAPBandCeil:   0.998,
		RSIOversold:    30,
		RSIOverbought:  70,
		BBProximityPct: 2.0,

		RSIBandFloor:      0.97,
		RSIBandCeil:       1.00,
		PivotBandFloor:    0.99,
		PivotBandCeil:     1.01,
		DefaultBandFloor:  0.98,
		DefaultBandCeil:   1.02,
		PullbackBandFloor: 0.95,
		PullbackBandCeil:  0.98,

		HighVolATRPct:     3.0,
		LowVolATRPct:      1.0,
		HighVolMultiplier: 1.5,
		LowVolMultiplier:  0.6,

		TargetFallbackPct: 1.05,
		StopSupportPct:    0.98,
		StopFallbackPct:   0.95,

		Weights: ScoringWeights{
			Baseline:      50,
			RSIOversold:   12,
			RSIOverbought: 12,
			MACDCross:     10,
			MAAlignment:   10,
			VWAPDistance:  8,
			BBPosition:    8,
			PivotZone:     6,
			VolumeConfirm: 6,
		},
		Cutoffs: ClassifierCutoffs{
			StrongBuy:  80,
			Buy:        65,
			Accumulate: 55,
			Hold:       45,
			Wait:       35,
			Sell:       25,
		},

		OutcomeHorizonDays: 20,
	}
}
