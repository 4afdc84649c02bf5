package domain

import "time"

// PivotLevels are classic floor-trader pivots derived from the previous
// bar's high/low/close.
type PivotLevels struct {
	PP float64 `json:"pp"`
	R1 float64 `json:"r1"`
	R2 float64 `json:"r2"`
	S1 float64 `json:"s1"`
	S2 float64 `json:"s2"`
}

// FibLevels are Fibonacci retracement levels of the most recent swing
// within the configured lookback window.
type FibLevels struct {
	SwingHigh float64 `json:"swingHigh"`
	SwingLow  float64 `json:"swingLow"`
	L236      float64 `json:"l236"`
	L382      float64 `json:"l382"`
	L500      float64 `json:"l500"`
	L618      float64 `json:"l618"`
	L786      float64 `json:"l786"`
}

// IndicatorSnapshot holds every computed indicator for one ticker as of one
// date. Each field is independently nullable: nil means the price history
// was too short for that indicator, never an error.
type IndicatorSnapshot struct {
	Ticker string    `json:"ticker"`
	Date   time.Time `json:"date"`

	RSI        *float64 `json:"rsi,omitempty"`
	MACD       *float64 `json:"macd,omitempty"`
	MACDSignal *float64 `json:"macdSignal,omitempty"`
	MACDHist   *float64 `json:"macdHistogram,omitempty"`

	BBUpper  *float64 `json:"bbUpper,omitempty"`
	BBMiddle *float64 `json:"bbMiddle,omitempty"`
	BBLower  *float64 `json:"bbLower,omitempty"`

	SMA20  *float64 `json:"sma20,omitempty"`
	SMA50  *float64 `json:"sma50,omitempty"`
	SMA200 *float64 `json:"sma200,omitempty"`

	VWAP       *float64 `json:"vwap,omitempty"`
	ATR        *float64 `json:"atr,omitempty"`
	ATRPercent *float64 `json:"atrPercent,omitempty"`

	Pivot *PivotLevels `json:"pivot,omitempty"`
	Fib   *FibLevels   `json:"fib,omitempty"`

	VolumeRatio *float64 `json:"volumeRatio,omitempty"`
}

// Float returns a pointer to v. Snapshot fields are pointer-typed so that
// "insufficient history" is a typed absence.
func Float(v float64) *float64 { return &v }
