package domain

import "time"

// Recommendation is one of nine ordered categories. Lower rank sorts first,
// so every BUY-family result precedes every HOLD/WAIT/SELL result.
type Recommendation string

const (
	RecStrongBuy  Recommendation = "STRONG BUY"
	RecBuyDip     Recommendation = "BUY DIP"
	RecBuy        Recommendation = "BUY"
	RecAccumulate Recommendation = "ACCUMULATE"
	RecHold       Recommendation = "NEUTRAL/HOLD"
	RecWait       Recommendation = "WAIT"
	RecSell       Recommendation = "SELL"
	RecStrongSell Recommendation = "STRONG SELL"
	RecUnknown    Recommendation = "UNKNOWN"
)

var recommendationRanks = map[Recommendation]int{
	RecStrongBuy:  1,
	RecBuyDip:     2,
	RecBuy:        3,
	RecAccumulate: 4,
	RecHold:       5,
	RecWait:       6,
	RecSell:       7,
	RecStrongSell: 8,
	RecUnknown:    9,
}

// Rank returns the fixed sort rank for the category. Unmapped values fall
// to the UNKNOWN rank rather than erroring.
func (r Recommendation) Rank() int {
	if rank, ok := recommendationRanks[r]; ok {
		return rank
	}
	return recommendationRanks[RecUnknown]
}

// SignalDirection labels a contributing signal's bias.
type SignalDirection string

const (
	DirectionBullish SignalDirection = "bullish"
	DirectionBearish SignalDirection = "bearish"
	DirectionNeutral SignalDirection = "neutral"
)

// SignalContribution records one signal's vote inside the priority score.
// Contributions are kept in fixed evaluation order so identical inputs
// serialize identically.
type SignalContribution struct {
	Name      string          `json:"name"`
	Direction SignalDirection `json:"direction"`
	Points    float64         `json:"points"`
}

// ScanResult is the full output for one ticker in one scan run. It is an
// append-only historical snapshot, never mutated after creation.
type ScanResult struct {
	Ticker         string              `json:"ticker"`
	ScanDate       time.Time           `json:"scanDate"`
	Price          float64             `json:"price"`
	Snapshot       IndicatorSnapshot   `json:"snapshot"`
	Params         TradeParameters     `json:"params"`
	PriorityScore  float64             `json:"priorityScore"`
	Recommendation Recommendation      `json:"recommendation"`
	Signals        []SignalContribution `json:"signals,omitempty"`
}

// SkippedTicker records a ticker excluded from a batch and why.
type SkippedTicker struct {
	Ticker string `json:"ticker"`
	Reason string `json:"reason"`
}

// BatchReport is the outcome of one scan run: the ranked results plus the
// tickers that could not be scanned and the records that carry audit flags.
// The batch always completes with a partial, annotated set rather than
// aborting on a bad ticker.
type BatchReport struct {
	ScanDate time.Time       `json:"scanDate"`
	Results  []ScanResult    `json:"results"`
	Skipped  []SkippedTicker `json:"skipped,omitempty"`
	Flagged  []string        `json:"flagged,omitempty"` // tickers with audit flags
}
