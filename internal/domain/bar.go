package domain

import "time"

// PriceBar is a single OHLCV candle. Bars for a ticker are ordered oldest
// to newest; insertion order is chronological order.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// ValidateBars checks a bar sequence for the malformations that disqualify
// a ticker from scanning: out-of-order dates and non-positive prices.
// Insufficient length is not an error here; individual indicators handle
// their own minimum history.
func ValidateBars(ticker string, bars []PriceBar) error {
	if len(bars) == 0 {
		return &InvalidPriceDataError{Ticker: ticker, Reason: "empty price history"}
	}
	for i, b := range bars {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return &InvalidPriceDataError{Ticker: ticker, Index: i, Reason: "non-positive price"}
		}
		if b.High < b.Low {
			return &InvalidPriceDataError{Ticker: ticker, Index: i, Reason: "high below low"}
		}
		if i > 0 && !bars[i-1].Date.Before(b.Date) {
			return &InvalidPriceDataError{Ticker: ticker, Index: i, Reason: "non-chronological dates"}
		}
	}
	return nil
}
