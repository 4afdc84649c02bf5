package domain

import (
	"errors"
	"fmt"
)

// ErrInsufficientData marks a history too short for a computation. It is
// non-fatal: indicator fields become nil and tiers fall through.
var ErrInsufficientData = errors.New("insufficient price history")

// InvalidPriceDataError marks a malformed bar sequence. Fatal for that
// ticker only; the ticker is excluded from the batch and the reason logged.
type InvalidPriceDataError struct {
	Ticker string
	Index  int
	Reason string
}

func (e *InvalidPriceDataError) Error() string {
	return fmt.Sprintf("invalid price data for %s at bar %d: %s", e.Ticker, e.Index, e.Reason)
}

// OutcomeResolutionError marks missing later bars during outcome
// resolution. The outcome stays STILL_WAITING and is retried next run.
type OutcomeResolutionError struct {
	OutcomeID string
	Ticker    string
	Reason    string
}

func (e *OutcomeResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve outcome %s (%s): %s", e.OutcomeID, e.Ticker, e.Reason)
}
