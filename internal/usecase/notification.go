package usecase

import (
	"fmt"
	"time"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

// notifyActionable pushes an FCM alert for STRONG BUY and BUY DIP results,
// with a per-ticker cooldown so repeated cycles do not spam devices.
func (s *Scanner) notifyActionable(results []domain.ScanResult) {
	if s.fcmClient == nil || !s.fcmClient.IsEnabled() || s.tokenRepo == nil {
		return
	}
	tokens := s.tokenRepo.Tokens()
	if len(tokens) == 0 {
		return
	}

	now := time.Now()
	for _, r := range results {
		if r.Recommendation != domain.RecStrongBuy && r.Recommendation != domain.RecBuyDip {
			continue
		}

		s.mu.Lock()
		last, seen := s.notified[r.Ticker]
		s.mu.Unlock()
		if seen && now.Sub(last) < s.cooldown {
			continue
		}

		title := fmt.Sprintf("%s: %s", r.Ticker, r.Recommendation)
		body := fmt.Sprintf("Score %.0f | Entry %.2f-%.2f | %s",
			r.PriorityScore, r.Params.EntryMin, r.Params.EntryMax, r.Params.EntryTiming)
		if r.Params.Target != nil && r.Params.StopLoss != nil {
			body += fmt.Sprintf(" | T %.2f / SL %.2f", *r.Params.Target, *r.Params.StopLoss)
		}

		data := map[string]string{
			"ticker":         r.Ticker,
			"score":          fmt.Sprintf("%.1f", r.PriorityScore),
			"recommendation": string(r.Recommendation),
			"entryTiming":    string(r.Params.EntryTiming),
		}

		if err := s.fcmClient.SendMulticast(tokens, title, body, data); err != nil {
			s.logger.Error().Err(err).Str("ticker", r.Ticker).Msg("sending alert")
			continue
		}
		s.logger.Info().Str("ticker", r.Ticker).Int("devices", len(tokens)).Msg("alert sent")

		s.mu.Lock()
		s.notified[r.Ticker] = now
		// Expire stale cooldown entries while we hold the lock.
		for ticker, ts := range s.notified {
			if now.Sub(ts) > s.cooldown*2 {
				delete(s.notified, ticker)
			}
		}
		s.mu.Unlock()
	}
}
