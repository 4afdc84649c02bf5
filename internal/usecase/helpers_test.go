package usecase

import (
	"math"
	"time"

	"github.com/abk234/TradingAgents-sub000/internal/domain"
)

var day0 = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

// makeBars builds n chronological daily bars around a gently rising close.
func makeBars(n int, base float64) []domain.PriceBar {
	bars := make([]domain.PriceBar, n)
	for i := 0; i < n; i++ {
		c := base + float64(i)*0.1 + 0.5*math.Sin(float64(i)/3)
		bars[i] = domain.PriceBar{
			Date:   day0.AddDate(0, 0, i),
			Open:   c - 0.2,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: 1000 + float64(i%7)*50,
		}
	}
	return bars
}

func closeTo(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
