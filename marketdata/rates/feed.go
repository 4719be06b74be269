package rates

import "time"

// Feed supplies annual zero rates (decimal, e.g. 0.05 == 5%) keyed by quote date.
type Feed interface {
	ZeroRateOn(date time.Time) (float64, bool)
}

// MapFeed is a static map-backed implementation for development/testing.
// Keys are YYYY-MM-DD.
type MapFeed struct {
	rates map[string]float64
}

func NewMapFeed(rates map[string]float64) *MapFeed {
	return &MapFeed{rates: rates}
}

func (m *MapFeed) ZeroRateOn(date time.Time) (float64, bool) {
	val, ok := m.rates[date.Format("2006-01-02")]
	return val, ok
}
