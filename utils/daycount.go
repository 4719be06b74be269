package utils

import "time"

// DayCount enumerates supported day count conventions.
type DayCount string

const (
	Act360     DayCount = "ACT/360"
	Act365F    DayCount = "ACT/365F"
	Thirty360  DayCount = "30/360"
	ThirtyE360 DayCount = "30E/360"
)

// Valid reports whether the convention is a known member of the set.
func (dc DayCount) Valid() bool {
	switch dc {
	case Act360, Act365F, Thirty360, ThirtyE360:
		return true
	default:
		return false
	}
}

// YearFraction computes the accrual fraction between two dates under dc.
func (dc DayCount) YearFraction(start, end time.Time) float64 {
	switch dc {
	case Act360:
		return Days(start, end) / 360.0
	case Thirty360, ThirtyE360:
		// 30E/360 ISDA (Eurobond basis): D1 and D2 are capped at 30.
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0
	default:
		return Days(start, end) / 365.0
	}
}
