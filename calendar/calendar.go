package calendar

import (
	"fmt"
	"time"
)

// ID identifies a holiday calendar.
type ID string

const (
	// Weekend treats Saturday and Sunday as the only non-business days.
	Weekend ID = "WEEKEND"
	TARGET  ID = "TARGET"
	US      ID = "US"
	KR      ID = "KR"
)

// Valid reports whether the calendar is a known member of the set.
func (id ID) Valid() bool {
	switch id {
	case Weekend, TARGET, US, KR:
		return true
	default:
		return false
	}
}

// BusDayAdjust selects the rule for shifting a date off a non-business day.
type BusDayAdjust string

const (
	// NoAdjust leaves dates untouched even on weekends and holidays.
	NoAdjust          BusDayAdjust = "NONE"
	Following         BusDayAdjust = "FOLLOWING"
	ModifiedFollowing BusDayAdjust = "MODIFIED_FOLLOWING"
	Preceding         BusDayAdjust = "PRECEDING"
)

// Valid reports whether the adjustment rule is a known member of the set.
func (r BusDayAdjust) Valid() bool {
	switch r {
	case NoAdjust, Following, ModifiedFollowing, Preceding:
		return true
	default:
		return false
	}
}

var targetHolidays = map[string]struct{}{}
var usHolidays = map[string]struct{}{}
var krHolidays = map[string]struct{}{}

func init() {
	targetHolidays = make(map[string]struct{}, len(targetHolidayList))
	for _, h := range targetHolidayList {
		targetHolidays[h] = struct{}{}
	}
	usHolidays = make(map[string]struct{}, len(usHolidayList))
	for _, h := range usHolidayList {
		usHolidays[h] = struct{}{}
	}
	krHolidays = make(map[string]struct{}, len(koreaHolidayList))
	for _, h := range koreaHolidayList {
		krHolidays[h] = struct{}{}
	}
}

func isHoliday(cal ID, t time.Time) bool {
	key := t.Format("2006-01-02")
	switch cal {
	case TARGET:
		_, ok := targetHolidays[key]
		return ok
	case US:
		_, ok := usHolidays[key]
		return ok
	case KR:
		_, ok := krHolidays[key]
		return ok
	default:
		return false
	}
}

// IsBusinessDay checks weekends and holiday sets.
func IsBusinessDay(cal ID, t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !isHoliday(cal, t)
}

// Adjust shifts t per the given business-day adjustment rule.
func Adjust(cal ID, rule BusDayAdjust, t time.Time) (time.Time, error) {
	switch rule {
	case NoAdjust:
		return t, nil
	case Following:
		return adjustFollowing(cal, t), nil
	case ModifiedFollowing:
		return adjustModifiedFollowing(cal, t), nil
	case Preceding:
		return adjustPreceding(cal, t), nil
	default:
		return time.Time{}, fmt.Errorf("Adjust: unknown business day adjust rule %q", rule)
	}
}

func adjustFollowing(cal ID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func adjustPreceding(cal ID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// adjustModifiedFollowing rolls forward unless that crosses a month boundary,
// in which case it rolls backward instead.
func adjustModifiedFollowing(cal ID, t time.Time) time.Time {
	origMonth := t.Month()
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	if t.Month() != origMonth {
		t = t.AddDate(0, 0, -1)
		for !IsBusinessDay(cal, t) {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

// AddBusinessDays advances n business days (n can be negative).
func AddBusinessDays(cal ID, t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(cal, t) {
			n -= step
		}
	}
	return t
}

// LastBusinessDayOfMonth returns the last business day of the month containing t.
func LastBusinessDayOfMonth(cal ID, t time.Time) time.Time {
	// Move to first day of next month
	nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	// Go back one day and find the prior business day
	return AddBusinessDays(cal, nextMonth, -1)
}

// IsEndOfMonth checks if t is the last business day of its month.
func IsEndOfMonth(cal ID, t time.Time) bool {
	return t.Equal(LastBusinessDayOfMonth(cal, t))
}
