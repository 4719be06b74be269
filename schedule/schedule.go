package schedule

import (
	"fmt"
	"time"

	"github.com/sagayev/mortlib/calendar"
	"github.com/sagayev/mortlib/utils"
)

// Frequency enumerates payment frequencies as periods per year.
type Frequency int

const (
	Annual     Frequency = 1
	SemiAnnual Frequency = 2
	Quarterly  Frequency = 4
	Monthly    Frequency = 12
)

// Valid reports whether the frequency is a known member of the set.
func (f Frequency) Valid() bool {
	switch f {
	case Annual, SemiAnnual, Quarterly, Monthly:
		return true
	default:
		return false
	}
}

// PerYear returns the number of compounding periods per year.
func (f Frequency) PerYear() int {
	return int(f)
}

// MonthsPerPeriod returns the calendar months spanned by one period.
func (f Frequency) MonthsPerPeriod() int {
	return 12 / int(f)
}

// GenRule selects the direction payment dates are rolled out from.
type GenRule string

const (
	// Forward rolls periods out from the start date; a short stub lands at maturity.
	Forward GenRule = "FORWARD"
	// Backward rolls periods back from maturity; a short stub lands at the start.
	Backward GenRule = "BACKWARD"
)

// Valid reports whether the generation rule is a known member of the set.
func (r GenRule) Valid() bool {
	switch r {
	case Forward, Backward:
		return true
	default:
		return false
	}
}

// Generate produces the adjusted payment dates between start and end inclusive.
//
// The result is strictly increasing. The first element is the (adjusted) start
// boundary, where no payment occurs; the last is the adjusted maturity. When
// start equals end the schedule has a single date.
func Generate(start, end time.Time, freq Frequency, cal calendar.ID, adjust calendar.BusDayAdjust, rule GenRule) ([]time.Time, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("Generate: end %s before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if !freq.Valid() {
		return nil, fmt.Errorf("Generate: unknown frequency %d", freq)
	}
	if !cal.Valid() {
		return nil, fmt.Errorf("Generate: unknown calendar %q", cal)
	}
	if !adjust.Valid() {
		return nil, fmt.Errorf("Generate: unknown business day adjust rule %q", adjust)
	}
	if !rule.Valid() {
		return nil, fmt.Errorf("Generate: unknown date generation rule %q", rule)
	}

	var unadjusted []time.Time
	if rule == Backward {
		unadjusted = rollBackward(start, end, freq.MonthsPerPeriod())
	} else {
		unadjusted = rollForward(start, end, freq.MonthsPerPeriod())
	}

	dates := make([]time.Time, 0, len(unadjusted))
	for _, d := range unadjusted {
		adj, err := calendar.Adjust(cal, adjust, d)
		if err != nil {
			return nil, err
		}
		// Adjustment can collapse neighbouring dates onto the same business day.
		if n := len(dates); n > 0 && !dates[n-1].Before(adj) {
			continue
		}
		dates = append(dates, adj)
	}
	return dates, nil
}

// rollForward steps whole periods out from start; maturity closes the
// sequence even when the final period is short.
func rollForward(start, end time.Time, months int) []time.Time {
	dates := []time.Time{start}
	for i := 1; ; i++ {
		next := utils.AddMonth(start, i*months)
		if next.After(end) {
			break
		}
		dates = append(dates, next)
	}
	if last := dates[len(dates)-1]; last.Before(end) {
		dates = append(dates, end)
	}
	return dates
}

// rollBackward steps whole periods back from maturity; the start boundary
// opens the sequence even when the first period is short.
func rollBackward(start, end time.Time, months int) []time.Time {
	var reversed []time.Time
	for i := 0; ; i++ {
		prev := utils.AddMonth(end, -i*months)
		if prev.Before(start) {
			break
		}
		reversed = append(reversed, prev)
	}
	dates := make([]time.Time, 0, len(reversed)+1)
	if n := len(reversed); n == 0 || reversed[n-1].After(start) {
		dates = append(dates, start)
	}
	for i := len(reversed) - 1; i >= 0; i-- {
		dates = append(dates, reversed[i])
	}
	return dates
}
