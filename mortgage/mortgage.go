package mortgage

import (
	"fmt"
	"time"

	"github.com/sagayev/mortlib/calendar"
	"github.com/sagayev/mortlib/schedule"
	"github.com/sagayev/mortlib/utils"
)

// Params defines inputs to construct a fixed-principal mortgage.
//
// Zero-valued convention fields fall back to market defaults: monthly
// payments, weekend calendar, following adjustment, backward generation,
// ACT/360 day count.
type Params struct {
	StartDate time.Time
	EndDate   time.Time
	Principal float64

	Frequency    schedule.Frequency
	Calendar     calendar.ID
	BusDayAdjust calendar.BusDayAdjust
	DateGenRule  schedule.GenRule
	DayCount     utils.DayCount
}

// Mortgage is a fixed-principal loan paired with its generated payment
// schedule. Immutable once built; flows for any rate and mortgage type are
// derived from it without mutation.
type Mortgage struct {
	StartDate time.Time
	EndDate   time.Time
	Principal float64

	Frequency    schedule.Frequency
	Calendar     calendar.ID
	BusDayAdjust calendar.BusDayAdjust
	DateGenRule  schedule.GenRule
	DayCount     utils.DayCount

	// Schedule holds the adjusted payment dates, strictly increasing,
	// starting at the (adjusted) start boundary.
	Schedule []time.Time
}

// New validates the loan parameters and generates the payment schedule.
func New(p Params) (*Mortgage, error) {
	if p.StartDate.IsZero() {
		return nil, fmt.Errorf("New: StartDate is required")
	}
	if p.EndDate.IsZero() {
		return nil, fmt.Errorf("New: EndDate is required")
	}
	if p.EndDate.Before(p.StartDate) {
		return nil, fmt.Errorf("New: start date %s after end date %s",
			p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
	}
	if p.Principal <= 0 {
		return nil, fmt.Errorf("New: principal must be positive, got %g", p.Principal)
	}

	if p.Frequency == 0 {
		p.Frequency = schedule.Monthly
	}
	if p.Calendar == "" {
		p.Calendar = calendar.Weekend
	}
	if p.BusDayAdjust == "" {
		p.BusDayAdjust = calendar.Following
	}
	if p.DateGenRule == "" {
		p.DateGenRule = schedule.Backward
	}
	if p.DayCount == "" {
		p.DayCount = utils.Act360
	}

	if !p.Frequency.Valid() {
		return nil, fmt.Errorf("New: unknown frequency %d", p.Frequency)
	}
	if !p.Calendar.Valid() {
		return nil, fmt.Errorf("New: unknown calendar %q", p.Calendar)
	}
	if !p.BusDayAdjust.Valid() {
		return nil, fmt.Errorf("New: unknown business day adjust rule %q", p.BusDayAdjust)
	}
	if !p.DateGenRule.Valid() {
		return nil, fmt.Errorf("New: unknown date generation rule %q", p.DateGenRule)
	}
	if !p.DayCount.Valid() {
		return nil, fmt.Errorf("New: unknown day count convention %q", p.DayCount)
	}

	dates, err := schedule.Generate(p.StartDate, p.EndDate, p.Frequency, p.Calendar, p.BusDayAdjust, p.DateGenRule)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Mortgage{
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		Principal:    p.Principal,
		Frequency:    p.Frequency,
		Calendar:     p.Calendar,
		BusDayAdjust: p.BusDayAdjust,
		DateGenRule:  p.DateGenRule,
		DayCount:     p.DayCount,
		Schedule:     dates,
	}, nil
}

// RepaymentAmount determines the level payment per period at the given
// annual zero rate.
func (m *Mortgage) RepaymentAmount(zeroRate float64) (float64, error) {
	return PaymentAmount(m.Principal, zeroRate, m.Frequency, len(m.Schedule))
}

// GenerateFlows derives the full flow vector for the given rate and mortgage
// type. The mortgage itself is never mutated, so flows can be regenerated for
// different rates, and concurrently across loans.
//
// A zero-duration loan (start equal to end, single schedule date) yields the
// length-1 vector holding only the seeded boundary row.
func (m *Mortgage) GenerateFlows(zeroRate float64, mortgageType Type) (*FlowVector, error) {
	if !mortgageType.Valid() {
		return nil, fmt.Errorf("GenerateFlows: %w %q", ErrUnknownMortgageType, mortgageType)
	}

	if len(m.Schedule) == 1 {
		fv := newFlowVector(mortgageType, m.Principal, 1)
		fv.Dates = m.Schedule
		return fv, nil
	}

	fv, err := Flows(m.Principal, zeroRate, m.Frequency, mortgageType, len(m.Schedule))
	if err != nil {
		return nil, err
	}
	fv.Dates = m.Schedule
	return fv, nil
}
