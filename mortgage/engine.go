package mortgage

import (
	"fmt"
	"math"

	"github.com/sagayev/mortlib/schedule"
)

// PaymentAmount computes the level payment that fully amortizes principal
// over numPeriods-1 compounding periods at the periodic rate zeroRate/freq.
//
// A zero rate degenerates the closed form to a division by zero, so it is
// special-cased to straight-line repayment of the principal.
func PaymentAmount(principal, zeroRate float64, freq schedule.Frequency, numPeriods int) (float64, error) {
	if err := checkEngineArgs(principal, freq, numPeriods); err != nil {
		return 0, fmt.Errorf("PaymentAmount: %w", err)
	}

	if zeroRate == 0 {
		return principal / float64(numPeriods-1), nil
	}

	f := float64(freq.PerYear())
	p := math.Pow(1.0+zeroRate/f, float64(numPeriods-1))
	return principal * zeroRate * p / (f * (p - 1.0)), nil
}

// Flows generates the interest, principal, remaining-balance and total flows
// for numPeriods schedule dates. Index 0 is the zero-flow start boundary.
//
// Deterministic single pass; the returned FlowVector carries no dates (use
// Mortgage.GenerateFlows for a schedule-aligned result).
func Flows(principal, zeroRate float64, freq schedule.Frequency, mortgageType Type, numPeriods int) (*FlowVector, error) {
	if err := checkEngineArgs(principal, freq, numPeriods); err != nil {
		return nil, fmt.Errorf("Flows: %w", err)
	}

	var payment float64
	switch mortgageType {
	case Repayment:
		m, err := PaymentAmount(principal, zeroRate, freq, numPeriods)
		if err != nil {
			return nil, err
		}
		payment = m
	case InterestOnly, InterestOnlyBullet:
		payment = zeroRate * principal / float64(freq.PerYear())
	default:
		return nil, fmt.Errorf("Flows: %w %q", ErrUnknownMortgageType, mortgageType)
	}

	f := float64(freq.PerYear())
	fv := newFlowVector(mortgageType, principal, numPeriods)
	outstanding := principal

	for i := 1; i < numPeriods; i++ {
		interest := outstanding * zeroRate / f

		var principalFlow, total float64
		switch mortgageType {
		case InterestOnlyBullet:
			if i == numPeriods-1 {
				principalFlow = outstanding
			}
			total = payment + principalFlow
		default:
			principalFlow = payment - interest
			// Summing the components keeps total == interest + principal an
			// exact identity; the value is the level payment.
			total = interest + principalFlow
		}

		outstanding -= principalFlow
		fv.Interest = append(fv.Interest, interest)
		fv.Principal = append(fv.Principal, principalFlow)
		fv.Remaining = append(fv.Remaining, outstanding)
		fv.Total = append(fv.Total, total)
	}

	return fv, nil
}

func checkEngineArgs(principal float64, freq schedule.Frequency, numPeriods int) error {
	if principal <= 0 {
		return fmt.Errorf("principal must be positive, got %g", principal)
	}
	if !freq.Valid() {
		return fmt.Errorf("unknown frequency %d", freq)
	}
	if numPeriods < 2 {
		return fmt.Errorf("need at least 2 schedule dates, got %d", numPeriods)
	}
	return nil
}
