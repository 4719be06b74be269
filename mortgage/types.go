package mortgage

import "errors"

// ErrUnknownMortgageType is returned when flow generation receives a
// mortgage type outside the defined variant set.
var ErrUnknownMortgageType = errors.New("unknown mortgage type")

// Type distinguishes the payment-formula variants.
type Type string

const (
	// Repayment amortizes the principal with a level total payment.
	Repayment Type = "REPAYMENT"

	// InterestOnly pays the level interest amount each period. The flows run
	// through the same recurrence as Repayment, so the principal column stays
	// flat and no terminal principal flow is emitted.
	InterestOnly Type = "INTEREST_ONLY"

	// InterestOnlyBullet is InterestOnly with the principal repaid as a single
	// bullet flow at maturity, bringing the outstanding balance to zero.
	InterestOnlyBullet Type = "INTEREST_ONLY_BULLET"
)

// Valid reports whether the mortgage type is a known member of the set.
func (t Type) Valid() bool {
	switch t {
	case Repayment, InterestOnly, InterestOnlyBullet:
		return true
	default:
		return false
	}
}
