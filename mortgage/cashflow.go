package mortgage

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Cashflow is a single dated schedule row with amounts rounded to cents,
// suitable for booking systems and machine output.
type Cashflow struct {
	Date        time.Time       `json:"date"`
	Interest    decimal.Decimal `json:"interest"`
	Principal   decimal.Decimal `json:"principal"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Total       decimal.Decimal `json:"total"`
}

// Cashflows converts the flow vector to cent-precision rows using banker's
// rounding. The vector must carry schedule dates, i.e. come from
// Mortgage.GenerateFlows.
func (fv *FlowVector) Cashflows() ([]Cashflow, error) {
	if len(fv.Dates) != fv.Len() {
		return nil, fmt.Errorf("Cashflows: flow vector carries %d dates for %d rows", len(fv.Dates), fv.Len())
	}

	rows := make([]Cashflow, 0, fv.Len())
	for i := 0; i < fv.Len(); i++ {
		rows = append(rows, Cashflow{
			Date:        fv.Dates[i],
			Interest:    decimal.NewFromFloat(fv.Interest[i]).RoundBank(2),
			Principal:   decimal.NewFromFloat(fv.Principal[i]).RoundBank(2),
			Outstanding: decimal.NewFromFloat(fv.Remaining[i]).RoundBank(2),
			Total:       decimal.NewFromFloat(fv.Total[i]).RoundBank(2),
		})
	}
	return rows, nil
}
