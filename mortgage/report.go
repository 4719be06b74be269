package mortgage

import (
	"fmt"
	"strings"
)

// Table renders the mortgage terms and its flows as a fixed-width text
// table: one row per schedule date with interest, principal, outstanding
// balance and total columns at 2-decimal precision.
func Table(m *Mortgage, fv *FlowVector) (string, error) {
	if fv.Len() != len(m.Schedule) {
		return "", fmt.Errorf("Table: flow vector has %d rows, schedule has %d dates", fv.Len(), len(m.Schedule))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "START DATE: %s\n", m.StartDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "MATURITY DATE: %s\n", m.EndDate.Format("2006-01-02"))
	fmt.Fprintf(&b, "MORTGAGE TYPE: %s\n", fv.Type)
	fmt.Fprintf(&b, "FREQUENCY: %d\n", m.Frequency.PerYear())
	fmt.Fprintf(&b, "CALENDAR: %s\n", m.Calendar)
	fmt.Fprintf(&b, "BUSDAYRULE: %s\n", m.BusDayAdjust)
	fmt.Fprintf(&b, "DATEGENRULE: %s\n", m.DateGenRule)
	b.WriteString("\n")

	fmt.Fprintf(&b, "%15s %12s %12s %12s %12s\n",
		"PAYMENT DATE", "INTEREST", "PRINCIPAL", "OUTSTANDING", "TOTAL")
	for i := 0; i < fv.Len(); i++ {
		fmt.Fprintf(&b, "%15s %12.2f %12.2f %12.2f %12.2f\n",
			m.Schedule[i].Format("2006-01-02"),
			fv.Interest[i],
			fv.Principal[i],
			fv.Remaining[i],
			fv.Total[i])
	}
	return b.String(), nil
}
