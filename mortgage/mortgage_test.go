package mortgage_test

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/sagayev/mortlib/calendar"
	"github.com/sagayev/mortlib/mortgage"
	"github.com/sagayev/mortlib/schedule"
)

func oneYearMonthly(t *testing.T, principal float64) *mortgage.Mortgage {
	t.Helper()
	m, err := mortgage.New(mortgage.Params{
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Principal:    principal,
		Frequency:    schedule.Monthly,
		Calendar:     calendar.Weekend,
		BusDayAdjust: calendar.Following,
		DateGenRule:  schedule.Backward,
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return m
}

func TestRepaymentAmount_OneYearMonthly(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	if got := len(m.Schedule); got != 13 {
		t.Fatalf("expected 13 schedule dates, got %d", got)
	}

	payment, err := m.RepaymentAmount(0.05)
	if err != nil {
		t.Fatalf("RepaymentAmount error: %v", err)
	}
	// 120000 at 5% over 12 monthly periods.
	if math.Abs(payment-10272.90) > 0.01 {
		t.Fatalf("payment mismatch: got %.4f want 10272.90", payment)
	}
}

func TestRepaymentAmount_Pure(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	first, err := m.RepaymentAmount(0.05)
	if err != nil {
		t.Fatalf("RepaymentAmount error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := m.RepaymentAmount(0.05)
		if err != nil {
			t.Fatalf("RepaymentAmount error: %v", err)
		}
		if again != first {
			t.Fatalf("repeated call differs: %.12f vs %.12f", again, first)
		}
	}
}

func TestPaymentAmount_ZeroRate(t *testing.T) {
	t.Parallel()

	payment, err := mortgage.PaymentAmount(120000, 0, schedule.Monthly, 13)
	if err != nil {
		t.Fatalf("PaymentAmount error: %v", err)
	}
	if payment != 10000 {
		t.Fatalf("zero-rate payment mismatch: got %.6f want 10000", payment)
	}
}

func TestPaymentAmount_InvalidArgs(t *testing.T) {
	t.Parallel()

	if _, err := mortgage.PaymentAmount(120000, 0.05, schedule.Monthly, 1); err == nil {
		t.Fatal("expected error for numPeriods < 2")
	}
	if _, err := mortgage.PaymentAmount(0, 0.05, schedule.Monthly, 13); err == nil {
		t.Fatal("expected error for non-positive principal")
	}
	if _, err := mortgage.PaymentAmount(120000, 0.05, schedule.Frequency(-3), 13); err == nil {
		t.Fatal("expected error for invalid frequency")
	}
}

func TestGenerateFlows_RepaymentAmortizesToZero(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	fv, err := m.GenerateFlows(0.05, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	if fv.Len() != 13 {
		t.Fatalf("expected 13 rows, got %d", fv.Len())
	}
	if fv.Remaining[0] != 120000 {
		t.Fatalf("Remaining[0] mismatch: got %.2f", fv.Remaining[0])
	}
	if fv.Interest[0] != 0 || fv.Principal[0] != 0 || fv.Total[0] != 0 {
		t.Fatal("start boundary row must be all zero")
	}

	final := fv.Remaining[fv.Len()-1]
	if math.Abs(final) > 1e-4 {
		t.Fatalf("principal not fully repaid: final balance %.8f", final)
	}
}

func TestGenerateFlows_TotalIsInterestPlusPrincipal(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 250000)
	fv, err := m.GenerateFlows(0.037, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	for i := 0; i < fv.Len(); i++ {
		if fv.Total[i] != fv.Interest[i]+fv.Principal[i] {
			t.Fatalf("row %d: total %.12f != interest+principal %.12f",
				i, fv.Total[i], fv.Interest[i]+fv.Principal[i])
		}
	}
	for i := 1; i < fv.Len()-1; i++ {
		if math.Abs(fv.Total[i]-fv.Total[i+1]) > 1e-8 {
			t.Fatalf("payment not level: row %d %.10f vs row %d %.10f",
				i, fv.Total[i], i+1, fv.Total[i+1])
		}
	}
}

func TestGenerateFlows_ZeroRate(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	fv, err := m.GenerateFlows(0, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	for i := 1; i < fv.Len(); i++ {
		if fv.Interest[i] != 0 {
			t.Fatalf("row %d: expected zero interest, got %.6f", i, fv.Interest[i])
		}
		if fv.Principal[i] != 10000 {
			t.Fatalf("row %d: expected principal flow 10000, got %.6f", i, fv.Principal[i])
		}
	}
	if last := fv.Remaining[fv.Len()-1]; last != 0 {
		t.Fatalf("expected exact zero balance, got %.10f", last)
	}
}

func TestGenerateFlows_InterestOnly(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	fv, err := m.GenerateFlows(0.05, mortgage.InterestOnly)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	want := 0.05 * 120000 / 12
	for i := 1; i < fv.Len(); i++ {
		if fv.Interest[i] != want {
			t.Fatalf("row %d: interest %.6f want %.6f", i, fv.Interest[i], want)
		}
		if fv.Principal[i] != 0 {
			t.Fatalf("row %d: expected flat principal, got flow %.10f", i, fv.Principal[i])
		}
		if fv.Remaining[i] != 120000 {
			t.Fatalf("row %d: balance moved to %.10f", i, fv.Remaining[i])
		}
	}
}

func TestGenerateFlows_InterestOnlyBullet(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	fv, err := m.GenerateFlows(0.05, mortgage.InterestOnlyBullet)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	last := fv.Len() - 1
	for i := 1; i < last; i++ {
		if fv.Principal[i] != 0 {
			t.Fatalf("row %d: expected no principal before maturity, got %.6f", i, fv.Principal[i])
		}
	}
	if fv.Principal[last] != 120000 {
		t.Fatalf("bullet mismatch: got %.6f want 120000", fv.Principal[last])
	}
	if fv.Remaining[last] != 0 {
		t.Fatalf("expected zero balance after bullet, got %.10f", fv.Remaining[last])
	}
	wantTotal := 0.05*120000/12 + 120000
	if fv.Total[last] != wantTotal {
		t.Fatalf("final total mismatch: got %.6f want %.6f", fv.Total[last], wantTotal)
	}
}

func TestGenerateFlows_UnknownType(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	fv, err := m.GenerateFlows(0.05, mortgage.Type("BALLOON"))
	if err == nil {
		t.Fatal("expected error for unknown mortgage type")
	}
	if !errors.Is(err, mortgage.ErrUnknownMortgageType) {
		t.Fatalf("expected ErrUnknownMortgageType, got %v", err)
	}
	if fv != nil {
		t.Fatal("no flow vector must be produced on error")
	}
}

func TestFlows_TooFewPeriods(t *testing.T) {
	t.Parallel()

	if _, err := mortgage.Flows(120000, 0.05, schedule.Monthly, mortgage.Repayment, 1); err == nil {
		t.Fatal("expected error for a single-period flow request")
	}
}

func TestGenerateFlows_RecomputeDifferentRate(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	lo, err := m.GenerateFlows(0.03, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	hi, err := m.GenerateFlows(0.08, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	if lo.Total[1] >= hi.Total[1] {
		t.Fatalf("higher rate must raise the payment: %.4f vs %.4f", lo.Total[1], hi.Total[1])
	}
	if m.Principal != 120000 || len(m.Schedule) != 13 {
		t.Fatal("mortgage mutated by flow generation")
	}
	// Regenerating at the first rate reproduces the same flows.
	again, err := m.GenerateFlows(0.03, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	for i := range lo.Total {
		if lo.Total[i] != again.Total[i] || lo.Remaining[i] != again.Remaining[i] {
			t.Fatalf("row %d differs across identical calls", i)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		p    mortgage.Params
	}{
		{"start after end", mortgage.Params{StartDate: end, EndDate: start, Principal: 1000}},
		{"zero principal", mortgage.Params{StartDate: start, EndDate: end, Principal: 0}},
		{"negative principal", mortgage.Params{StartDate: start, EndDate: end, Principal: -5}},
		{"unknown calendar", mortgage.Params{StartDate: start, EndDate: end, Principal: 1000, Calendar: "MARS"}},
		{"unknown adjust rule", mortgage.Params{StartDate: start, EndDate: end, Principal: 1000, BusDayAdjust: "NEAREST"}},
		{"unknown gen rule", mortgage.Params{StartDate: start, EndDate: end, Principal: 1000, DateGenRule: "SIDEWAYS"}},
		{"unknown frequency", mortgage.Params{StartDate: start, EndDate: end, Principal: 1000, Frequency: 7}},
		{"unknown day count", mortgage.Params{StartDate: start, EndDate: end, Principal: 1000, DayCount: "ACT/364"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := mortgage.New(tc.p); err == nil {
				t.Fatal("expected constructor error")
			}
		})
	}
}

func TestNew_ZeroDurationLoan(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	m, err := mortgage.New(mortgage.Params{StartDate: day, EndDate: day, Principal: 50000})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if len(m.Schedule) != 1 {
		t.Fatalf("expected single schedule date, got %d", len(m.Schedule))
	}

	fv, err := m.GenerateFlows(0.05, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	if fv.Len() != 1 {
		t.Fatalf("expected length-1 flow vector, got %d", fv.Len())
	}
	if fv.Remaining[0] != 50000 || fv.Total[0] != 0 {
		t.Fatal("expected only the seeded boundary row")
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	fv, err := m.GenerateFlows(0.05, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	out, err := mortgage.Table(m, fv)
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}
	if !strings.Contains(out, "PAYMENT DATE") || !strings.Contains(out, "OUTSTANDING") {
		t.Fatal("missing table header")
	}
	if !strings.Contains(out, "MORTGAGE TYPE: REPAYMENT") {
		t.Fatal("missing mortgage type line")
	}
	lines := strings.Count(out, "\n")
	// 7 term lines + blank + header + 13 rows
	if lines != 22 {
		t.Fatalf("unexpected line count %d", lines)
	}
}

func TestCashflows_RoundsToCents(t *testing.T) {
	t.Parallel()

	m := oneYearMonthly(t, 120000)
	fv, err := m.GenerateFlows(0.05, mortgage.Repayment)
	if err != nil {
		t.Fatalf("GenerateFlows error: %v", err)
	}
	rows, err := fv.Cashflows()
	if err != nil {
		t.Fatalf("Cashflows error: %v", err)
	}
	if len(rows) != fv.Len() {
		t.Fatalf("expected %d rows, got %d", fv.Len(), len(rows))
	}
	// First period interest is exactly 120000 * 0.05 / 12.
	if got := rows[1].Interest.StringFixed(2); got != "500.00" {
		t.Fatalf("first interest mismatch: got %s want 500.00", got)
	}
	if got := rows[0].Outstanding.StringFixed(2); got != "120000.00" {
		t.Fatalf("boundary outstanding mismatch: got %s", got)
	}
	if !rows[1].Total.Equal(rows[1].Interest.Add(rows[1].Principal)) {
		t.Fatal("rounded rows must keep total = interest + principal")
	}
}

func TestCashflows_RequiresDates(t *testing.T) {
	t.Parallel()

	fv, err := mortgage.Flows(120000, 0.05, schedule.Monthly, mortgage.Repayment, 13)
	if err != nil {
		t.Fatalf("Flows error: %v", err)
	}
	if _, err := fv.Cashflows(); err == nil {
		t.Fatal("expected error for a vector without schedule dates")
	}
}
