package mortgage

import "time"

// FlowVector holds the per-period flows of a mortgage, aligned with its
// payment schedule. Index 0 is the start boundary where no payment occurs:
// all flows are zero and Remaining[0] is the full principal.
//
// Each call to GenerateFlows produces a fresh FlowVector owned by the caller;
// the engine keeps no state between calls.
type FlowVector struct {
	// Type records the variant the flows were generated with.
	Type Type

	// Dates are the adjusted payment dates. Empty when the flows were
	// produced by the schedule-free engine functions.
	Dates []time.Time

	Interest  []float64
	Principal []float64
	Remaining []float64
	Total     []float64
}

// Len returns the number of periods, including the start boundary.
func (fv *FlowVector) Len() int {
	return len(fv.Total)
}

func newFlowVector(t Type, principal float64, n int) *FlowVector {
	fv := &FlowVector{
		Type:      t,
		Interest:  make([]float64, 1, n),
		Principal: make([]float64, 1, n),
		Remaining: make([]float64, 1, n),
		Total:     make([]float64, 1, n),
	}
	fv.Remaining[0] = principal
	return fv
}
