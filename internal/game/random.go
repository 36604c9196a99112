package game

import "github.com/caseforge/caseforge/internal/rng"

// defaultUniformSource builds a time-seeded stream for one interactive call.
// Interactive opens do not need replay, only the offline path does.
func defaultUniformSource() func() float64 {
	return rng.NewTimeStream().Float64
}
