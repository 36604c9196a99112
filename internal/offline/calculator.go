package offline

import (
	"time"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/draw"
	"github.com/caseforge/caseforge/internal/pool"
	"github.com/caseforge/caseforge/internal/rng"
)

// MaxOfflineSeconds caps how much elapsed time an offline window can claim:
// seven days
const MaxOfflineSeconds = 7 * 24 * 3600

// Params is the persisted-state snapshot an offline window is replayed from
type Params struct {
	AnchorAt       time.Time
	Now            time.Time
	AvailableCases int64

	// AutoDrawRate and ProductionRate are resolved outside the calculator
	// (see internal/upgrade); both are draws/cases per second.
	AutoDrawRate   float64
	ProductionRate float64

	Modifiers draw.Modifiers
}

// Calculator replays the draws that would have happened during an offline
// window. It is a pure function of its inputs: the PRNG is seeded from the
// anchor timestamp, so identical inputs always produce identical reports.
type Calculator struct {
	engine *draw.Engine
}

// NewCalculator creates an offline progression calculator
func NewCalculator(engine *draw.Engine) *Calculator {
	return &Calculator{engine: engine}
}

// Calculate simulates the window between params.AnchorAt and params.Now.
//
// It returns (nil, nil) when there is nothing to simulate: no auto-draw
// rate, or a clock that moved backward. Progress is never retroactively
// undone. A window with time elapsed but no draw budget still returns a
// report so the caller can advance its anchor.
func (c *Calculator) Calculate(params Params, p *pool.Pool) (*domain.OfflineReport, error) {
	if params.AutoDrawRate <= 0 {
		return nil, nil
	}

	elapsedMillis := params.Now.UnixMilli() - params.AnchorAt.UnixMilli()
	if elapsedMillis < 0 {
		return nil, nil
	}

	elapsedSeconds := elapsedMillis / 1000
	wasCapped := false
	if elapsedSeconds > MaxOfflineSeconds {
		elapsedSeconds = MaxOfflineSeconds
		wasCapped = true
	}

	casesProduced := int64(float64(elapsedSeconds) * params.ProductionRate)
	drawsRequested := int64(float64(elapsedSeconds) * params.AutoDrawRate)

	// The draw budget includes cases produced during the same window
	drawsPerformed := drawsRequested
	if budget := params.AvailableCases + casesProduced; drawsPerformed > budget {
		drawsPerformed = budget
	}

	report := &domain.OfflineReport{
		ElapsedSeconds: elapsedSeconds,
		CasesProduced:  casesProduced,
		WasCapped:      wasCapped,
	}
	if drawsPerformed <= 0 {
		return report, nil
	}

	// Same anchor, same sequence. Re-running the same claim is idempotent.
	stream := rng.NewStream(params.AnchorAt.UnixMilli())

	drawn, err := c.engine.DrawMany(int(drawsPerformed), p, params.Modifiers, stream.Float64)
	if err != nil {
		return nil, err
	}

	anchorMillis := params.AnchorAt.UnixMilli()
	report.DrawsPerformed = len(drawn)
	report.Draws = make([]domain.DrawResult, len(drawn))
	for i, collectible := range drawn {
		report.Draws[i] = domain.DrawResult{
			Collectible: collectible,
			// One-second spacing from the anchor; ordering is what matters
			TimestampMillis: anchorMillis + int64(i)*1000,
			ScoreDelta:      collectible.Value,
		}
		report.ScoreDelta += collectible.Value
	}

	return report, nil
}
