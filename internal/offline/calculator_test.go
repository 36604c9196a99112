package offline

import (
	"testing"
	"time"

	"github.com/caseforge/caseforge/internal/domain"
	"github.com/caseforge/caseforge/internal/draw"
	"github.com/caseforge/caseforge/internal/pool"
)

func testPool(t *testing.T) *pool.Pool {
	t.Helper()
	p, err := pool.New([]domain.Collectible{
		{Name: "common", Weight: 80, Value: 1, Tier: domain.TierCommon},
		{Name: "uncommon", Weight: 15, Value: 10, Tier: domain.TierUncommon},
		{Name: "rare", Weight: 5, Value: 100, Tier: domain.TierRare},
	})
	if err != nil {
		t.Fatalf("pool.New() error = %v", err)
	}
	return p
}

func TestCalculateNothingToSimulate(t *testing.T) {
	calc := NewCalculator(draw.NewEngine())
	anchor := time.Unix(1700000000, 0)

	t.Run("no auto-draw rate", func(t *testing.T) {
		report, err := calc.Calculate(Params{
			AnchorAt:       anchor,
			Now:            anchor.Add(time.Hour),
			AvailableCases: 100,
			AutoDrawRate:   0,
		}, testPool(t))
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if report != nil {
			t.Errorf("Calculate() = %+v, want nil report", report)
		}
	})

	t.Run("clock moved backward", func(t *testing.T) {
		report, err := calc.Calculate(Params{
			AnchorAt:       anchor,
			Now:            anchor.Add(-time.Minute),
			AvailableCases: 100,
			AutoDrawRate:   1,
		}, testPool(t))
		if err != nil {
			t.Fatalf("Calculate() error = %v", err)
		}
		if report != nil {
			t.Errorf("Calculate() = %+v, want nil report", report)
		}
	})
}

func TestCalculateBasicWindow(t *testing.T) {
	calc := NewCalculator(draw.NewEngine())
	anchor := time.Unix(1700000000, 0)

	report, err := calc.Calculate(Params{
		AnchorAt:       anchor,
		Now:            anchor.Add(100 * time.Second),
		AvailableCases: 1000,
		AutoDrawRate:   1,
	}, testPool(t))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if report == nil {
		t.Fatal("Calculate() returned nil report")
	}

	if report.ElapsedSeconds != 100 {
		t.Errorf("ElapsedSeconds = %d, want 100", report.ElapsedSeconds)
	}
	if report.DrawsPerformed != 100 {
		t.Errorf("DrawsPerformed = %d, want 100", report.DrawsPerformed)
	}
	if len(report.Draws) != 100 {
		t.Errorf("len(Draws) = %d, want 100", len(report.Draws))
	}
	if report.WasCapped {
		t.Error("WasCapped = true for a window under the cap")
	}

	var sum float64
	for i, d := range report.Draws {
		wantTS := anchor.UnixMilli() + int64(i)*1000
		if d.TimestampMillis != wantTS {
			t.Fatalf("Draws[%d].TimestampMillis = %d, want %d", i, d.TimestampMillis, wantTS)
		}
		if d.ScoreDelta != d.Collectible.Value {
			t.Fatalf("Draws[%d].ScoreDelta = %v, want the collectible value %v", i, d.ScoreDelta, d.Collectible.Value)
		}
		sum += d.ScoreDelta
	}
	if report.ScoreDelta != sum {
		t.Errorf("ScoreDelta = %v, want sum of draws %v", report.ScoreDelta, sum)
	}
}

func TestCalculateCapsElapsedTime(t *testing.T) {
	calc := NewCalculator(draw.NewEngine())
	anchor := time.Unix(1700000000, 0)

	// Ten days away: draws must stop at the seven-day cap
	report, err := calc.Calculate(Params{
		AnchorAt:       anchor,
		Now:            anchor.Add(10 * 24 * time.Hour),
		AvailableCases: 10,
		AutoDrawRate:   0.0001,
	}, testPool(t))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if report == nil {
		t.Fatal("Calculate() returned nil report")
	}

	if report.ElapsedSeconds != MaxOfflineSeconds {
		t.Errorf("ElapsedSeconds = %d, want cap %d", report.ElapsedSeconds, MaxOfflineSeconds)
	}
	if !report.WasCapped {
		t.Error("WasCapped = false for a window past the cap")
	}
	// 604800 * 0.0001 requests 60 draws, limited by the 10 available cases
	if report.DrawsPerformed != 10 {
		t.Errorf("DrawsPerformed = %d, want the 10 available cases", report.DrawsPerformed)
	}
}

func TestCalculateLimitedByCases(t *testing.T) {
	calc := NewCalculator(draw.NewEngine())
	anchor := time.Unix(1700000000, 0)

	// 100 seconds at 1 draw/sec wants 100 draws but only 5 cases exist
	report, err := calc.Calculate(Params{
		AnchorAt:       anchor,
		Now:            anchor.Add(100 * time.Second),
		AvailableCases: 5,
		AutoDrawRate:   1,
	}, testPool(t))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if report.DrawsPerformed != 5 {
		t.Errorf("DrawsPerformed = %d, want 5", report.DrawsPerformed)
	}
}

func TestCalculateProductionExtendsBudget(t *testing.T) {
	calc := NewCalculator(draw.NewEngine())
	anchor := time.Unix(1700000000, 0)

	// 100 seconds producing 0.5 cases/sec adds 50 to the 5 on hand
	report, err := calc.Calculate(Params{
		AnchorAt:       anchor,
		Now:            anchor.Add(100 * time.Second),
		AvailableCases: 5,
		AutoDrawRate:   1,
		ProductionRate: 0.5,
	}, testPool(t))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if report.CasesProduced != 50 {
		t.Errorf("CasesProduced = %d, want 50", report.CasesProduced)
	}
	if report.DrawsPerformed != 55 {
		t.Errorf("DrawsPerformed = %d, want 55", report.DrawsPerformed)
	}
}

func TestCalculateZeroBudgetStillReports(t *testing.T) {
	calc := NewCalculator(draw.NewEngine())
	anchor := time.Unix(1700000000, 0)

	report, err := calc.Calculate(Params{
		AnchorAt:       anchor,
		Now:            anchor.Add(time.Hour),
		AvailableCases: 0,
		AutoDrawRate:   1,
	}, testPool(t))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if report == nil {
		t.Fatal("a window with elapsed time must still report so the anchor can advance")
	}
	if report.DrawsPerformed != 0 || len(report.Draws) != 0 {
		t.Errorf("expected no draws, got %d", report.DrawsPerformed)
	}
	if report.ElapsedSeconds != 3600 {
		t.Errorf("ElapsedSeconds = %d, want 3600", report.ElapsedSeconds)
	}
}

// The whole point: the same anchor and state replay to an identical report
// no matter how many times or when the calculation runs.
func TestCalculateDeterministic(t *testing.T) {
	calc := NewCalculator(draw.NewEngine())
	anchor := time.Unix(1700000000, 123000000)
	params := Params{
		AnchorAt:       anchor,
		Now:            anchor.Add(30 * time.Minute),
		AvailableCases: 10000,
		AutoDrawRate:   0.5,
		ProductionRate: 0.25,
		Modifiers:      draw.Modifiers{RarityLevel: 2, LuckLevel: 1},
	}

	p := testPool(t)
	first, err := calc.Calculate(params, p)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	second, err := calc.Calculate(params, p)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if first.DrawsPerformed != second.DrawsPerformed {
		t.Fatalf("DrawsPerformed differs: %d vs %d", first.DrawsPerformed, second.DrawsPerformed)
	}
	if first.ScoreDelta != second.ScoreDelta {
		t.Fatalf("ScoreDelta differs: %v vs %v", first.ScoreDelta, second.ScoreDelta)
	}
	for i := range first.Draws {
		if first.Draws[i] != second.Draws[i] {
			t.Fatalf("draw %d differs between runs: %+v vs %+v", i, first.Draws[i], second.Draws[i])
		}
	}
}

func TestCalculateFloorsPartialSeconds(t *testing.T) {
	calc := NewCalculator(draw.NewEngine())
	anchor := time.Unix(1700000000, 0)

	report, err := calc.Calculate(Params{
		AnchorAt:       anchor,
		Now:            anchor.Add(2500 * time.Millisecond),
		AvailableCases: 100,
		AutoDrawRate:   1,
	}, testPool(t))
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if report.ElapsedSeconds != 2 {
		t.Errorf("ElapsedSeconds = %d, want 2", report.ElapsedSeconds)
	}
	if report.DrawsPerformed != 2 {
		t.Errorf("DrawsPerformed = %d, want 2", report.DrawsPerformed)
	}
}
