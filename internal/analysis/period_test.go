package analysis

import (
	"math"
	"testing"
)

func TestEstimatePeriodSine(t *testing.T) {
	// 8 full cycles of a known period over 1024 samples.
	period := 0.25
	dt := 8 * period / 1024

	series := make([]float64, 1024)
	for i := range series {
		series[i] = math.Cos(2 * math.Pi * float64(i) * dt / period)
	}

	got, err := EstimatePeriod(series, dt)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	// Resolution is one frequency bin.
	if math.Abs(got-period)/period > 0.15 {
		t.Errorf("period estimate off: got %v, want %v", got, period)
	}
}

func TestEstimatePeriodIgnoresOffset(t *testing.T) {
	period := 1.0
	dt := 4 * period / 512

	series := make([]float64, 512)
	for i := range series {
		series[i] = 10 + math.Sin(2*math.Pi*float64(i)*dt/period)
	}

	got, err := EstimatePeriod(series, dt)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	if math.Abs(got-period)/period > 0.3 {
		t.Errorf("period estimate off: got %v, want %v", got, period)
	}
}

func TestEstimatePeriodTooShort(t *testing.T) {
	if _, err := EstimatePeriod([]float64{1, 2}, 0.1); err == nil {
		t.Error("expected error for short series")
	}
}

func TestPowerSpectrumPeak(t *testing.T) {
	// Pure tone at bin 16 of 256.
	series := make([]float64, 256)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * 16 * float64(i) / 256)
	}

	ps := PowerSpectrum(series)

	peak := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if peak != 16 {
		t.Errorf("expected spectral peak at bin 16, got %d", peak)
	}
}
