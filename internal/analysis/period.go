// Package analysis estimates orbital periods from recorded coordinate
// series via their frequency spectrum.
package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooShort = errors.New("analysis: series too short for period estimate")

// PowerSpectrum returns the magnitude of the one-sided spectrum of data.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// EstimatePeriod estimates the dominant period of a coordinate series
// sampled at interval dt, from the peak of its power spectrum. The DC
// bin is excluded. For a body on a closed orbit, feeding in x(t) or y(t)
// recovers the orbital period to within one frequency bin.
func EstimatePeriod(series []float64, dt float64) (float64, error) {
	if len(series) < 4 {
		return 0, ErrTooShort
	}

	// Remove the mean so an off-center orbit does not bury the orbital
	// frequency under the DC component.
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))
	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	if len(ps) < 2 {
		return 0, ErrTooShort
	}

	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}

	if ps[peak] == 0 {
		return 0, ErrTooShort
	}

	n := float64(len(series))
	return n * dt / float64(peak), nil
}
