// SPDX-License-Identifier: EPL-2.0

package table

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// DefaultSize is the length used by the builders when size is 0.
const DefaultSize = 8192

// Harmonics builds one cycle of sum(amps[k-1] * sin(2*pi*k*x)) with an
// inverse FFT and normalises its peak to 1. Harmonics at or above the
// table's Nyquist bin are dropped.
func Harmonics(size int, amps []float64) (*Table, error) {
	if size == 0 {
		size = DefaultSize
	}
	if size < 4 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	spec := make([]complex128, size)
	half := float64(size) / 2
	for k := 1; k <= len(amps) && k < size/2; k++ {
		a := amps[k-1]
		spec[k] = complex(0, -a*half)
		spec[size-k] = complex(0, a*half)
	}

	wave := fft.IFFT(spec)
	samples := make([]float64, size)
	for i, c := range wave {
		samples[i] = real(c)
	}

	peak := floats.Norm(samples, math.Inf(1))
	if peak == 0 {
		return nil, ErrSilentTable
	}
	floats.Scale(1/peak, samples)
	return New(samples)
}

// Sine is a pure sine cycle.
func Sine(size int) (*Table, error) {
	return Harmonics(size, []float64{1})
}

// Saw is a band-limited sawtooth with n harmonics.
func Saw(size, n int) (*Table, error) {
	amps := make([]float64, n)
	for k := range amps {
		amps[k] = 1 / float64(k+1)
	}
	return Harmonics(size, amps)
}

// Square is a band-limited square wave using odd harmonics up to n.
func Square(size, n int) (*Table, error) {
	amps := make([]float64, n)
	for k := 1; k <= n; k += 2 {
		amps[k-1] = 1 / float64(k)
	}
	return Harmonics(size, amps)
}

// Triangle is a band-limited triangle wave using odd harmonics up to n.
func Triangle(size, n int) (*Table, error) {
	amps := make([]float64, n)
	sign := 1.0
	for k := 1; k <= n; k += 2 {
		amps[k-1] = sign / float64(k*k)
		sign = -sign
	}
	return Harmonics(size, amps)
}
