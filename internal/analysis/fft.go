// Package analysis offers frequency-domain inspection of telemetry
// channels, mainly for hunting pilot-induced and smoothing-induced
// oscillations while tuning the handling constants.
package analysis

import (
	"math"
	"math/cmplx"
	"sort"
)

func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

// PowerSpectrum truncates the signal to a power-of-two length, removes the
// mean, and returns bin magnitudes up to the Nyquist frequency.
func PowerSpectrum(data []float64) []float64 {
	n := 1
	for n*2 <= len(data) {
		n *= 2
	}
	if n < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data[:n] {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range data[:n] {
		centered[i] = v - mean
	}

	fft := FFT(centered)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// Peak is one dominant frequency in a channel.
type Peak struct {
	Frequency float64 // Hz
	Power     float64
}

// DominantFrequencies returns the top k spectral peaks of a channel sampled
// at interval dt.
func DominantFrequencies(data []float64, dt float64, k int) []Peak {
	ps := PowerSpectrum(data)
	if len(ps) == 0 || dt <= 0 {
		return nil
	}

	n := len(ps) * 2
	peaks := make([]Peak, 0, len(ps))
	for i := 1; i < len(ps); i++ { // skip DC
		peaks = append(peaks, Peak{
			Frequency: float64(i) / (float64(n) * dt),
			Power:     ps[i],
		})
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Power > peaks[j].Power })
	if k < len(peaks) {
		peaks = peaks[:k]
	}
	return peaks
}
