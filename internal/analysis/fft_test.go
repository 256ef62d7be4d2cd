package analysis

import (
	"math"
	"testing"
)

func sine(freq, dt float64, n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}
	return data
}

func TestFFTConstantSignal(t *testing.T) {
	fft := FFT([]float64{1, 1, 1, 1})
	if real(fft[0]) != 4 {
		t.Errorf("DC bin should hold the sum, got %v", fft[0])
	}
	for i := 1; i < 4; i++ {
		if math.Abs(real(fft[i])) > 1e-9 || math.Abs(imag(fft[i])) > 1e-9 {
			t.Errorf("bin %d should be zero for a constant signal, got %v", i, fft[i])
		}
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	// 300 samples truncate to 256; half the bins survive.
	ps := PowerSpectrum(sine(4, 1.0/64, 300))
	if len(ps) != 128 {
		t.Fatalf("expected 128 bins, got %d", len(ps))
	}

	if PowerSpectrum([]float64{1}) != nil {
		t.Error("one sample has no spectrum")
	}
	if PowerSpectrum(nil) != nil {
		t.Error("empty input has no spectrum")
	}
}

func TestDominantFrequencyOfSine(t *testing.T) {
	// A 4 Hz sine sampled at 64 Hz for 256 samples lands exactly on bin 16.
	dt := 1.0 / 64
	peaks := DominantFrequencies(sine(4, dt, 256), dt, 3)
	if len(peaks) != 3 {
		t.Fatalf("expected 3 peaks, got %d", len(peaks))
	}
	if peaks[0].Frequency != 4.0 {
		t.Errorf("dominant frequency should be exactly 4 Hz, got %f", peaks[0].Frequency)
	}
	if peaks[0].Power <= peaks[1].Power {
		t.Error("the dominant peak should stand clear of the rest")
	}
}

func TestDominantFrequenciesGuards(t *testing.T) {
	if DominantFrequencies(sine(4, 1.0/64, 256), 0, 3) != nil {
		t.Error("zero dt has no frequency axis")
	}
	if DominantFrequencies(nil, 1.0/64, 3) != nil {
		t.Error("no data, no peaks")
	}
}
