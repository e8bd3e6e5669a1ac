package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
}

// EquivalentNoiseBandwidth returns the ENBW in bins for window coefficients.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0
	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// Analyze computes spectral properties of the given window coefficients by
// evaluating the window's DFT numerically.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := dftMagSq(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		HighestSidelobedB: highestSidelobe(coeffs, dcRef),
	}
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalized frequency in [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

// highestSidelobe scans the magnitude response past the first spectral null
// and returns the peak level in dB relative to DC.
func highestSidelobe(coeffs []float64, dcRef float64) float64 {
	n := float64(len(coeffs))
	step := 1 / (n * 8)

	// Find the first null: descend below 10% of DC, then turn around.
	threshold := dcRef * 0.1
	prev := dcRef
	start := 0.5
	for freq := step; freq < 0.5; freq += step {
		val := dftMagSq(coeffs, freq)
		if prev < threshold && val > prev {
			start = freq
			break
		}
		prev = val
	}

	peak := 0.0
	for freq := start; freq < 0.5; freq += step {
		if val := dftMagSq(coeffs, freq); val > peak {
			peak = val
		}
	}

	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/dcRef)
}
