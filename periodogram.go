package welch

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-welch/spectrum"
)

// Periodogram returns the one-sided spectral estimate: for every segment it
// takes the first SegmentSize/2 bins of the forward DFT and accumulates the
// squared magnitudes bin by bin.
//
// The result has exactly SegmentSize/2 entries, all non-negative, and is a
// raw sum across segments with no normalization. Use [Estimator.PSD] for the
// segment-count-averaged estimate.
func (e *Estimator) Periodogram() ([]float64, error) {
	buf, err := e.DFT()
	if err != nil {
		return nil, err
	}

	l := e.segmentSize
	half := l / 2

	sum := make([]float64, half)
	re := make([]float64, half)
	im := make([]float64, half)
	pow := make([]float64, half)

	for off := 0; off < len(buf); off += l {
		chunk := buf[off : off+half]
		for i, c := range chunk {
			re[i] = real(c)
			im[i] = imag(c)
		}

		spectrum.PowerFromParts(pow, re, im)
		vecmath.AddBlockInPlace(sum, pow)
	}

	return sum, nil
}

// PSD returns the periodogram divided by the number of extracted segments,
// i.e. the averaged estimate of Welch's method proper.
func (e *Estimator) PSD() ([]float64, error) {
	sum, err := e.Periodogram()
	if err != nil {
		return nil, err
	}

	vecmath.ScaleBlock(sum, sum, 1/float64(e.SegmentCount()))
	return sum, nil
}
