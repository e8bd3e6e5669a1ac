package welch

import (
	"github.com/cwbudde/algo-vecmath"
)

// Segments slides a window of SegmentSize samples over the signal at the
// configured stride, tapers each position by the window weights and returns
// all segments concatenated into one flat complex buffer of length
// SegmentCount()*SegmentSize(). The imaginary parts are zero.
//
// The signal is not mutated; repeated calls return equal buffers.
func (e *Estimator) Segments() []complex128 {
	l := e.segmentSize
	weights := e.window.Weights()

	out := make([]complex128, e.SegmentCount()*l)
	scratch := make([]float64, l)

	pos := 0
	for start := 0; start+l <= len(e.signal); start += e.stride {
		vecmath.MulBlock(scratch, e.signal[start:start+l], weights)
		for i, v := range scratch {
			out[pos+i] = complex(v, 0)
		}
		pos += l
	}

	return out
}
