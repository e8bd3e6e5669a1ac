package welch

import (
	"fmt"
	"runtime"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transform computes an in-place forward complex DFT over a single segment.
//
// Implementations must follow the standard unnormalized forward convention.
// The default backends satisfy this; callers may inject their own via
// [Builder.WithTransform].
type Transform interface {
	// Len returns the transform length.
	Len() int
	// Forward replaces buf with its forward DFT. len(buf) must equal Len().
	Forward(buf []complex128) error
}

// newTransform selects the FFT backend for a segment size: the radix-2 plan
// for powers of two, the gonum mixed-radix transform otherwise.
func newTransform(n int) (Transform, error) {
	if isPowerOf2(n) {
		return newFFTTransform(n)
	}
	return newCmplxTransform(n), nil
}

// fftTransform wraps an algo-fft plan. The plan transforms out-of-place, so
// a scratch copy of the input is kept per instance.
type fftTransform struct {
	n       int
	plan    *algofft.Plan[complex128]
	scratch []complex128
}

func newFFTTransform(n int) (*fftTransform, error) {
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}
	return &fftTransform{
		n:       n,
		plan:    plan,
		scratch: make([]complex128, n),
	}, nil
}

func (t *fftTransform) Len() int { return t.n }

func (t *fftTransform) Forward(buf []complex128) error {
	if len(buf) != t.n {
		return fmt.Errorf("welch: transform input length %d, want %d", len(buf), t.n)
	}
	copy(t.scratch, buf)
	return t.plan.Forward(buf, t.scratch)
}

// cmplxTransform wraps gonum's arbitrary-length complex FFT.
type cmplxTransform struct {
	n       int
	fft     *fourier.CmplxFFT
	scratch []complex128
}

func newCmplxTransform(n int) *cmplxTransform {
	return &cmplxTransform{
		n:       n,
		fft:     fourier.NewCmplxFFT(n),
		scratch: make([]complex128, n),
	}
}

func (t *cmplxTransform) Len() int { return t.n }

func (t *cmplxTransform) Forward(buf []complex128) error {
	if len(buf) != t.n {
		return fmt.Errorf("welch: transform input length %d, want %d", len(buf), t.n)
	}
	copy(t.scratch, buf)
	t.fft.Coefficients(buf, t.scratch)
	return nil
}

// DFT returns the segment buffer with a forward DFT applied independently to
// each contiguous chunk of SegmentSize values.
func (e *Estimator) DFT() ([]complex128, error) {
	buf := e.Segments()

	if e.parallel {
		if err := e.forwardParallel(buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	l := e.segmentSize
	for off := 0; off < len(buf); off += l {
		if err := e.transform.Forward(buf[off : off+l]); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// forwardParallel transforms the segment chunks on worker goroutines. Chunks
// are disjoint slices of buf and each worker owns a private plan, so no
// locking is needed around the transforms themselves.
func (e *Estimator) forwardParallel(buf []complex128) error {
	l := e.segmentSize
	chunks := len(buf) / l
	workers := min(runtime.GOMAXPROCS(0), chunks)

	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)

	fail := func(err error) {
		errOnce.Do(func() { firstErr = err })
	}

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			tf, err := newTransform(l)
			if err != nil {
				fail(err)
				for range jobs {
				}
				return
			}

			for idx := range jobs {
				if err := tf.Forward(buf[idx*l : (idx+1)*l]); err != nil {
					fail(err)
				}
			}
		}()
	}

	for i := range chunks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return firstErr
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
