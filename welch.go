package welch

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-welch/window"
)

const (
	defaultNSegments = 4
	defaultOverlap   = 0.5
)

// WindowFactory constructs a window variant of the given length. It allows
// callers to plug in window types the window package does not know about.
type WindowFactory func(length int) (window.Window, error)

// Builder configures a Welch estimator before construction.
//
// The zero value is not usable; obtain a Builder from [New]. All setters
// return the receiver for chaining. Validation happens once, in [Builder.Build].
type Builder struct {
	signal     []float64
	nSegments  int
	overlap    float64
	windowType window.Type
	windowOpts []window.Option
	windowFn   WindowFactory
	transform  Transform
	parallel   bool
}

// New returns a Builder over the given signal with default parameters:
// 4 segments, 0.5 overlap fraction, rectangular window.
//
// The signal is borrowed read-only; it is never copied or mutated and must
// not be modified while the estimator is in use.
func New(signal []float64) *Builder {
	return &Builder{
		signal:     signal,
		nSegments:  defaultNSegments,
		overlap:    defaultOverlap,
		windowType: window.TypeRectangular,
	}
}

// NSegments sets the requested number of segments.
func (b *Builder) NSegments(k int) *Builder {
	b.nSegments = k
	return b
}

// Overlap sets the overlap fraction between consecutive segments.
func (b *Builder) Overlap(a float64) *Builder {
	b.overlap = a
	return b
}

// Window selects the window variant applied to each segment.
func (b *Builder) Window(t window.Type, opts ...window.Option) *Builder {
	b.windowType = t
	b.windowOpts = opts
	b.windowFn = nil
	return b
}

// WindowFunc selects a custom window variant via a factory. It takes
// precedence over [Builder.Window].
func (b *Builder) WindowFunc(fn WindowFactory) *Builder {
	b.windowFn = fn
	return b
}

// WithTransform injects a DFT backend. The transform length must equal the
// segment size computed at Build time. Injected transforms always run
// serially.
func (b *Builder) WithTransform(t Transform) *Builder {
	b.transform = t
	return b
}

// WithParallel enables concurrent per-segment forward transforms.
func (b *Builder) WithParallel() *Builder {
	b.parallel = true
	return b
}

// SegmentSize returns the segment length for a signal of signalLen samples
// split into nSegments segments with the given overlap fraction:
//
//	l = trunc(n / (k*(1-a) + a))
//
// The function performs no validation; degenerate inputs yield degenerate
// sizes, which [Builder.Build] rejects.
func SegmentSize(signalLen, nSegments int, overlap float64) int {
	return int(float64(signalLen) / (float64(nSegments)*(1-overlap) + overlap))
}

// Build validates the configuration and returns a ready estimator.
//
// It computes the segment size, derives the stride, generates the window
// coefficients and prepares the forward DFT plan. All invariant violations
// surface here; the pipeline stages themselves perform no further checks.
func (b *Builder) Build() (*Estimator, error) {
	if len(b.signal) == 0 {
		return nil, errEmptySignal
	}
	if err := validateNSegments(b.nSegments); err != nil {
		return nil, err
	}
	if err := validateOverlap(b.overlap); err != nil {
		return nil, err
	}

	l := SegmentSize(len(b.signal), b.nSegments, b.overlap)
	if err := validateSegmentSize(l, len(b.signal)); err != nil {
		return nil, err
	}

	stride := l - int(math.Round(float64(l)*b.overlap))
	if err := validateStride(stride); err != nil {
		return nil, err
	}

	win, err := b.buildWindow(l)
	if err != nil {
		return nil, fmt.Errorf("welch: window: %w", err)
	}

	tf := b.transform
	injected := tf != nil
	if injected {
		if tf.Len() != l {
			return nil, fmt.Errorf("welch: transform length %d does not match segment size %d", tf.Len(), l)
		}
	} else {
		tf, err = newTransform(l)
		if err != nil {
			return nil, fmt.Errorf("welch: transform plan: %w", err)
		}
	}

	return &Estimator{
		signal:      b.signal,
		nSegments:   b.nSegments,
		overlap:     b.overlap,
		segmentSize: l,
		stride:      stride,
		window:      win,
		transform:   tf,
		parallel:    b.parallel && !injected,
	}, nil
}

func (b *Builder) buildWindow(length int) (window.Window, error) {
	if b.windowFn != nil {
		win, err := b.windowFn(length)
		if err != nil {
			return nil, err
		}
		if len(win.Weights()) != length {
			return nil, fmt.Errorf("window length %d does not match segment size %d", len(win.Weights()), length)
		}
		return win, nil
	}
	return window.New(b.windowType, length, b.windowOpts...)
}

// Estimator holds a validated Welch configuration together with its window
// coefficients and DFT plan.
//
// A single Estimator is not safe for concurrent use, but independent
// estimators may share the same read-only signal without synchronization.
type Estimator struct {
	signal      []float64
	nSegments   int
	overlap     float64
	segmentSize int
	stride      int
	window      window.Window
	transform   Transform
	parallel    bool
}

// NSegments returns the requested segment count.
func (e *Estimator) NSegments() int { return e.nSegments }

// Overlap returns the overlap fraction.
func (e *Estimator) Overlap() float64 { return e.overlap }

// SegmentSize returns the derived segment length.
func (e *Estimator) SegmentSize() int { return e.segmentSize }

// Stride returns the distance in samples between consecutive segment starts.
func (e *Estimator) Stride() int { return e.stride }

// SegmentCount returns the number of segments actually extracted: as many
// full windows as fit into the signal at the stride. This may differ from
// NSegments for parameter combinations where the size formula truncates.
func (e *Estimator) SegmentCount() int {
	return (len(e.signal)-e.segmentSize)/e.stride + 1
}

// Window returns the window applied to each segment.
func (e *Estimator) Window() window.Window { return e.window }

// String renders a diagnostic summary of the configuration.
func (e *Estimator) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# of segments %d\n", e.nSegments)
	fmt.Fprintf(&sb, "# window %s\n", e.window)
	return sb.String()
}
