package welch_test

import (
	"math"
	"testing"

	"github.com/mjibson/go-dsp/fft"

	welch "github.com/cwbudde/algo-welch"
	"github.com/cwbudde/algo-welch/spectrum"
	"github.com/cwbudde/algo-welch/window"
)

func sineAtBin(samples, period int) []float64 {
	sig := make([]float64, samples)
	for i := range sig {
		sig[i] = math.Sin(2 * math.Pi * float64(i) / float64(period))
	}
	return sig
}

func TestPeriodogramLengthAndSign(t *testing.T) {
	cases := []struct {
		name    string
		n, k    int
		overlap float64
	}{
		{"defaults", 40, 4, 0.5},
		{"no overlap", 96, 3, 0},
		{"non power of two size", 100, 4, 0.5},
		{"many segments", 1000, 10, 0.75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est, err := welch.New(sineAtBin(tc.n, 8)).NSegments(tc.k).Overlap(tc.overlap).Build()
			if err != nil {
				t.Fatal(err)
			}

			psd, err := est.Periodogram()
			if err != nil {
				t.Fatal(err)
			}

			if len(psd) != est.SegmentSize()/2 {
				t.Fatalf("len = %d, want %d", len(psd), est.SegmentSize()/2)
			}

			for i, v := range psd {
				if v < 0 || math.IsNaN(v) {
					t.Fatalf("bin %d: %v, want >= 0", i, v)
				}
			}
		})
	}
}

// A single whole-signal segment with no overlap reduces the estimate to the
// plain squared-magnitude half-spectrum of the signal. An independent FFT
// implementation serves as the reference.
func TestPeriodogramSingleSegment(t *testing.T) {
	for _, n := range []int{64, 60} {
		sig := make([]float64, n)
		for i := range sig {
			sig[i] = math.Sin(2*math.Pi*float64(i)/8) + 0.5*math.Cos(2*math.Pi*float64(i)/6)
		}

		est, err := welch.New(sig).NSegments(1).Overlap(0).Build()
		if err != nil {
			t.Fatal(err)
		}

		if est.SegmentSize() != n || est.SegmentCount() != 1 {
			t.Fatalf("n=%d: segment size %d count %d, want %d and 1",
				n, est.SegmentSize(), est.SegmentCount(), n)
		}

		psd, err := est.Periodogram()
		if err != nil {
			t.Fatal(err)
		}

		ref := fft.FFTReal(sig)
		for i := range psd {
			want := real(ref[i])*real(ref[i]) + imag(ref[i])*imag(ref[i])
			if math.Abs(psd[i]-want) > 1e-8*math.Max(1, want) {
				t.Fatalf("n=%d bin %d: got %v, want %v", n, i, psd[i], want)
			}
		}
	}
}

// 40 samples of a sine with period 8, four segments at half overlap: segment
// size 16, so the tone falls exactly on bin 2 of each segment.
func TestPeriodogramPeakBin(t *testing.T) {
	sig := sineAtBin(40, 8)

	est, err := welch.New(sig).NSegments(4).Overlap(0.5).Build()
	if err != nil {
		t.Fatal(err)
	}

	if est.SegmentSize() != 16 {
		t.Fatalf("SegmentSize = %d, want 16", est.SegmentSize())
	}

	psd, err := est.Periodogram()
	if err != nil {
		t.Fatal(err)
	}

	peak := 0
	for i, v := range psd {
		if v > psd[peak] {
			peak = i
		}
	}

	if peak != 2 {
		t.Fatalf("peak at bin %d, want 2", peak)
	}

	// Cross-check the accumulated peak energy against a Goertzel analyzer
	// run over each segment independently.
	goertzelSum := 0.0
	l := est.SegmentSize()
	for seg := range est.SegmentCount() {
		start := seg * est.Stride()
		p, err := spectrum.AnalyzeBlock(sig[start:start+l], 2, float64(l))
		if err != nil {
			t.Fatal(err)
		}
		goertzelSum += p
	}

	if math.Abs(psd[2]-goertzelSum) > 1e-8*goertzelSum {
		t.Fatalf("peak energy %v, goertzel reference %v", psd[2], goertzelSum)
	}
}

func TestPSDIsPeriodogramOverSegmentCount(t *testing.T) {
	sig := sineAtBin(200, 10)

	est, err := welch.New(sig).NSegments(4).Overlap(0.5).Window(window.TypeHann).Build()
	if err != nil {
		t.Fatal(err)
	}

	sum, err := est.Periodogram()
	if err != nil {
		t.Fatal(err)
	}

	avg, err := est.PSD()
	if err != nil {
		t.Fatal(err)
	}

	k := float64(est.SegmentCount())
	for i := range avg {
		want := sum[i] / k
		if math.Abs(avg[i]-want) > 1e-12*math.Max(1, want) {
			t.Fatalf("bin %d: %v, want %v", i, avg[i], want)
		}
	}
}
