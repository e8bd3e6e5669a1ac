package spectrum

import (
	"math"
	"testing"
)

func TestGoertzelMatchesDFTBin(t *testing.T) {
	const (
		n          = 64
		bin        = 5
		sampleRate = 64.0
	)

	sig := make([]float64, n)
	for i := range sig {
		sig[i] = math.Sin(2 * math.Pi * bin * float64(i) / n)
	}

	power, err := AnalyzeBlock(sig, bin*sampleRate/n, sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	// A unit sine aligned on bin k has |X[k]|^2 = (n/2)^2.
	want := float64(n*n) / 4
	if math.Abs(power-want) > 1e-8*want {
		t.Fatalf("power %v, want %v", power, want)
	}
}

func TestGoertzelOffToneIsSmall(t *testing.T) {
	const n = 64

	sig := make([]float64, n)
	for i := range sig {
		sig[i] = math.Sin(2 * math.Pi * 5 * float64(i) / n)
	}

	onTone, err := AnalyzeBlock(sig, 5, float64(n))
	if err != nil {
		t.Fatal(err)
	}

	offTone, err := AnalyzeBlock(sig, 20, float64(n))
	if err != nil {
		t.Fatal(err)
	}

	if offTone > onTone/1e6 {
		t.Fatalf("off-tone power %v not negligible against %v", offTone, onTone)
	}
}

func TestGoertzelReset(t *testing.T) {
	g, err := NewGoertzel(5, 64)
	if err != nil {
		t.Fatal(err)
	}

	sig := make([]float64, 64)
	for i := range sig {
		sig[i] = math.Sin(2 * math.Pi * 5 * float64(i) / 64)
	}

	g.ProcessBlock(sig)
	first := g.Power()

	g.Reset()
	g.ProcessBlock(sig)

	if got := g.Power(); got != first {
		t.Fatalf("power after reset %v, want %v", got, first)
	}
}

func TestGoertzelInvalidParameters(t *testing.T) {
	if _, err := NewGoertzel(5, 0); err == nil {
		t.Error("expected error for zero sample rate")
	}

	if _, err := NewGoertzel(-1, 64); err == nil {
		t.Error("expected error for negative frequency")
	}

	if _, err := NewGoertzel(40, 64); err == nil {
		t.Error("expected error for frequency above Nyquist")
	}

	if _, err := NewGoertzel(math.NaN(), 64); err == nil {
		t.Error("expected error for NaN frequency")
	}
}
