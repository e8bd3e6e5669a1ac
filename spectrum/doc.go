// Package spectrum provides helpers over complex spectrum bins produced by
// external FFT backends: magnitude and power extraction, plus a Goertzel
// analyzer for evaluating single frequency components without a full FFT.
//
// The package intentionally does not implement an FFT itself.
package spectrum
