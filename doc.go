// Package welch estimates the power spectral density of a real-valued,
// uniformly sampled signal using Welch's method.
//
// The signal is split into overlapping segments, each segment is tapered by a
// window function and transformed with a forward DFT, and the squared
// magnitudes are accumulated per frequency bin into a one-sided spectral
// estimate of segmentSize/2 bins.
//
// The package does not know the sampling rate. Callers reconstruct the
// frequency axis from the segment size:
//
//	freq[i] = float64(i) * sampleRate / float64(est.SegmentSize())
package welch
