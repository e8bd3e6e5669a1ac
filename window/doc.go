// Package window generates taper coefficient sequences for spectral
// segmentation and provides the Window capability consumed by the Welch
// estimator: a fixed-length weight sequence plus a textual description.
package window
