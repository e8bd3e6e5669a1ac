package welch

import (
	"errors"
	"fmt"
)

var errEmptySignal = errors.New("welch: signal must not be empty")

func validateNSegments(k int) error {
	if k < 1 {
		return fmt.Errorf("welch: segment count must be >= 1: %d", k)
	}
	return nil
}

func validateOverlap(a float64) error {
	if a < 0 || a >= 1 {
		return fmt.Errorf("welch: overlap must be in [0,1): %f", a)
	}
	return nil
}

func validateSegmentSize(segmentSize, signalLen int) error {
	if segmentSize < 1 {
		return fmt.Errorf("welch: segment size must be >= 1: %d", segmentSize)
	}
	if segmentSize > signalLen {
		return fmt.Errorf("welch: segment size %d exceeds signal length %d", segmentSize, signalLen)
	}
	return nil
}

func validateStride(stride int) error {
	if stride < 1 {
		return fmt.Errorf("welch: segment stride must be >= 1: %d", stride)
	}
	return nil
}
