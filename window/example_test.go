package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-welch/window"
)

func ExampleGenerate() {
	w := window.Generate(window.TypeHann, 5)
	for _, v := range w {
		fmt.Printf("%.2f ", v)
	}
	fmt.Println()
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}

func ExampleNew() {
	w, err := window.New(window.TypeHamming, 32)
	if err != nil {
		panic(err)
	}

	fmt.Println(w)
	fmt.Println(len(w.Weights()))
	// Output:
	// hamming (32 samples)
	// 32
}

func ExampleEquivalentNoiseBandwidth() {
	enbw, _ := window.EquivalentNoiseBandwidth(window.Generate(window.TypeRectangular, 64))
	fmt.Printf("%.1f\n", enbw)
	// Output:
	// 1.0
}
