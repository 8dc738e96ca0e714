package profile_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-strain/profile"
)

func Example() {
	// Synthetic strain profile with one crack-like peak at x = 3.7 m.
	n := 149
	x := make([]float64, n)
	strain := make([]float64, n)

	for i := range x {
		x[i] = float64(i) * 0.05
		d := x[i] - 3.7
		strain[i] = 800 * math.Exp(-d*d/0.5)
	}

	// Sensor embedded in concrete: Fischer tension stiffening.
	p, _ := profile.Concrete(x, strain)

	cracks, _ := p.CalculateWidths()

	fmt.Printf("Cracks found: %d\n", len(cracks))
	fmt.Printf("Location: %.2f\n", cracks[0].Location)

	width, _ := cracks[0].Width.Get()
	fmt.Printf("Width positive: %t\n", width > 0)

	// Output:
	// Cracks found: 1
	// Location: 3.70
	// Width positive: true
}

func Example_manualCorrection() {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8}
	strain := []float64{0, 400, 900, 400, 100, 400, 900, 400, 0}

	p, _ := profile.New(x, strain)

	cracks, _ := p.CalculateWidths()
	fmt.Printf("Detected: %d\n", len(cracks))

	// The finder missed nothing here, but a known crack can be added by
	// hand; it snaps to the nearest measured sample.
	cracks, _ = p.AddCracks(4.2)
	fmt.Printf("After manual add: %d\n", len(cracks))
	fmt.Printf("Snapped to: %.1f\n", cracks[1].Location)

	// Output:
	// Detected: 2
	// After manual add: 3
	// Snapped to: 4.0
}
