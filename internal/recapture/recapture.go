// Package recapture implements the Lincoln-Petersen population estimate.
package recapture

import (
	"errors"
	"fmt"
	"math"
)

// ErrDivisionByZero is returned when no marked individuals were recaptured.
var ErrDivisionByZero = errors.New("cannot divide by zero")

// Estimate returns round(marked * caught / recaptured).
func Estimate(marked, caught, recaptured int) (int, error) {
	if recaptured == 0 {
		return 0, ErrDivisionByZero
	}
	return int(math.Round(float64(marked) * float64(caught) / float64(recaptured))), nil
}

// Formula is the worked form of an estimate shown next to the inputs.
type Formula struct {
	Marked, Caught, Recaptured int
}

// Numerator returns M x C.
func (f Formula) Numerator() int { return f.Marked * f.Caught }

// Denominator returns R.
func (f Formula) Denominator() int { return f.Recaptured }

// Estimate evaluates the formula.
func (f Formula) Estimate() (int, error) {
	return Estimate(f.Marked, f.Caught, f.Recaptured)
}

// String renders "N = (M × C) / R = num / den".
func (f Formula) String() string {
	return fmt.Sprintf("N = (%d × %d) / %d = %d / %d",
		f.Marked, f.Caught, f.Recaptured, f.Numerator(), f.Denominator())
}

// CountUp returns the displayed value at frame step of a count-up
// animation toward target spanning steps frames. The last frame and any
// frame past it show target exactly.
func CountUp(target, step, steps int) int {
	if steps <= 0 || step >= steps {
		return target
	}
	if step <= 0 {
		return 0
	}
	return int(math.Floor(float64(target) * float64(step) / float64(steps)))
}
