// Package fit holds the degree-1 least-squares estimator used for the sweep trend lines.
package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrLengthMismatch = errors.New("x and y lengths differ")
	ErrTooFewPoints   = errors.New("need at least two points")
	ErrNonFinite      = errors.New("non-finite value")
	ErrZeroVariance   = errors.New("x has zero variance")
)

// Line is y = Slope*x + Intercept.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Linear returns the ordinary least-squares line through (xs[i], ys[i]).
func Linear(xs, ys []float64) (Line, error) {
	if len(xs) != len(ys) {
		return Line{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return Line{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(xs))
	}
	if floats.HasNaN(xs) || floats.HasNaN(ys) || hasInf(xs) || hasInf(ys) {
		return Line{}, ErrNonFinite
	}
	if floats.Min(xs) == floats.Max(xs) {
		return Line{}, fmt.Errorf("%w: all x = %g", ErrZeroVariance, xs[0])
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Line{Slope: beta, Intercept: alpha}, nil
}

func hasInf(v []float64) bool {
	for _, x := range v {
		if math.IsInf(x, 0) {
			return true
		}
	}
	return false
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// Evaluate returns the line evaluated at every x, same length as xs.
func (l Line) Evaluate(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = l.At(x)
	}
	return out
}

// Root returns the x where the line crosses zero; false for a horizontal line.
func (l Line) Root() (float64, bool) {
	if l.Slope == 0 {
		return 0, false
	}
	return -l.Intercept / l.Slope, true
}

func (l Line) String() string {
	return fmt.Sprintf("y = %g*x %+g", l.Slope, l.Intercept)
}
