// Package plasma implements the closed-form Langmuir probe diagnostics.
//
// All functions are pure. Inputs that would divide by zero or take the square
// root of a non-positive temperature return an error instead of Inf/NaN.
package plasma

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero         = errors.New("division by zero")
	ErrNonPositiveTemperature = errors.New("electron temperature must be positive")
)

const (
	// densityScale is the prefactor of the density estimate.
	densityScale = 3e21
	// curvatureScale normalizes the density into the second-derivative diagnostic.
	curvatureScale = 2.5e22
)

// Constants carries the physical constants a conversion needs.
type Constants struct {
	ElementaryCharge float64 // C
	Boltzmann        float64 // J/K
}

// SI is the constant set used across the tools.
var SI = Constants{
	ElementaryCharge: 1.602e-19,
	Boltzmann:        1.381e-23,
}

// EVToKelvin converts an energy in electron volts to the equivalent temperature in kelvin.
func (c Constants) EVToKelvin(ev float64) (float64, error) {
	if c.Boltzmann == 0 {
		return 0, fmt.Errorf("%w: Boltzmann constant is zero", ErrDivisionByZero)
	}
	return ev * c.ElementaryCharge / c.Boltzmann, nil
}

// ElectronTemp returns (iSp*iSm)/(iSp+iSm)/dI.
func ElectronTemp(iSp, iSm, dI float64) (float64, error) {
	sum := iSp + iSm
	if sum == 0 {
		return 0, fmt.Errorf("%w: I_sp + I_sm = 0", ErrDivisionByZero)
	}
	if dI == 0 {
		return 0, fmt.Errorf("%w: dI = 0", ErrDivisionByZero)
	}
	return (iSp * iSm) / sum / dI, nil
}

// ElectronDensity returns 3e21*(iSp+iSn)/sqrt(ElectronTemp(iSp, iSm, dI)).
//
// The temperature term uses its own second saturation current iSm, which is
// not necessarily iSn; callers pass both. The iSm argument is provisional:
// the formula as written names a current it is not given, and whether that is
// iSn or a separate I_sm is still open. Pass iSm == iSn to get the reading
// where the temperature reuses the density's current.
func ElectronDensity(iSp, iSn, iSm, dI float64) (float64, error) {
	te, err := ElectronTemp(iSp, iSm, dI)
	if err != nil {
		return 0, err
	}
	if te <= 0 {
		return 0, fmt.Errorf("%w: T_e = %g", ErrNonPositiveTemperature, te)
	}
	return densityScale * (iSp + iSn) / math.Sqrt(te), nil
}

// D2IdU2 returns ElectronDensity(iSp, iSn, iSm, dI) / (2.5e22*p).
func D2IdU2(p, iSp, iSn, iSm, dI float64) (float64, error) {
	if p == 0 {
		return 0, fmt.Errorf("%w: p = 0", ErrDivisionByZero)
	}
	ne, err := ElectronDensity(iSp, iSn, iSm, dI)
	if err != nil {
		return 0, err
	}
	return ne / (curvatureScale * p), nil
}
