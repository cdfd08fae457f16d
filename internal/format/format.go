// Package format renders calculator numbers the way the wiki displays them.
package format

import (
	"math"
	"strconv"
)

// SigFigs is the number of significant figures shown for every value
const SigFigs = 3

// Truncate rounds x to SigFigs significant figures
func Truncate(x float64) float64 {
	return TruncateTo(x, SigFigs)
}

// TruncateTo rounds x to figs significant figures, half-up.
// Zero is returned as is since log10(0) is undefined.
func TruncateTo(x float64, figs int) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := figs - 1 - magnitude(math.Abs(x))
	if p >= 0 {
		scale := math.Pow10(p)
		return roundHalfUp(x*scale) / scale
	}
	// Dividing keeps whole multiples of 10^-p exact.
	scale := math.Pow10(-p)
	return roundHalfUp(x/scale) * scale
}

// magnitude returns floor(log10(a)) for a > 0, corrected for Log10 landing
// just below an exact power of ten.
func magnitude(a float64) int {
	e := int(math.Floor(math.Log10(a)))
	if e < 308 && math.Pow10(e+1) <= a {
		e++
	} else if math.Pow10(e) > a {
		e--
	}
	return e
}

// roundHalfUp rounds .5 towards +Inf, so -2.5 becomes -2
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Number is the shortest decimal text of x: 200, 0.5, 1.02
func Number(x float64) string {
	if x == 0 {
		return "0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Sig formats x truncated to SigFigs
func Sig(x float64) string {
	return Number(Truncate(x))
}

// HumanizeDuration converts seconds to s, m, h or d.
// A unit only escalates when the value is strictly above the threshold, so 60s stays "60s".
func HumanizeDuration(seconds float64) string {
	t := seconds
	unit := "s"
	if t > 60 {
		t /= 60
		unit = "m"
		if t > 60 {
			t /= 60
			unit = "h"
			if t > 24 {
				t /= 24
				unit = "d"
			}
		}
	}
	return Sig(t) + unit
}
