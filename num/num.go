package num

import (
	"cmp"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sequences
// ─────────────────────────────────────────────────────────────────────────────

// Range returns the integers from start up to, but not including, end.
//
//	Range(4)         // [0 1 2 3]
//	Range(1, 5)      // [1 2 3 4]
//	Range(0, 20, 5)  // [0 5 10 15]
//	Range(4, 0)      // [4 3 2 1]   step defaults to -1 when start > end
//	Range(1, 4, 0)   // [1 1 1]
//
// A step pointing away from end, or any other number of arguments, yields an
// empty slice.
func Range(args ...int) []int {
	var start, end, step int
	switch len(args) {
	case 1:
		end = args[0]
	case 2:
		start, end = args[0], args[1]
	case 3:
		start, end, step = args[0], args[1], args[2]
	default:
		return []int{}
	}
	if len(args) < 3 {
		step = 1
		if start > end {
			step = -1
		}
	}

	div := step
	if div == 0 {
		div = 1
	}
	n := max(0, int(math.Ceil(float64(end-start)/float64(div))))
	out := make([]int, n)
	for i := range out {
		out[i] = start + i*step
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Rounding
// ─────────────────────────────────────────────────────────────────────────────

// Round rounds x to precision decimal places; a negative precision rounds to
// the left of the decimal point.
//
//	Round(4.006, 2)  // 4.01
//	Round(1.005, 2)  // 1.01
//	Round(4060, -2)  // 4100
func Round(x float64, precision int) float64 { return roundWith(math.Round, x, precision) }

// Ceil rounds x up to precision decimal places.
func Ceil(x float64, precision int) float64 { return roundWith(math.Ceil, x, precision) }

// Floor rounds x down to precision decimal places.
func Floor(x float64, precision int) float64 { return roundWith(math.Floor, x, precision) }

// roundWith shifts the decimal exponent instead of multiplying by a power of
// ten, so 1.005 is rounded as 100.5 and not as 100.49999999999999.
func roundWith(f func(float64) float64, x float64, precision int) float64 {
	if precision == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return f(x)
	}
	return shift(f(shift(x, precision)), -precision)
}

func shift(x float64, places int) float64 {
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	e, _ := strconv.Atoi(exp)
	v, _ := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(e+places), 64)
	return v
}

// Clamp limits v to the inclusive range [lower, upper].
func Clamp[T cmp.Ordered](v, lower, upper T) T {
	return min(max(v, lower), upper)
}

// InRange reports whether start <= n < end. The bounds are swapped when
// start > end.
func InRange(n, start, end float64) bool {
	if start > end {
		start, end = end, start
	}
	return n >= start && n < end
}

// ─────────────────────────────────────────────────────────────────────────────
// Decomposition
// ─────────────────────────────────────────────────────────────────────────────

// MultipleOf reports whether n / k is a whole number. Nothing is a multiple
// of zero.
func MultipleOf(n, k float64) bool {
	if k == 0 {
		return false
	}
	q := n / k
	return !math.IsInf(q, 0) && q == math.Trunc(q)
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// IntegerPart returns the magnitude of x's whole part: IntegerPart(-23.47) is 23.
func IntegerPart(x float64) float64 { return math.Abs(math.Trunc(x)) }

// FractionalPart returns the digits after the decimal point of x's shortest
// decimal representation, as a non-negative number: FractionalPart(-23.47)
// is 0.47 exactly, not 0.4699999999999989.
//
// Together with [Sign] and [IntegerPart]:
//
//	Sign(x) * (IntegerPart(x) + FractionalPart(x)) // ≈ x
func FractionalPart(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return 0
	}
	_, digits, ok := strings.Cut(strconv.FormatFloat(x, 'f', -1, 64), ".")
	if !ok {
		return 0
	}
	f, _ := strconv.ParseFloat("0."+digits, 64)
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// Integers
// ─────────────────────────────────────────────────────────────────────────────

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) is 0.
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|, or 0 when either is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return abs(a/GCD(a, b)*b)
}

// Random returns a uniformly distributed integer in the inclusive range
// [lower, upper]. The bounds are swapped when lower > upper.
func Random(lower, upper int) int {
	if lower > upper {
		lower, upper = upper, lower
	}
	return lower + rand.Intn(upper-lower+1)
}

// RandomFloat returns a uniformly distributed float in [lower, upper).
func RandomFloat(lower, upper float64) float64 {
	if lower > upper {
		lower, upper = upper, lower
	}
	return lower + rand.Float64()*(upper-lower)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
