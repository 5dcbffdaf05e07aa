// Package num provides small numeric helpers: integer ranges, decimal
// rounding to a precision, clamping, and sign/whole/fraction decomposition.
//
//	num.Range(1, 16)        // → [1 2 … 15]
//	num.Round(1.005, 2)     // → 1.01
//	num.Clamp(12, 0, 10)    // → 10
//	num.GCD(12, 18)         // → 6
package num
