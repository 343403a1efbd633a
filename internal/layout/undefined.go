package layout

import "math"

// undefined is the sentinel used throughout the engine for "unset / auto".
// A NaN value denotes that a dimension, position offset, or spacing edge
// was never given an explicit value by the host.
var undefined = float32(math.NaN())

// tolerance is the absolute difference below which two floats are treated
// as equal for cache-reuse and change-detection purposes.
const tolerance = float32(1e-4)

// isUndefined reports whether v is the "unset" sentinel.
func isUndefined(v float32) bool {
	return v != v // NaN is the only float that is not equal to itself
}

// isDefined reports whether v carries an explicit value.
func isDefined(v float32) bool {
	return !isUndefined(v)
}

// floatsEqual reports whether a and b are equal within tolerance. Two
// undefined values are considered equal; an undefined value never equals a
// defined one.
func floatsEqual(a, b float32) bool {
	if isUndefined(a) || isUndefined(b) {
		return isUndefined(a) && isUndefined(b)
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < tolerance
}

// isDefinedAndPositive reports whether v is defined and non-negative, the
// meaning of "defined" for style dimensions throughout §4.5.
func isDefinedAndPositive(v float32) bool {
	return isDefined(v) && v >= 0
}
