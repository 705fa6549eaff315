package lane

import "math"

// This file provides scalar float-to-integer conversion with hardware
// semantics: truncation toward zero, saturation at the integer range,
// and NaN converting to zero. Go's own conversion is implementation
// defined once the value is out of range, so the bounds are checked
// first.

// ConvertF32ToI32 truncates x toward zero and saturates to the int32
// range. NaN converts to 0.
func ConvertF32ToI32(x float32) int32 {
	if x != x {
		return 0
	}
	if x >= 2147483648 {
		return math.MaxInt32
	}
	if x <= -2147483648 {
		return math.MinInt32
	}
	return int32(x)
}

// ConvertF64ToI32 truncates x toward zero and saturates to the int32
// range. NaN converts to 0.
func ConvertF64ToI32(x float64) int32 {
	if x != x {
		return 0
	}
	if x >= 2147483648 {
		return math.MaxInt32
	}
	if x <= -2147483648 {
		return math.MinInt32
	}
	return int32(x)
}

// ConvertF64ToI64 truncates x toward zero and saturates to the int64
// range. NaN converts to 0.
func ConvertF64ToI64(x float64) int64 {
	if x != x {
		return 0
	}
	if x >= 9223372036854775808 {
		return math.MaxInt64
	}
	if x <= -9223372036854775808 {
		return math.MinInt64
	}
	return int64(x)
}
