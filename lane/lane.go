// Package lane defines the element types shared by the fixed-width vector
// backends and the scalar kernels they delegate to.
//
// The backends themselves live in the v128 and v512 subpackages. Both expose
// the same operation vocabulary over value-type registers; callers pick a
// width (or ask PreferredWidth) and import the matching package:
//
//	import "github.com/govec/go-lanes/lane/v128"
//
//	a := v128.LoadU(data1)
//	b := v128.LoadU(data2)
//	v128.StoreU(v128.Add(a, b), out)
package lane

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	uint8 | uint16 | uint32 | uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Signed is a constraint for lane types that carry a sign: signed
// integers and floats.
type Signed interface {
	SignedInts | Floats
}

// Lanes is a constraint for all types that can be stored in vector lanes.
// The unions are exact (no approximation terms): the per-lane kernels
// dispatch on the concrete type and must cover every member.
type Lanes interface {
	Floats | Integers
}

// SizeOf returns the width of one lane of type T in bytes.
func SizeOf[T Lanes]() int {
	var z T
	switch any(z).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Lanes]() bool {
	var z T
	switch any(z).(type) {
	case int8, int16, int32, int64:
		return true
	}
	return false
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Lanes]() bool {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return true
	}
	return false
}
