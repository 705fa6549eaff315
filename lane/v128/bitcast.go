package v128

import "github.com/govec/go-lanes/lane"

// BitCast reinterprets the register bytes as lanes of To. No bits change:
// round-tripping through any element type restores the original vector
// exactly.
// For example: BitCast[uint8](Set[uint32](1)) -> [1,0,0,0, 1,0,0,0, ...]
func BitCast[To, From lane.Lanes](v Vec[From]) Vec[To] {
	return Vec[To]{b: v.b}
}

// MaskBitCast reinterprets a mask as lanes of To. Valid only between types
// of the same lane width, which keeps every lane all-zero or all-one.
func MaskBitCast[To, From lane.Lanes](m Mask[From]) Mask[To] {
	return Mask[To]{b: m.b}
}
