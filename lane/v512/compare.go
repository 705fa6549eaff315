package v512

import "github.com/govec/go-lanes/lane"

// This file provides lane-wise comparisons. Each produces a compact Mask
// with bit i set where the predicate holds for lane i. NaN lanes compare
// false for everything except Ne.

// Eq returns a mask of lanes where a == b.
func Eq[T lane.Lanes](a, b Vec[T]) Mask[T] {
	n := NumLanes[T]()
	var m Mask[T]
	for i := range n {
		setMaskLane(&m, i, getLane[T](&a.b, i) == getLane[T](&b.b, i))
	}
	return m
}

// Ne returns a mask of lanes where a != b.
func Ne[T lane.Lanes](a, b Vec[T]) Mask[T] {
	n := NumLanes[T]()
	var m Mask[T]
	for i := range n {
		setMaskLane(&m, i, getLane[T](&a.b, i) != getLane[T](&b.b, i))
	}
	return m
}

// Gt returns a mask of lanes where a > b.
func Gt[T lane.Lanes](a, b Vec[T]) Mask[T] {
	n := NumLanes[T]()
	var m Mask[T]
	for i := range n {
		setMaskLane(&m, i, getLane[T](&a.b, i) > getLane[T](&b.b, i))
	}
	return m
}

// Ge returns a mask of lanes where a >= b.
func Ge[T lane.Lanes](a, b Vec[T]) Mask[T] {
	n := NumLanes[T]()
	var m Mask[T]
	for i := range n {
		setMaskLane(&m, i, getLane[T](&a.b, i) >= getLane[T](&b.b, i))
	}
	return m
}

// Lt returns a mask of lanes where a < b, defined as Gt with the operands
// swapped.
func Lt[T lane.Lanes](a, b Vec[T]) Mask[T] {
	return Gt(b, a)
}

// Le returns a mask of lanes where a <= b, defined as Ge with the operands
// swapped.
func Le[T lane.Lanes](a, b Vec[T]) Mask[T] {
	return Ge(b, a)
}

// IsNaN returns a mask of lanes holding NaN.
func IsNaN[T lane.Floats](v Vec[T]) Mask[T] {
	n := NumLanes[T]()
	var m Mask[T]
	for i := range n {
		x := getLane[T](&v.b, i)
		setMaskLane(&m, i, x != x)
	}
	return m
}
