package v512

import "github.com/govec/go-lanes/lane"

// This file provides horizontal reductions. The *OfLanes forms broadcast
// the result to every lane; the Reduce* forms return the scalar. Integer
// sums wrap; float sums accumulate in lane order. Min and Max propagate
// NaN like their elementwise counterparts.

// ReduceSum returns the sum of all lanes.
// For example: [1,2,3,4,...] -> their total
func ReduceSum[T lane.Lanes](v Vec[T]) T {
	n := NumLanes[T]()
	sum := getLane[T](&v.b, 0)
	for i := 1; i < n; i++ {
		sum += getLane[T](&v.b, i)
	}
	return sum
}

// ReduceMin returns the smallest lane.
func ReduceMin[T lane.Lanes](v Vec[T]) T {
	n := NumLanes[T]()
	m := getLane[T](&v.b, 0)
	for i := 1; i < n; i++ {
		x := getLane[T](&v.b, i)
		if x != x || (m == m && x < m) {
			m = x
		}
	}
	return m
}

// ReduceMax returns the largest lane.
func ReduceMax[T lane.Lanes](v Vec[T]) T {
	n := NumLanes[T]()
	m := getLane[T](&v.b, 0)
	for i := 1; i < n; i++ {
		x := getLane[T](&v.b, i)
		if x != x || (m == m && x > m) {
			m = x
		}
	}
	return m
}

// SumOfLanes broadcasts the sum of all lanes.
func SumOfLanes[T lane.Lanes](v Vec[T]) Vec[T] {
	return Set(ReduceSum(v))
}

// MinOfLanes broadcasts the smallest lane.
func MinOfLanes[T lane.Lanes](v Vec[T]) Vec[T] {
	return Set(ReduceMin(v))
}

// MaxOfLanes broadcasts the largest lane.
func MaxOfLanes[T lane.Lanes](v Vec[T]) Vec[T] {
	return Set(ReduceMax(v))
}
