//go:build !lanedebug

package v128

import "github.com/govec/go-lanes/lane"

// Debug checks compile away unless the lanedebug build tag is set.

func assertAligned[T lane.Lanes](src []T)          {}
func assertShiftCount[T lane.Lanes](count int)     {}
func assertTableIndices[T lane.Lanes](ix Indices[T]) {}
