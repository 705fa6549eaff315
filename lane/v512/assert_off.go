//go:build !lanedebug

package v512

import "github.com/govec/go-lanes/lane"

// Release builds compile the assertions away.

func assertAligned[T lane.Lanes](src []T) {}

func assertShiftCount[T lane.Lanes](count int) {}

func assertTableIndices[T lane.Lanes](ix Indices[T]) {}
