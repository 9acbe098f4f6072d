package main

import "math"

// Propagate derives the boundary speed of every party slot from a single
// anchor slot's value. It works in whatever speed space the anchor value is
// expressed in; ResolveWithBuffs feeds it effective speeds.
//
// The two directions are computed independently from the anchor outward.
// Slots above the anchor (faster, lower index) get the minimum value that
// still acts strictly before the next slot: floor(next × factor) + 1. Slots
// below get the maximum value that still acts strictly after the previous
// slot: floor(prev ÷ factor) − 1, each chained from its already-computed
// upper neighbor, never from the anchor directly.
//
// Floors are float64 floors, matching the page's Math.floor exactly
// (floor(1000×1.14) is 1139 in float64, not 1140). Downward values may go
// negative; they are returned unclamped.
//
// Callers keep anchorSlot in [1,PartySize] and factor above 1; there is no
// validation here.
func Propagate(anchorSlot, anchorValue int, factor float64) [PartySize]int {
	var out [PartySize]int
	out[anchorSlot-1] = anchorValue
	for slot := anchorSlot - 1; slot >= 1; slot-- {
		out[slot-1] = int(math.Floor(float64(out[slot])*factor)) + 1
	}
	for slot := anchorSlot + 1; slot <= PartySize; slot++ {
		out[slot-1] = int(math.Floor(float64(out[slot-2])/factor)) - 1
	}
	return out
}
