package main

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds surfaced by ResolveWithBuffs. Propagate stays validation-free
// by contract; the resolver is the hardened entry point.
var (
	ErrInvalidSlot = errors.New("anchor slot outside party range")
	ErrInvalidBuff = errors.New("buff multiplier must be positive")
)

// Result carries per-slot boundary speeds in both speed spaces, slot 1 first.
type Result struct {
	RawSpeeds       [PartySize]int `json:"rawSpeeds"`
	EffectiveSpeeds [PartySize]int `json:"effectiveSpeeds"`
}

// ResolveWithBuffs computes every slot's boundary raw (pre-buff) speed from
// the anchor slot's raw speed and each slot's buff multiplier.
//
// The propagation runs in effective-speed space: the anchor's effective speed
// is floor(anchorRaw × buff), Propagate fills in the other slots, and each
// slot's raw speed is recovered as floor(effective ÷ buff). The anchor's raw
// speed is echoed from the input rather than re-derived, so it never
// double-rounds.
//
// Final effective speeds are re-floored from the raw speeds for all four
// slots. The re-floored value can drift a unit below the propagated one when
// a buff doesn't divide evenly; the page has always displayed the re-floored
// value, so that one is authoritative.
func ResolveWithBuffs(anchorSlot, anchorRaw int, factor float64, buffs BuffSet) (Result, error) {
	if anchorSlot < 1 || anchorSlot > PartySize {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSlot, anchorSlot)
	}
	for i, b := range buffs {
		if !(b > 0) { // also rejects NaN
			return Result{}, fmt.Errorf("%w: slot %d has %v", ErrInvalidBuff, i+1, b)
		}
	}

	anchorEff := int(math.Floor(float64(anchorRaw) * buffs[anchorSlot-1]))
	eff := Propagate(anchorSlot, anchorEff, factor)

	var res Result
	for i := range eff {
		if i == anchorSlot-1 {
			res.RawSpeeds[i] = anchorRaw
			continue
		}
		res.RawSpeeds[i] = int(math.Floor(float64(eff[i]) / buffs[i]))
	}
	for i := range res.RawSpeeds {
		res.EffectiveSpeeds[i] = int(math.Floor(float64(res.RawSpeeds[i]) * buffs[i]))
	}
	return res, nil
}
