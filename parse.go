package main

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// PartyRequest is the JSON input shared by the CLI -party file and the
// Lambda request body:
//
//	{"battle": "boss", "anchor": 2, "speed": 161, "buffs": [130, 100, 100, 120]}
//
// A "factor" key overrides "battle" with a custom stability factor. Buffs
// are percents; a missing buffs array means an unbuffed party.
type PartyRequest struct {
	Battle string  // preset name, empty when Factor is set directly
	Factor float64 // custom stability factor, takes precedence when > 0
	Anchor int     // anchor slot, 1..4
	Speed  int     // anchor raw speed before buffs
	Buffs  BuffSet // multipliers, converted from percent
}

// ParsePartyRequest parses and validates a party request. Validation here is
// the presentation layer's share of the contract: anchor speed must be a
// positive number, a custom factor must exceed 1, and buff percents must be
// four positive values. Anchor slot range and buff positivity are re-checked
// by the resolver.
func ParsePartyRequest(data string) (PartyRequest, error) {
	if !gjson.Valid(data) {
		return PartyRequest{}, fmt.Errorf("invalid JSON")
	}

	req := PartyRequest{
		Battle: gjson.Get(data, "battle").String(),
		Buffs:  NeutralBuffs(),
	}

	if f := gjson.Get(data, "factor"); f.Exists() {
		req.Factor = f.Float()
		if req.Factor <= 1 {
			return PartyRequest{}, fmt.Errorf("factor must be greater than 1, got %v", req.Factor)
		}
	}

	anchor := gjson.Get(data, "anchor")
	if !anchor.Exists() {
		return PartyRequest{}, fmt.Errorf("missing anchor slot")
	}
	req.Anchor = int(anchor.Int())

	speed := gjson.Get(data, "speed")
	if !speed.Exists() {
		return PartyRequest{}, fmt.Errorf("missing anchor speed")
	}
	req.Speed = int(speed.Int())
	if req.Speed <= 0 {
		return PartyRequest{}, fmt.Errorf("anchor speed must be positive, got %v", speed.Raw)
	}

	if buffs := gjson.Get(data, "buffs"); buffs.Exists() {
		var (
			n       int
			badSlot int
			badVal  float64
		)
		buffs.ForEach(func(_, v gjson.Result) bool {
			if n < PartySize {
				pct := v.Float()
				if pct <= 0 && badSlot == 0 {
					badSlot, badVal = n+1, pct
				}
				req.Buffs[n] = pct / 100
			}
			n++
			return true
		})
		if n != PartySize {
			return PartyRequest{}, fmt.Errorf("want %d buff percents, got %d", PartySize, n)
		}
		if badSlot != 0 {
			return PartyRequest{}, fmt.Errorf("buff %d: percent must be positive, got %v", badSlot, badVal)
		}
	}

	return req, nil
}
