package main

import "fmt"

// TableRow is one sweep entry: the resolver output for a single anchor raw
// speed.
type TableRow struct {
	AnchorSpeed     int            `json:"anchorSpeed"`
	RawSpeeds       [PartySize]int `json:"rawSpeeds"`
	EffectiveSpeeds [PartySize]int `json:"effectiveSpeeds"`
}

// BuildTable runs the resolver once per anchor raw speed in [from, to],
// stepping by step, and collects the rows in ascending anchor-speed order.
// Each row is an independent invocation of the same closed-form core.
func BuildTable(anchorSlot int, factor float64, buffs BuffSet, from, to, step int) ([]TableRow, error) {
	if from <= 0 || to < from {
		return nil, fmt.Errorf("sweep range [%d, %d] must satisfy 0 < from <= to", from, to)
	}
	if step < 1 {
		return nil, fmt.Errorf("sweep step must be at least 1, got %d", step)
	}

	rows := make([]TableRow, 0, (to-from)/step+1)
	for speed := from; speed <= to; speed += step {
		res, err := ResolveWithBuffs(anchorSlot, speed, factor, buffs)
		if err != nil {
			return nil, err
		}
		rows = append(rows, TableRow{
			AnchorSpeed:     speed,
			RawSpeeds:       res.RawSpeeds,
			EffectiveSpeeds: res.EffectiveSpeeds,
		})
	}
	return rows, nil
}
