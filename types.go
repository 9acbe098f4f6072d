package main

import (
	"fmt"
	"strconv"
	"strings"
)

// PartySize is the fixed number of party members. Slots are numbered 1..4,
// slot 1 acting first and slot 4 last.
const PartySize = 4

// Built-in stability factors: the maximum ratio by which one slot's effective
// speed may exceed its slower neighbor's before the turn order can flip.
const (
	FactorStandard = 1.14
	FactorBoss     = 1.2
)

// BattleFactor resolves a battle preset name to its stability factor.
func BattleFactor(name string) (float64, bool) {
	f, ok := builtinPresets()[name]
	return f, ok
}

// BuffSet holds one speed buff multiplier per slot, indexed slot-1.
// A multiplier of 1.0 means unbuffed; the page's inputs are percents
// ([50,300] nominal) and are divided by 100 before reaching the core.
type BuffSet [PartySize]float64

// NeutralBuffs returns an all-100% buff set.
func NeutralBuffs() BuffSet {
	return BuffSet{1, 1, 1, 1}
}

// parseBuffPercents converts a comma-separated percent list like
// "130,100,100,120" into multipliers.
func parseBuffPercents(s string) (BuffSet, error) {
	parts := strings.Split(s, ",")
	if len(parts) != PartySize {
		return BuffSet{}, fmt.Errorf("want %d buff percents, got %d", PartySize, len(parts))
	}
	var out BuffSet
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return BuffSet{}, fmt.Errorf("buff %d: invalid percent %q", i+1, p)
		}
		if v <= 0 {
			return BuffSet{}, fmt.Errorf("buff %d: percent must be positive, got %v", i+1, v)
		}
		out[i] = v / 100
	}
	return out, nil
}
