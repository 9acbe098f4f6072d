package main

import (
	"fmt"
	"strings"
)

// SlotDetail holds one slot's rendered values for formatted output.
type SlotDetail struct {
	Slot      int
	Raw       int
	Effective int
	BuffPct   float64
	Relation  string
}

// buildDetails flattens a resolver result into per-slot rows. Slots above
// the anchor carry the minimum speed that keeps them acting first; slots
// below carry the maximum speed that keeps them acting later.
func buildDetails(anchorSlot int, buffs BuffSet, res Result) []SlotDetail {
	details := make([]SlotDetail, PartySize)
	for i := range details {
		d := &details[i]
		d.Slot = i + 1
		d.Raw = res.RawSpeeds[i]
		d.Effective = res.EffectiveSpeeds[i]
		d.BuffPct = buffs[i] * 100
		switch {
		case d.Slot < anchorSlot:
			d.Relation = "min to act before"
		case d.Slot > anchorSlot:
			d.Relation = "max to act after"
		default:
			d.Relation = "anchor"
		}
	}
	return details
}

// FormatResult produces the calculator's text output for one resolution.
func FormatResult(anchorSlot int, factor float64, buffs BuffSet, res Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "factor %.3f, anchor slot %d\n", factor, anchorSlot)
	fmt.Fprintf(&b, "%-5s %8s %10s %7s  %s\n", "Slot", "Raw", "Effective", "Buff", "Bound")
	for _, d := range buildDetails(anchorSlot, buffs, res) {
		fmt.Fprintf(&b, "%-5d %8d %10d %6.0f%%  %s\n",
			d.Slot, d.Raw, d.Effective, d.BuffPct, d.Relation)
	}

	return b.String()
}

// FormatTable renders a threshold sweep, one line per anchor speed.
func FormatTable(anchorSlot int, factor float64, rows []TableRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "factor %.3f, anchor slot %d\n", factor, anchorSlot)
	fmt.Fprintf(&b, "%8s |", "anchor")
	for s := 1; s <= PartySize; s++ {
		fmt.Fprintf(&b, " %7s", fmt.Sprintf("slot%d", s))
	}
	b.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%8d |", row.AnchorSpeed)
		for _, raw := range row.RawSpeeds {
			fmt.Fprintf(&b, " %7d", raw)
		}
		b.WriteString("\n")
	}

	return b.String()
}
