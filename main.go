//go:build !lambda

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
)

// tuneOutput is the JSON-serializable result of a single resolution.
type tuneOutput struct {
	Battle          string         `json:"battle,omitempty"`
	Factor          float64        `json:"factor"`
	AnchorSlot      int            `json:"anchorSlot"`
	AnchorSpeed     int            `json:"anchorSpeed"`
	RawSpeeds       [PartySize]int `json:"rawSpeeds"`
	EffectiveSpeeds [PartySize]int `json:"effectiveSpeeds"`
}

const usage = `Usage: speed-tuner [flags]

Computes the boundary base speeds that keep a four-member party's turn order
stable around one known member (the anchor). Slots are numbered 1 (fastest)
to 4 (slowest).

Flags:
`

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	battle := flag.String("battle", "", "battle preset name (standard, boss, or a -presets entry)")
	factor := flag.Float64("factor", 0, "custom stability factor > 1, overrides -battle")
	anchor := flag.Int("anchor", 1, "anchor slot, 1 to 4")
	speed := flag.Int("speed", 0, "anchor raw speed before buffs")
	buffsArg := flag.String("buffs", "", "four buff percents, e.g. 130,100,100,120")
	partyPath := flag.String("party", "", "party request JSON file, overrides the input flags")
	presetPath := flag.String("presets", "", "YAML file merged over the built-in battle presets")
	from := flag.Int("from", 0, "sweep start anchor speed (requires -to)")
	to := flag.Int("to", 0, "sweep end anchor speed")
	step := flag.Int("step", defaults.SweepStep, "sweep anchor speed increment")
	jsonOut := flag.Bool("json", false, "output JSON instead of text")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	presets := builtinPresets()
	if *presetPath != "" {
		var err error
		presets, err = LoadPresets(*presetPath)
		if err != nil {
			fail("%v", err)
		}
	}

	var req PartyRequest
	if *partyPath != "" {
		b, err := os.ReadFile(*partyPath)
		if err != nil {
			fail("%v", err)
		}
		req, err = ParsePartyRequest(string(b))
		if err != nil {
			fail("%s: %v", *partyPath, err)
		}
	} else {
		if *speed <= 0 && *to == 0 {
			fail("anchor speed must be a positive number (-speed)")
		}
		if *factor != 0 && *factor <= 1 {
			fail("stability factor must be greater than 1, got %v", *factor)
		}
		req = PartyRequest{
			Battle: *battle,
			Factor: *factor,
			Anchor: *anchor,
			Speed:  *speed,
			Buffs:  NeutralBuffs(),
		}
		if *buffsArg != "" {
			buffs, err := parseBuffPercents(*buffsArg)
			if err != nil {
				fail("%v", err)
			}
			req.Buffs = buffs
		}
	}

	f := req.Factor
	battleName := ""
	if f == 0 {
		battleName = req.Battle
		if battleName == "" {
			battleName = defaults.Battle
		}
		var ok bool
		f, ok = presets[battleName]
		if !ok {
			fail("unknown battle type %q", battleName)
		}
	}

	if *to > 0 {
		rows, err := BuildTable(req.Anchor, f, req.Buffs, *from, *to, *step)
		if err != nil {
			fail("%v", err)
		}
		if *jsonOut {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.Encode(rows)
		} else {
			fmt.Print(FormatTable(req.Anchor, f, rows))
		}
		return
	}

	res, err := ResolveWithBuffs(req.Anchor, req.Speed, f, req.Buffs)
	if err != nil {
		fail("%v", err)
	}

	if *jsonOut {
		out := tuneOutput{
			Battle:          battleName,
			Factor:          f,
			AnchorSlot:      req.Anchor,
			AnchorSpeed:     req.Speed,
			RawSpeeds:       res.RawSpeeds,
			EffectiveSpeeds: res.EffectiveSpeeds,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(out)
	} else {
		fmt.Print(FormatResult(req.Anchor, f, req.Buffs, res))
	}
}
