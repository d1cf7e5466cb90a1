package personality

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// OptionType mirrors the small set of UCI option types this engine exposes:
// every PersonalityParams field is either a spin (integer range) or a check
// (boolean).
type OptionType int

const (
	OptionSpin OptionType = iota
	OptionCheck
)

// Option describes one UCI-settable PersonalityParams field: its name as it
// appears in "setoption name ... value ...", its type, default/min/max for
// spin options, and a setter that applies a parsed value to a params
// struct.
type Option struct {
	Name    string
	Type    OptionType
	Default int
	Min     int
	Max     int
	set     func(p *PersonalityParams, v int)
}

// Options lists every PersonalityParams UCI option, grounded on the
// teacher's commented-out "option name ... type spin default ... min ...
// max ..." lines in root uci.go, sorted by name so "uci" command output is
// stable run to run.
func Options() []Option {
	opts := []Option{
		{Name: "CandidateMarginCp", Type: OptionSpin, Default: 150, Min: 0, Max: 400,
			set: func(p *PersonalityParams, v int) { p.CandidateMarginCp = v }},
		{Name: "CandidateMovesMax", Type: OptionSpin, Default: 5, Min: 1, Max: 30,
			set: func(p *PersonalityParams, v int) { p.CandidateMovesMax = v }},
		{Name: "HumanSelect", Type: OptionCheck, Default: 0, Min: 0, Max: 1,
			set: func(p *PersonalityParams, v int) { p.HumanSelect = v != 0 }},
		{Name: "HumanTemperature", Type: OptionSpin, Default: 100, Min: 0, Max: 200,
			set: func(p *PersonalityParams, v int) { p.HumanTemperature = v }},
		{Name: "HumanNoiseCp", Type: OptionSpin, Default: 0, Min: 0, Max: 50,
			set: func(p *PersonalityParams, v int) { p.HumanNoiseCp = v }},
		{Name: "RandomSeed", Type: OptionSpin, Default: 0, Min: 0, Max: 0x7FFFFFFF,
			set: func(p *PersonalityParams, v int) { p.RandomSeed = uint64(v) }},
		{Name: "RiskAppetite", Type: OptionSpin, Default: 100, Min: 0, Max: 200,
			set: func(p *PersonalityParams, v int) { p.RiskAppetite = v }},
		{Name: "SacrificeBias", Type: OptionSpin, Default: 100, Min: 0, Max: 200,
			set: func(p *PersonalityParams, v int) { p.SacrificeBias = v }},
		{Name: "SimplicityBias", Type: OptionSpin, Default: 100, Min: 0, Max: 200,
			set: func(p *PersonalityParams, v int) { p.SimplicityBias = v }},
		{Name: "TradeBias", Type: OptionSpin, Default: 100, Min: 0, Max: 200,
			set: func(p *PersonalityParams, v int) { p.TradeBias = v }},
		{Name: "HumanHardFloorCp", Type: OptionSpin, Default: 150, Min: 0, Max: 600,
			set: func(p *PersonalityParams, v int) { p.HumanHardFloorCp = v }},
		{Name: "HumanOpeningSanity", Type: OptionSpin, Default: 100, Min: 0, Max: 200,
			set: func(p *PersonalityParams, v int) { p.HumanOpeningSanity = v }},
		{Name: "HumanTopKOverride", Type: OptionSpin, Default: 0, Min: 0, Max: 10,
			set: func(p *PersonalityParams, v int) { p.HumanTopKOverride = v }},
	}
	slices.SortFunc(opts, func(a, b Option) bool { return a.Name < b.Name })
	return opts
}

// UCIString renders the "option name ... type ..." line a UCI driver prints
// in response to the "uci" command.
func (o Option) UCIString() string {
	switch o.Type {
	case OptionCheck:
		def := "false"
		if o.Default != 0 {
			def = "true"
		}
		return fmt.Sprintf("option name %s type check default %s", o.Name, def)
	default:
		return fmt.Sprintf("option name %s type spin default %d min %d max %d", o.Name, o.Default, o.Min, o.Max)
	}
}

// ApplySetOption parses a "setoption" value string for this option and
// applies it to p, clamping spin values into [Min, Max]. Returns an error
// if value does not parse as the option's type.
func (o Option) ApplySetOption(p *PersonalityParams, value string) error {
	switch o.Type {
	case OptionCheck:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("personality: option %s expects true/false, got %q", o.Name, value)
		}
		v := 0
		if b {
			v = 1
		}
		o.set(p, v)
		return nil
	default:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("personality: option %s expects an integer, got %q", o.Name, value)
		}
		o.set(p, clampInt(n, o.Min, o.Max))
		return nil
	}
}

// FindOption looks up a UCI option by name, case-sensitive as the UCI
// protocol requires.
func FindOption(name string) (Option, bool) {
	for _, o := range Options() {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}
