// Package personality holds the tunable knobs that shape root move
// selection and evaluation away from plain best-move search, plus their UCI
// option descriptors.
package personality

import "fmt"

// PersonalityParams configures both the evaluation oracle (SacrificeBias,
// TradeBias) and the root human-selection pipeline (everything else).
//
//	Field                Range        Meaning
//	CandidateMarginCp    0..400       max score gap from best to be a candidate
//	CandidateMovesMax    1..30        hard cap on candidate count
//	HumanSelect          bool         enable root sampling
//	HumanTemperature     0..200       softmax temperature x100
//	HumanNoiseCp         0..50        per-move multiplicative noise amplitude
//	RandomSeed           0..2^31-1    0 = nondeterministic
//	RiskAppetite         0..200       >100 prefers inferior-score candidates more
//	SacrificeBias        0..200       style knob applied via evaluation scaling
//	SimplicityBias       0..200       >100 penalizes inferior candidates extra
//	TradeBias            0..200       style knob applied via evaluation
//	HumanHardFloorCp     0..600       absolute floor from best
//	HumanOpeningSanity   0..200       opening edge-move penalty scale
//	HumanTopKOverride    0..10        0 = disabled
type PersonalityParams struct {
	CandidateMarginCp  int
	CandidateMovesMax  int
	HumanSelect        bool
	HumanTemperature   int
	HumanNoiseCp       int
	RandomSeed         uint64
	RiskAppetite       int
	SacrificeBias      int
	SimplicityBias     int
	TradeBias          int
	HumanHardFloorCp   int
	HumanOpeningSanity int
	HumanTopKOverride  int
}

// Default returns the "no personality" configuration: HumanSelect is off
// and every multiplier-centered knob sits at its neutral value of 100, so
// plain best-move search is reproduced exactly.
func Default() PersonalityParams {
	return PersonalityParams{
		CandidateMarginCp:  150,
		CandidateMovesMax:  5,
		HumanSelect:        false,
		HumanTemperature:   100,
		HumanNoiseCp:       0,
		RandomSeed:         0,
		RiskAppetite:       100,
		SacrificeBias:      100,
		SimplicityBias:     100,
		TradeBias:          100,
		HumanHardFloorCp:   150,
		HumanOpeningSanity: 100,
		HumanTopKOverride:  0,
	}
}

// clampInt clamps v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Validate clamps every field to its documented range in place, returning an
// error describing the first field whose raw value it had to clamp (the
// caller, e.g. a "setoption" handler, can log a warning and still use the
// clamped params).
func (p *PersonalityParams) Validate() error {
	var firstViolation string
	clamp := func(name string, v, lo, hi int) int {
		c := clampInt(v, lo, hi)
		if c != v && firstViolation == "" {
			firstViolation = fmt.Sprintf("%s=%d out of range [%d,%d], clamped to %d", name, v, lo, hi, c)
		}
		return c
	}

	p.CandidateMarginCp = clamp("CandidateMarginCp", p.CandidateMarginCp, 0, 400)
	p.CandidateMovesMax = clamp("CandidateMovesMax", p.CandidateMovesMax, 1, 30)
	p.HumanTemperature = clamp("HumanTemperature", p.HumanTemperature, 0, 200)
	p.HumanNoiseCp = clamp("HumanNoiseCp", p.HumanNoiseCp, 0, 50)
	p.RiskAppetite = clamp("RiskAppetite", p.RiskAppetite, 0, 200)
	p.SacrificeBias = clamp("SacrificeBias", p.SacrificeBias, 0, 200)
	p.SimplicityBias = clamp("SimplicityBias", p.SimplicityBias, 0, 200)
	p.TradeBias = clamp("TradeBias", p.TradeBias, 0, 200)
	p.HumanHardFloorCp = clamp("HumanHardFloorCp", p.HumanHardFloorCp, 0, 600)
	p.HumanOpeningSanity = clamp("HumanOpeningSanity", p.HumanOpeningSanity, 0, 200)
	p.HumanTopKOverride = clamp("HumanTopKOverride", p.HumanTopKOverride, 0, 10)
	if p.RandomSeed > 0x7FFFFFFF {
		p.RandomSeed &= 0x7FFFFFFF
		if firstViolation == "" {
			firstViolation = "RandomSeed out of range [0,2^31-1], masked to low 31 bits"
		}
	}

	if firstViolation != "" {
		return fmt.Errorf("personality: %s", firstViolation)
	}
	return nil
}
