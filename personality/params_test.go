package personality

import "testing"

func TestDefaultIsNeutral(t *testing.T) {
	d := Default()
	if d.HumanSelect {
		t.Fatalf("expected HumanSelect off by default")
	}
	for name, v := range map[string]int{
		"HumanTemperature":   d.HumanTemperature,
		"RiskAppetite":       d.RiskAppetite,
		"SacrificeBias":      d.SacrificeBias,
		"SimplicityBias":     d.SimplicityBias,
		"TradeBias":          d.TradeBias,
		"HumanOpeningSanity": d.HumanOpeningSanity,
	} {
		if v != 100 {
			t.Errorf("expected %s to default to neutral 100, got %d", name, v)
		}
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("expected Default() to already be valid, got %v", err)
	}
}

func TestValidateClampsOutOfRangeFields(t *testing.T) {
	p := Default()
	p.TradeBias = 9999
	p.CandidateMovesMax = -5
	p.HumanTopKOverride = 50

	err := p.Validate()
	if err == nil {
		t.Fatalf("expected Validate to report a clamp, got nil")
	}
	if p.TradeBias != 200 {
		t.Fatalf("expected TradeBias clamped to 200, got %d", p.TradeBias)
	}
	if p.CandidateMovesMax != 1 {
		t.Fatalf("expected CandidateMovesMax clamped to 1, got %d", p.CandidateMovesMax)
	}
	if p.HumanTopKOverride != 10 {
		t.Fatalf("expected HumanTopKOverride clamped to 10, got %d", p.HumanTopKOverride)
	}
}

func TestValidateMasksOversizedRandomSeed(t *testing.T) {
	p := Default()
	p.RandomSeed = 0xFFFFFFFFFFFFFFFF
	if err := p.Validate(); err == nil {
		t.Fatalf("expected Validate to flag an oversized RandomSeed")
	}
	if p.RandomSeed > 0x7FFFFFFF {
		t.Fatalf("expected RandomSeed masked to 31 bits, got %#x", p.RandomSeed)
	}
}

func TestValidateOnAlreadyValidParamsIsNoOp(t *testing.T) {
	p := Default()
	p.SacrificeBias = 150
	before := p
	if err := p.Validate(); err != nil {
		t.Fatalf("expected no error for already-valid params, got %v", err)
	}
	if p != before {
		t.Fatalf("expected Validate to leave already-valid params unchanged")
	}
}
