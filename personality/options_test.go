package personality

import "testing"

func TestOptionsAreSortedByName(t *testing.T) {
	opts := Options()
	for i := 1; i < len(opts); i++ {
		if opts[i].Name < opts[i-1].Name {
			t.Fatalf("options not sorted: %q before %q", opts[i-1].Name, opts[i].Name)
		}
	}
}

func TestFindOptionIsCaseSensitive(t *testing.T) {
	if _, ok := FindOption("TradeBias"); !ok {
		t.Fatalf("expected to find TradeBias")
	}
	if _, ok := FindOption("tradebias"); ok {
		t.Fatalf("expected FindOption to be case-sensitive")
	}
}

func TestUCIStringRendersSpinAndCheck(t *testing.T) {
	spin, ok := FindOption("TradeBias")
	if !ok {
		t.Fatal("TradeBias not found")
	}
	want := "option name TradeBias type spin default 100 min 0 max 200"
	if got := spin.UCIString(); got != want {
		t.Fatalf("UCIString() = %q, want %q", got, want)
	}

	check, ok := FindOption("HumanSelect")
	if !ok {
		t.Fatal("HumanSelect not found")
	}
	if got := check.UCIString(); got != "option name HumanSelect type check default false" {
		t.Fatalf("UCIString() = %q", got)
	}
}

func TestApplySetOptionClampsSpinValue(t *testing.T) {
	opt, _ := FindOption("TradeBias")
	p := Default()
	if err := opt.ApplySetOption(&p, "9999"); err != nil {
		t.Fatalf("ApplySetOption: %v", err)
	}
	if p.TradeBias != 200 {
		t.Fatalf("expected clamped TradeBias 200, got %d", p.TradeBias)
	}
}

func TestApplySetOptionParsesCheck(t *testing.T) {
	opt, _ := FindOption("HumanSelect")
	p := Default()
	if err := opt.ApplySetOption(&p, "true"); err != nil {
		t.Fatalf("ApplySetOption: %v", err)
	}
	if !p.HumanSelect {
		t.Fatalf("expected HumanSelect true after ApplySetOption")
	}
}

func TestApplySetOptionRejectsInvalidValue(t *testing.T) {
	opt, _ := FindOption("TradeBias")
	p := Default()
	if err := opt.ApplySetOption(&p, "not-a-number"); err == nil {
		t.Fatalf("expected error for non-numeric spin value")
	}
}
