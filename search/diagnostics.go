package search

import "fmt"

// Diagnostics collects per-search counters for every pruning/cutoff
// mechanism, surfaced as UCI "info string" lines once a search finishes.
// Richer than a plain cutoff tally: it also tracks how often the
// transposition-table move was available at all, useful for judging move
// ordering quality independent of cutoff rate.
type Diagnostics struct {
	Nodes             uint64
	TTCutoffs         uint64
	TTMoveHits        uint64
	TTMoveMisses      uint64
	NullMoveCutoffs   uint64
	StaticNullCutoffs uint64
	FutilityPrunes    uint64
	LateMovePrunes    uint64
	BetaCutoffs       uint64
	QStandPatCutoffs  uint64
	QBetaCutoffs      uint64
	SingularExtensions uint64
	IIDProbes         uint64
}

func (d *Diagnostics) Reset() { *d = Diagnostics{} }

// Dump writes one "info string" line per counter, the format a UCI GUI's
// log pane will simply display as text.
func (d *Diagnostics) Dump(w func(string)) {
	w(fmt.Sprintf("info string nodes %d", d.Nodes))
	w(fmt.Sprintf("info string tt-cutoffs %d tt-move-hits %d tt-move-misses %d", d.TTCutoffs, d.TTMoveHits, d.TTMoveMisses))
	w(fmt.Sprintf("info string null-move-cutoffs %d static-null-cutoffs %d", d.NullMoveCutoffs, d.StaticNullCutoffs))
	w(fmt.Sprintf("info string futility-prunes %d late-move-prunes %d", d.FutilityPrunes, d.LateMovePrunes))
	w(fmt.Sprintf("info string beta-cutoffs %d singular-extensions %d iid-probes %d", d.BetaCutoffs, d.SingularExtensions, d.IIDProbes))
	w(fmt.Sprintf("info string qsearch-standpat-cutoffs %d qsearch-beta-cutoffs %d", d.QStandPatCutoffs, d.QBetaCutoffs))
}
