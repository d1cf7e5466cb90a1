package search

import "sync/atomic"

// Context owns every piece of mutable state one search needs: its
// transposition table, move-ordering tables, repetition stack, diagnostics,
// and time manager. Two concurrent searches never share a Context; the UCI
// driver keeps one Context for the session and reuses it for each "go"
// command, one search at a time, so there is no package-level mutable state to
// race on (the teacher kept all of this as package globals, which is fine
// for a single always-one-search-at-a-time process but does not generalize).
type Context struct {
	TT        *TranspositionTable
	Orderer   *MoveOrderer
	Repetition *RepetitionStack
	Diag      Diagnostics
	Time      TimeManager

	stop  atomic.Bool
	nodes uint64
}

// NewContext allocates a Context with a transposition table sized ttMB.
func NewContext(ttMB int) *Context {
	return &Context{
		TT:         NewTranspositionTable(ttMB),
		Orderer:    &MoveOrderer{},
		Repetition: &RepetitionStack{},
	}
}

// Stop requests that any in-flight search owned by this Context return as
// soon as it next checks, from the "stop" UCI command or a hard deadline.
func (c *Context) Stop() { c.stop.Store(true) }

// Stopped reports whether Stop has been called since the last ResetStop.
func (c *Context) Stopped() bool { return c.stop.Load() }

func (c *Context) ResetStop() { c.stop.Store(false) }

// ResetForNewGame clears every table that should not leak state across
// games (killers, history, counters, TT), called on the UCI "ucinewgame"
// command.
func (c *Context) ResetForNewGame() {
	c.TT.Clear()
	c.Orderer.ClearKillers()
	c.Orderer.ClearHistory()
	c.Diag.Reset()
}
