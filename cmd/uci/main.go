// Command uci runs the UCI line-protocol driver: it reads engine commands
// from stdin, runs searches on a worker goroutine so "stop"/"quit" stay
// responsive while a search is in flight, and writes "info"/"bestmove"
// lines to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"humanchess/board"
	"humanchess/eval"
	"humanchess/humanize"
	"humanchess/personality"
	"humanchess/search"
)

const engineName = "HumanChess 0.1"
const engineAuthor = "the humanchess project"

var hashSizeMB = flag.Int("hash", 64, "transposition table size in MB")

func main() {
	flag.Parse()
	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	d := &driver{
		out:    bufio.NewWriter(out),
		params: personality.Default(),
		ctx:    search.NewContext(*hashSizeMB),
		color:  isatty.IsTerminal(os.Stdout.Fd()),
	}
	d.b = board.MustParseFEN(board.StartFEN)
	d.ctx.Repetition.Reset(d.b.Hash(), d.b.HalfmoveClock())
	defer d.out.Flush()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "uci":
			d.handleUCI()
		case "isready":
			d.println("readyok")
		case "ucinewgame":
			d.handleNewGame()
		case "position":
			d.handlePosition(line)
		case "setoption":
			d.handleSetOption(line)
		case "go":
			d.handleGo(line)
		case "stop":
			d.ctx.Stop()
		case "quit":
			return nil
		default:
			d.infoString("unknown command: " + fields[0])
		}
		d.out.Flush()
	}
	return scanner.Err()
}

// driver holds everything the UCI loop needs across commands: the current
// game position, the search.Context it reuses for warm-start TT benefits,
// and the active personality configuration.
type driver struct {
	out    *bufio.Writer
	b      *board.Board
	ctx    *search.Context
	params personality.PersonalityParams
	color  bool

	searchDone chan struct{}
}

func (d *driver) println(s string) {
	fmt.Fprintln(d.out, s)
}

func (d *driver) infoString(s string) {
	line := "info string " + s
	if d.color {
		line = color.New(color.FgHiBlack).Sprint(line)
	}
	d.println(line)
}

func (d *driver) handleUCI() {
	d.println("id name " + engineName)
	d.println("id author " + engineAuthor)
	for _, opt := range personality.Options() {
		d.println(opt.UCIString())
	}
	d.println("option name Hash type spin default 64 min 1 max 4096")
	d.println("uciok")
}

func (d *driver) handleNewGame() {
	d.b = board.MustParseFEN(board.StartFEN)
	d.ctx.ResetForNewGame()
	d.ctx.Repetition.Reset(d.b.Hash(), d.b.HalfmoveClock())
}

// handleSetOption parses "setoption name <name> value <value>", where the
// name may itself contain spaces (UCI permits this, though none of this
// engine's option names do).
func (d *driver) handleSetOption(line string) {
	fields := strings.Fields(line)
	var nameParts, valueParts []string
	mode := ""
	for i := 1; i < len(fields); i++ {
		switch strings.ToLower(fields[i]) {
		case "name":
			mode = "name"
		case "value":
			mode = "value"
		default:
			switch mode {
			case "name":
				nameParts = append(nameParts, fields[i])
			case "value":
				valueParts = append(valueParts, fields[i])
			}
		}
	}
	name := strings.Join(nameParts, " ")
	value := strings.Join(valueParts, " ")

	if strings.EqualFold(name, "Hash") {
		if mb, err := strconv.Atoi(value); err == nil {
			d.ctx.TT.Resize(mb)
		}
		return
	}
	opt, ok := personality.FindOption(name)
	if !ok {
		d.infoString("unknown option " + name)
		return
	}
	if err := opt.ApplySetOption(&d.params, value); err != nil {
		d.infoString(err.Error())
	}
}

func (d *driver) handlePosition(line string) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		d.infoString("malformed position command")
		return
	}
	idx := 1
	switch strings.ToLower(fields[idx]) {
	case "startpos":
		d.b = board.MustParseFEN(board.StartFEN)
		idx++
	case "fen":
		idx++
		start := idx
		for idx < len(fields) && strings.ToLower(fields[idx]) != "moves" {
			idx++
		}
		fenStr := strings.Join(fields[start:idx], " ")
		b, err := board.ParseFEN(fenStr)
		if err != nil {
			d.infoString("invalid fen: " + err.Error())
			return
		}
		d.b = b
	default:
		d.infoString("invalid position subcommand")
		return
	}

	d.ctx.Repetition.Reset(d.b.Hash(), d.b.HalfmoveClock())

	if idx < len(fields) && strings.ToLower(fields[idx]) == "moves" {
		idx++
		for ; idx < len(fields); idx++ {
			mv, err := board.ParseUCIMove(d.b, fields[idx])
			if err != nil {
				d.infoString(fmt.Sprintf("move %s not found for position %s", fields[idx], d.b.ToFEN()))
				continue
			}
			d.b.MakeMove(mv)
			d.ctx.Repetition.Push(d.b.Hash(), d.b.HalfmoveClock())
		}
	}
}

func (d *driver) handleGo(line string) {
	if d.searchDone != nil {
		select {
		case <-d.searchDone:
		default:
			d.infoString("go ignored: a search is already in progress")
			return
		}
	}

	fields := strings.Fields(line)
	var wtime, btime, winc, binc, movetime, depth int
	useCustomDepth := false
	for i := 1; i < len(fields); i++ {
		switch strings.ToLower(fields[i]) {
		case "infinite":
			useCustomDepth = true
		case "wtime":
			i++
			if i < len(fields) {
				wtime, _ = strconv.Atoi(fields[i])
			}
		case "btime":
			i++
			if i < len(fields) {
				btime, _ = strconv.Atoi(fields[i])
			}
		case "winc":
			i++
			if i < len(fields) {
				winc, _ = strconv.Atoi(fields[i])
			}
		case "binc":
			i++
			if i < len(fields) {
				binc, _ = strconv.Atoi(fields[i])
			}
		case "movetime":
			i++
			if i < len(fields) {
				movetime, _ = strconv.Atoi(fields[i])
			}
		case "depth":
			i++
			if i < len(fields) {
				depth, _ = strconv.Atoi(fields[i])
				useCustomDepth = true
			}
		}
	}

	var remaining, increment int
	if d.b.SideToMove() == board.White {
		remaining, increment = wtime, winc
	} else {
		remaining, increment = btime, binc
	}
	if movetime > 0 {
		remaining, increment, useCustomDepth = movetime, 0, false
	}
	if remaining <= 0 && !useCustomDepth {
		remaining = 5000
	}

	phase := eval.GamePhase(d.b)
	d.ctx.Time.Start(remaining, increment, phase, useCustomDepth)

	opts := search.Options{
		MaxDepth:       depth,
		UseCustomDepth: useCustomDepth,
		MultiPV:        d.params.CandidateMovesMax,
	}

	params := d.params
	b := d.b.Clone()
	ply := b.Ply()
	done := make(chan struct{})
	d.searchDone = done
	go func() {
		defer close(done)
		result := search.Run(d.ctx, b, opts, &params, func(s string) { d.println(s); d.out.Flush() })
		d.ctx.Diag.Dump(d.println)
		best := result.BestMove
		if params.HumanSelect {
			if picked := humanize.Select(b, &params, ply); picked != board.NoMove {
				best = picked
			}
		}
		fmt.Fprintf(d.out, "bestmove %s\n", best.String())
		d.out.Flush()
	}()
}
