// Command searchbench runs a fixed-depth search repeatedly against a
// position, for timing comparisons across engine changes and optional
// CPU/heap profiling.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"humanchess/board"
	"humanchess/personality"
	"humanchess/search"
)

func main() {
	depthFlag := flag.Int("depth", 10, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	hashMB := flag.Int("hash", 64, "transposition table size in MB")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	if *depthFlag <= 0 {
		log.Fatalf("depth must be positive, got %d", *depthFlag)
	}

	var cpuFile *os.File
	var err error
	if *cpuProfile != "" {
		cpuFile, err = os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	fen := board.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}

	depth := *depthFlag
	repeat := *repeatFlag
	params := personality.Default()

	fmt.Printf("searchbench: fen=%q depth=%d repeat=%d\n", fen, depth, repeat)

	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		b, err := board.ParseFEN(fen)
		if err != nil {
			log.Fatalf("ParseFEN: %v", err)
		}

		ctx := search.NewContext(*hashMB)
		ctx.Time.Start(0, 0, 0, true)

		iterStart := time.Now()
		result := search.Run(ctx, b, search.Options{MaxDepth: depth, UseCustomDepth: true}, &params, func(string) {})
		iterElapsed := time.Since(iterStart)

		fmt.Printf("iteration %d: bestmove %v score=%d nodes=%d time=%v\n",
			i+1, result.BestMove, result.Score, result.Nodes, iterElapsed)
	}
	totalElapsed := time.Since(startAll)
	fmt.Printf("total time: %v\n", totalElapsed)

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
	}
}
