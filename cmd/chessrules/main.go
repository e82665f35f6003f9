package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/chessrules/internal/fen"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw every position reachable in one move in movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft mode to the given depth")
	perftParallel = flag.Bool("perft.parallel", true, "walk root moves concurrently in perft mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepSeed  = flag.Uint64("step.seed", 1, "random playout seed in step mode")
	stepLimit = flag.Int("step.limit", 5000, "maximum plies in step mode")

	draw = flag.Bool("draw", true, "render boards with colors")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	f := fen.DefaultStartingPositionFEN
	if len(args) > 0 {
		f = strings.Join(args, " ")
	}
	switch {
	case *movegenRun:
		return movegen(f, *movegenDraw)
	case *perftDepth > 0:
		return perft(*perftDepth, f, *perftParallel)
	case *stepRun:
		return step(f, *stepSeed, *stepLimit)
	}
	flag.Usage()
	return nil
}
