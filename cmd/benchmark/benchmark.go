package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"furrybot/pkg/engine"
	"furrybot/pkg/rules"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	fenStr     = flag.String("fen", rules.StartFEN, "position to benchmark")
	depth      = flag.Int("depth", engine.DefaultDepth, "search depth below each candidate")
	evals      = flag.Int("n", 1000000, "number of static evaluations per backend")
)

type backend struct {
	name string
	load func(fen string) (rules.Position, error)
}

var backends = []backend{
	{"notnil", func(fen string) (rules.Position, error) { return rules.NewNotnilFEN(fen) }},
	{"dragon", func(fen string) (rules.Position, error) { return rules.NewDragonFEN(fen) }},
}

func main() {
	// Setup Profiling
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	fmt.Println("----BEGIN FURRYBOT BENCHMARK----")
	for _, b := range backends {
		pos, err := b.load(*fenStr)
		if err != nil {
			log.Fatal(err)
		}
		benchmarkStaticEval(b.name, pos, *evals)
		benchmarkSearch(b.name, pos, *depth)
	}
	fmt.Println("----END  FURRYBOT  BENCHMARK----")
}

// benchmarkStaticEval evaluates the children of pos round robin
func benchmarkStaticEval(name string, pos rules.Position, n int) {
	moves := pos.LegalMoves()
	if len(moves) == 0 || n <= 0 {
		fmt.Printf("[EVAL %s] nothing to evaluate\n", name)
		return
	}
	fmt.Printf("[EVAL %s] Evaluating %d positions\n", name, n)
	eng := engine.NewEngine()
	start := time.Now()
	for i := 0; i < n; i++ {
		undo := pos.Apply(moves[i%len(moves)])
		eng.Evaluate(pos, 0)
		undo()
	}
	elapsed := time.Since(start)
	fmt.Printf("[EVAL %s] %d evaluations in %v (%.0f/s)\n", name, n, elapsed, float64(n)/elapsed.Seconds())
}

func benchmarkSearch(name string, pos rules.Position, depth int) {
	eng := engine.NewEngine()
	eng.Depth = depth
	start := time.Now()
	choice := eng.Choose(pos)
	elapsed := time.Since(start)
	if choice == nil {
		fmt.Printf("[SEARCH %s] no legal moves\n", name)
		return
	}
	fmt.Printf("[SEARCH %s] %s score:%d visited:%d evaluated:%d in %v\n",
		name, choice.UCI, choice.Score, eng.Visited, eng.EvaluatedNodes, elapsed)
}
