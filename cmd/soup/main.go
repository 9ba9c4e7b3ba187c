package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"yagol/internal/soup"
	"yagol/pkg/life"
)

func main() {
	cols := flag.Int("cols", 64, "grid columns")
	rows := flag.Int("rows", 64, "grid rows")
	first := flag.Int64("seed", 1, "first seed")
	count := flag.Int("count", 100, "number of seeds to run")
	steps := flag.Int("steps", 2000, "step limit per seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	wrap := flag.Bool("wrap", false, "use toroidal edges")
	top := flag.Int("top", 10, "number of longest-lived seeds to print")
	flag.Parse()

	opts := soup.Options{
		Cols:     *cols,
		Rows:     *rows,
		Seeds:    soup.Seeds(*first, *count),
		MaxSteps: *steps,
		Workers:  *workers,
	}
	if *wrap {
		opts.Topology = life.Toroidal
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Running %d soups on %dx%d %s grids (%d workers, %d steps)\n",
		len(opts.Seeds), opts.Cols, opts.Rows, opts.Topology, opts.Workers, opts.MaxSteps)
	start := time.Now()
	results, err := soup.Run(ctx, opts)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	outcomes := map[soup.Outcome]int{}
	for _, res := range results {
		outcomes[res.Outcome]++
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Steps > results[j].Steps })

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		fmt.Printf("%2d) seed=%d steps=%d outcome=%s pop=%d->%d peak=%d\n",
			i+1, res.Seed, res.Steps, res.Outcome, res.InitialPopulation, res.FinalPopulation, res.PeakPopulation)
	}
	fmt.Printf("\nstagnant=%d extinct=%d running=%d\n",
		outcomes[soup.Stagnant], outcomes[soup.Extinct], outcomes[soup.Running])
}
