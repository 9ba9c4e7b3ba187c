package soup

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"yagol/internal/stats"
	"yagol/pkg/life"
)

// Outcome is how a soup run ended.
type Outcome int

const (
	// Running means the step limit was reached first.
	Running Outcome = iota
	// Stagnant means the grid settled into a still life or short cycle.
	Stagnant
	// Extinct means no live cells remain.
	Extinct
)

func (o Outcome) String() string {
	switch o {
	case Stagnant:
		return "stagnant"
	case Extinct:
		return "extinct"
	}
	return "running"
}

// cancelCheckEvery is how many steps run between context checks.
const cancelCheckEvery = 64

// Options configures a batch of soup runs.
type Options struct {
	Cols, Rows int
	Seeds      []int64
	MaxSteps   int
	Workers    int
	Topology   life.Topology
}

// Result summarizes one seed.
type Result struct {
	Seed              int64
	Steps             int
	InitialPopulation int
	FinalPopulation   int
	PeakPopulation    int
	Outcome           Outcome
}

// Seeds returns count consecutive seeds starting at first.
func Seeds(first int64, count int) []int64 {
	if count <= 0 {
		return nil
	}
	out := make([]int64, count)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}

// Run evolves one random grid per seed until it stagnates, dies out or hits
// the step limit. Results are returned in seed order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return nil, errors.Errorf("[Run] invalid grid %dx%d", opts.Cols, opts.Rows)
	}
	if opts.MaxSteps < 0 {
		return nil, errors.Errorf("[Run] invalid step limit %d", opts.MaxSteps)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range opts.Seeds {
		g.Go(func() error {
			res, err := runOne(ctx, opts, seed)
			if err != nil {
				return errors.Wrapf(err, "[Run] seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, opts Options, seed int64) (Result, error) {
	cfg := life.DefaultConfig()
	cfg.CapacityX = opts.Cols
	cfg.CapacityY = opts.Rows
	cfg.Seed = seed
	cfg.Topology = opts.Topology
	cfg.CellSize = life.CellSmall

	w, h := life.CellSmall.Pixels()
	surface := life.FixedSurface{
		W: opts.Cols * (w + life.SpacingX),
		H: (opts.Rows + life.CellSmall.ReservedRows()) * (h + life.SpacingY),
	}
	e := life.New(cfg, surface)
	if err := e.Initialize(); err != nil {
		return Result{}, err
	}

	st := stats.New()
	res := Result{Seed: seed, InitialPopulation: e.Population()}
	res.PeakPopulation = res.InitialPopulation
	for res.Steps < opts.MaxSteps {
		if res.Steps%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		e.Step()
		res.Steps++
		st.Observe(e, 0)
		if st.Extinct() {
			res.Outcome = Extinct
			break
		}
		if st.Stagnant() {
			res.Outcome = Stagnant
			break
		}
	}
	res.FinalPopulation = e.Population()
	if st.PeakPopulation > res.PeakPopulation {
		res.PeakPopulation = st.PeakPopulation
	}
	return res, nil
}
