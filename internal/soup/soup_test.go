package soup

import (
	"context"
	"errors"
	"slices"
	"testing"

	"yagol/pkg/life"
)

func TestSeeds(t *testing.T) {
	if got := Seeds(10, 3); !slices.Equal(got, []int64{10, 11, 12}) {
		t.Fatalf("Seeds = %v", got)
	}
	if got := Seeds(1, 0); got != nil {
		t.Fatalf("Seeds(1, 0) = %v, want nil", got)
	}
}

func TestRunDeterministic(t *testing.T) {
	opts := Options{Cols: 16, Rows: 16, Seeds: Seeds(1, 8), MaxSteps: 200, Workers: 4}
	a, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	opts.Workers = 1
	b, err := Run(context.Background(), opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !slices.Equal(a, b) {
		t.Fatalf("results differ between worker counts:\n%v\n%v", a, b)
	}
	for i, res := range a {
		if res.Seed != opts.Seeds[i] {
			t.Fatalf("result %d has seed %d, want %d", i, res.Seed, opts.Seeds[i])
		}
		if res.Steps > opts.MaxSteps {
			t.Fatalf("seed %d ran %d steps", res.Seed, res.Steps)
		}
		if res.Outcome == Running && res.Steps != opts.MaxSteps {
			t.Fatalf("seed %d stopped early without an outcome", res.Seed)
		}
		if res.Outcome == Extinct && res.FinalPopulation != 0 {
			t.Fatalf("seed %d extinct with %d cells", res.Seed, res.FinalPopulation)
		}
		if res.PeakPopulation < res.InitialPopulation || res.PeakPopulation > 16*16 {
			t.Fatalf("seed %d peak %d out of range", res.Seed, res.PeakPopulation)
		}
	}
}

func TestRunSingleCellDiesOut(t *testing.T) {
	res, err := Run(context.Background(), Options{Cols: 1, Rows: 1, Seeds: Seeds(0, 4), MaxSteps: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, r := range res {
		if r.Outcome != Extinct || r.Steps != 1 {
			t.Fatalf("1x1 bounded run = %+v, want extinct after 1 step", r)
		}
	}
}

func TestRunZeroStepLimit(t *testing.T) {
	res, err := Run(context.Background(), Options{Cols: 8, Rows: 8, Seeds: Seeds(5, 1)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res[0].Steps != 0 || res[0].Outcome != Running || res[0].FinalPopulation != res[0].InitialPopulation {
		t.Fatalf("zero-step run = %+v", res[0])
	}
}

func TestRunInvalidGrid(t *testing.T) {
	if _, err := Run(context.Background(), Options{Cols: 0, Rows: 4, Seeds: Seeds(1, 1)}); err == nil {
		t.Fatal("expected an error for a zero-width grid")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Options{Cols: 8, Rows: 8, Seeds: Seeds(1, 4), MaxSteps: 100, Topology: life.Toroidal})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
}

func TestOutcomeString(t *testing.T) {
	if Running.String() != "running" || Stagnant.String() != "stagnant" || Extinct.String() != "extinct" {
		t.Fatal("unexpected outcome names")
	}
}
