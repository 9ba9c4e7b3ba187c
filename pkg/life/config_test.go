package life

import (
	"testing"
	"time"
)

func TestFromMapDefaults(t *testing.T) {
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", got)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"cap_x":    "100",
		"cap_y":    "80",
		"seed":     "-3",
		"topology": "toroidal",
		"palette":  "random",
		"size":     "large",
		"speed":    "5",
	})
	want := Config{CapacityX: 100, CapacityY: 80, Seed: -3, Topology: Toroidal, Palette: PaletteRandom, CellSize: CellLarge, Speed: 5}
	if c != want {
		t.Fatalf("FromMap = %+v, want %+v", c, want)
	}
}

func TestFromMapIgnoresInvalid(t *testing.T) {
	c := FromMap(map[string]string{
		"cap_x":    "-1",
		"seed":     "abc",
		"topology": "klein",
		"palette":  "teal",
		"size":     "huge",
		"speed":    "6",
	})
	if c != DefaultConfig() {
		t.Fatalf("FromMap with invalid values = %+v", c)
	}
}

func TestStepDelayClamps(t *testing.T) {
	if StepDelay(0) != 200*time.Millisecond {
		t.Fatalf("StepDelay(0) = %v", StepDelay(0))
	}
	if StepDelay(4) != 50*time.Millisecond {
		t.Fatalf("StepDelay(4) = %v", StepDelay(4))
	}
}
