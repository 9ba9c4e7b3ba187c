package ui

import (
	"image"
	"strconv"
	"strings"
)

// Action is a user command issued from the control bar or the keyboard.
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionStep
	ActionClear
	ActionRandom
	ActionColor
	ActionSpeed
	ActionSize
	ActionTopology
	ActionQuit
)

const (
	buttonSpacingX = 16
	buttonYOffset  = 35
	buttonWidth    = 64
	buttonHeight   = 28
)

// barActions is the left-to-right button order.
var barActions = []Action{
	ActionPlay, ActionStep, ActionClear, ActionRandom,
	ActionColor, ActionSpeed, ActionSize, ActionTopology, ActionQuit,
}

// BarState is the simulation state reflected in the button labels.
type BarState struct {
	Playing  bool
	Palette  string
	Speed    int
	CellSize string
	Topology string
}

// Button is one control bar entry.
type Button struct {
	Action Action
	Rect   image.Rectangle
	Label  string
}

// Bar lays out the control buttons along the bottom of the surface and
// turns pointer presses into actions.
type Bar struct {
	buttons []Button
	pressed Action
	hover   Action
}

// NewBar returns a bar with every button at the origin row.
func NewBar() *Bar {
	b := &Bar{buttons: make([]Button, len(barActions))}
	for i, a := range barActions {
		b.buttons[i].Action = a
	}
	b.Layout(buttonYOffset)
	b.SetState(BarState{})
	return b
}

// Buttons returns the laid-out buttons.
func (b *Bar) Buttons() []Button { return b.buttons }

// Layout positions the buttons for a surface of the given height.
func (b *Bar) Layout(surfaceH int) {
	x := buttonSpacingX
	y := surfaceH - buttonYOffset
	for i := range b.buttons {
		b.buttons[i].Rect = image.Rect(x, y, x+buttonWidth, y+buttonHeight)
		x += buttonWidth + buttonSpacingX
	}
}

// SetState refreshes the button labels.
func (b *Bar) SetState(s BarState) {
	for i := range b.buttons {
		b.buttons[i].Label = label(b.buttons[i].Action, s)
	}
}

// Hit returns the action of the button strictly containing (x, y).
func (b *Bar) Hit(x, y int) Action {
	for _, btn := range b.buttons {
		r := btn.Rect
		if x > r.Min.X && x < r.Max.X && y > r.Min.Y && y < r.Max.Y {
			return btn.Action
		}
	}
	return ActionNone
}

// Hover records the button under the pointer for highlighting.
func (b *Bar) Hover(x, y int) { b.hover = b.Hit(x, y) }

// Hovered returns the button under the pointer, if any.
func (b *Bar) Hovered() Action { return b.hover }

// Press starts a click. It reports whether the press landed on a button.
func (b *Bar) Press(x, y int) bool {
	b.pressed = b.Hit(x, y)
	return b.pressed != ActionNone
}

// Release completes a click. A click fires only when press and release land
// on the same button.
func (b *Bar) Release(x, y int) Action {
	pressed := b.pressed
	b.pressed = ActionNone
	if pressed == ActionNone || b.Hit(x, y) != pressed {
		return ActionNone
	}
	return pressed
}

func label(a Action, s BarState) string {
	switch a {
	case ActionPlay:
		if s.Playing {
			return "Stop"
		}
		return "Play"
	case ActionStep:
		return "Step"
	case ActionClear:
		return "Clear"
	case ActionRandom:
		return "Random"
	case ActionColor:
		if s.Palette == "random" {
			return "Multi"
		}
		return title(s.Palette)
	case ActionSpeed:
		return "Speed " + strconv.Itoa(s.Speed)
	case ActionSize:
		return title(s.CellSize)
	case ActionTopology:
		if s.Topology == "toroidal" {
			return "Wrap"
		}
		return "Edges"
	case ActionQuit:
		return "Quit"
	}
	return ""
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
