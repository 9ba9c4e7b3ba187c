package ui

import (
	"image"
	"strconv"

	"yagol/pkg/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	controlsTop    = panelPadding + headerBaseline + 10
)

// adjust returns the value one step in direction from current. Int controls
// clamp at their bounds, choice controls wrap around.
func adjust(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 || ctrl.Max < ctrl.Min {
		return current, false
	}
	target := current + direction
	switch ctrl.Type {
	case core.ParamTypeChoice:
		span := ctrl.Max - ctrl.Min + 1
		target = ctrl.Min + ((target-ctrl.Min)%span+span)%span
	default:
		if target < ctrl.Min {
			target = ctrl.Min
		}
		if target > ctrl.Max {
			target = ctrl.Max
		}
	}
	return target, target != current
}

// refreshControls copies values from the snapshot into the control states.
func refreshControls(states []hudControlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Display()
		state.hasValue = true
	}
}

// layoutControls stacks the controls below the panel header, with the -/+
// buttons right-aligned inside a panel of the given width.
func layoutControls(states []hudControlState, width int) {
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
