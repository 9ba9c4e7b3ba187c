package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeChoice denotes an index into a fixed list of named options.
	ParamTypeChoice ParamType = "choice"
	// ParamTypeFloat denotes floating point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single value exposed by the engine. Choice
// parameters carry the option index in Value.
type Parameter struct {
	Key      string
	Label    string
	Type     ParamType
	Value    string
	Options  []string
	ReadOnly bool
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of parameters.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key across all groups.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// Display returns the human-readable value, resolving choice indices to
// their option names.
func (p Parameter) Display() string {
	if p.Type != ParamTypeChoice {
		return p.Value
	}
	for i, opt := range p.Options {
		if strconv.Itoa(i) == p.Value {
			return opt
		}
	}
	return p.Value
}

// ParameterControl describes an adjustable integer or choice parameter that
// the HUD exposes with -/+ buttons. Choice controls wrap around.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Min int
	Max int
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer and choice
// parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
