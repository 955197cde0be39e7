// Package core holds the frame clock and the tunable-parameter model shared by
// the demo window and its HUD.
package core

import (
	"math"
	"strconv"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter is a single read-only value shown on the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values the view exposes for one frame.
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

// ParameterControl describes a parameter the HUD can nudge up or down. Min and
// Max only apply when the matching Has flag is set.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// Nudge returns value moved one step in direction (-1 or +1) and clamped to
// the control's bounds. ok is false when the value would not change.
func (c ParameterControl) Nudge(value float64, direction int) (next float64, ok bool) {
	if direction == 0 {
		return value, false
	}
	step := c.step()
	next = value + float64(direction)*step
	if c.Type == ParamTypeInt {
		next = math.Round(next)
	}
	if c.HasMin && next < c.Min {
		next = c.Min
	}
	if c.HasMax && next > c.Max {
		next = c.Max
	}
	if math.Abs(next-value) < 1e-9 {
		return value, false
	}
	return next, true
}

// Format renders value with a precision that matches the step size.
func (c ParameterControl) Format(value float64) string {
	if c.Type == ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch step := c.step(); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func (c ParameterControl) step() float64 {
	if c.Step > 0 {
		return c.Step
	}
	if c.Type == ParamTypeInt {
		return 1
	}
	return 0.05
}

// ParameterProvider exposes the values shown on the HUD.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter applies a HUD adjustment. Integer controls are passed
// as whole numbers.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
