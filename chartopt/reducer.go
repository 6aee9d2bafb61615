package chartopt

import "fmt"

// Reducer shrinks a point slice to at most a budgeted number of
// representative points. Implementations MUST return the input slice
// unchanged when it is already within budget, and MUST NOT mutate it
// otherwise — callers decide whether to write the result back.
type Reducer interface {
	Reduce(points []Point, threshold int) []Point
	Name() string
}

// Reducer names accepted by NewReducer.
const (
	ReducerLTTB    = "lttb"
	ReducerBar     = "bar"
	ReducerScatter = "scatter"
	ReducerMinMax  = "minmax"
)

// ValidReducers is the set of recognized reducer names.
// Shared by NewReducer and bundle validation to avoid duplication.
var ValidReducers = map[string]bool{
	"":             true,
	ReducerLTTB:    true,
	ReducerBar:     true,
	ReducerScatter: true,
	ReducerMinMax:  true,
}

// IsValidReducer returns true if name is a recognized reducer name.
func IsValidReducer(name string) bool {
	return ValidReducers[name]
}

// NewReducer creates a Reducer by name. Empty string defaults to the
// min/max fallback. Panics on unrecognized names; validate first when the
// name comes from user input.
func NewReducer(name string, seed int64) Reducer {
	if !IsValidReducer(name) {
		panic(fmt.Sprintf("unknown reducer %q", name))
	}
	switch name {
	case ReducerLTTB:
		return &LTTBReducer{}
	case ReducerBar:
		return &BarAggregator{}
	case ReducerScatter:
		return NewScatterClusterer(seed)
	default: // "", "minmax"
		return &MinMaxReducer{}
	}
}
