package chartopt

// RegisteredChart pairs a chart descriptor with the renderer's redraw hook.
// Redraw is invoked after an in-place optimization touched at least one of
// the chart's datasets; a nil hook is allowed and skipped.
type RegisteredChart struct {
	Name   string
	Chart  *ChartDescriptor
	Redraw func()
}

// ChartRegistry is an explicit collection of the charts one dashboard owns.
// It replaces a process-global chart map so multiple independent dashboards
// can run in one process, each with its own registry and orchestrator.
// Not goroutine-safe; a registry belongs to a single dashboard loop.
type ChartRegistry struct {
	byName map[string]*RegisteredChart
	order  []string
}

// NewChartRegistry creates an empty registry.
func NewChartRegistry() *ChartRegistry {
	return &ChartRegistry{byName: make(map[string]*RegisteredChart)}
}

// Register adds or replaces a chart under the given name. Replacing keeps
// the original registration order.
func (r *ChartRegistry) Register(name string, chart *ChartDescriptor, redraw func()) {
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = &RegisteredChart{Name: name, Chart: chart, Redraw: redraw}
}

// Get returns the registered chart or nil.
func (r *ChartRegistry) Get(name string) *RegisteredChart {
	return r.byName[name]
}

// Remove deletes a chart from the registry.
func (r *ChartRegistry) Remove(name string) {
	if _, exists := r.byName[name]; !exists {
		return
	}
	delete(r.byName, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Charts returns the registered charts in registration order.
func (r *ChartRegistry) Charts() []*RegisteredChart {
	out := make([]*RegisteredChart, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of registered charts.
func (r *ChartRegistry) Len() int {
	return len(r.byName)
}
