package chartopt

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OptimizerBundle holds unified optimizer configuration, loadable from a
// YAML file. Nil pointer fields mean "not set in YAML" — they do not
// override the built-in defaults.
type OptimizerBundle struct {
	// Signals replaces host profiling with a fixed snapshot when set.
	Signals *HostSignals `yaml:"signals"`
	// Seed drives scatter centroid selection; 0 keeps the default seed.
	Seed int64 `yaml:"seed"`
	// Trace selects the trace level ("none" or "decisions").
	Trace string `yaml:"trace"`
	// Thresholds overrides individual budget breakpoints.
	Thresholds ThresholdConfig `yaml:"thresholds"`
}

// ThresholdConfig holds optional budget overrides for the decision table.
type ThresholdConfig struct {
	Base        *int `yaml:"base"`
	Constrained *int `yaml:"constrained"`
	Severe      *int `yaml:"severe"`
	Large       *int `yaml:"large_dataset"`
	Medium      *int `yaml:"medium_dataset"`
}

// LoadOptimizerBundle reads and parses a YAML optimizer configuration file.
// Unknown fields are an error so typos surface instead of silently falling
// back to defaults.
func LoadOptimizerBundle(path string) (*OptimizerBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading optimizer config: %w", err)
	}
	var bundle OptimizerBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing optimizer config: %w", err)
	}
	return &bundle, nil
}

// Validate checks trace level and budget ranges.
func (b *OptimizerBundle) Validate() error {
	if !IsValidTraceLevel(b.Trace) {
		return fmt.Errorf("unknown trace level %q", b.Trace)
	}
	for name, v := range map[string]*int{
		"base":           b.Thresholds.Base,
		"constrained":    b.Thresholds.Constrained,
		"severe":         b.Thresholds.Severe,
		"large_dataset":  b.Thresholds.Large,
		"medium_dataset": b.Thresholds.Medium,
	} {
		if v != nil && *v < 3 {
			return fmt.Errorf("threshold %s must be at least 3, got %d", name, *v)
		}
	}
	if b.Signals != nil {
		if b.Signals.DeviceMemoryGB < 0 {
			return fmt.Errorf("device_memory_gb must be non-negative, got %f", b.Signals.DeviceMemoryGB)
		}
		if b.Signals.LogicalCPUs < 0 {
			return fmt.Errorf("logical_cpus must be non-negative, got %d", b.Signals.LogicalCPUs)
		}
		if b.Signals.ViewportWidth < 0 {
			return fmt.Errorf("viewport_width must be non-negative, got %d", b.Signals.ViewportWidth)
		}
	}
	return nil
}

// Provider returns the signal provider the bundle configures: a static
// snapshot when signals are set, otherwise the local host.
func (b *OptimizerBundle) Provider() SignalProvider {
	if b.Signals != nil {
		return StaticProvider{Snapshot: *b.Signals}
	}
	return HostProvider{}
}

// Budgets merges the bundle's overrides onto the default breakpoints.
func (b *OptimizerBundle) Budgets() ThresholdBudgets {
	budgets := DefaultThresholdBudgets()
	if v := b.Thresholds.Base; v != nil {
		budgets.Base = *v
	}
	if v := b.Thresholds.Constrained; v != nil {
		budgets.Constrained = *v
	}
	if v := b.Thresholds.Severe; v != nil {
		budgets.Severe = *v
	}
	if v := b.Thresholds.Large; v != nil {
		budgets.Large = *v
	}
	if v := b.Thresholds.Medium; v != nil {
		budgets.Medium = *v
	}
	return budgets
}

// NewOrchestrator builds a fully wired orchestrator from the bundle.
func (b *OptimizerBundle) NewOrchestrator(registry *ChartRegistry) *Orchestrator {
	o := NewOrchestrator(registry, b.Provider(), b.Seed)
	o.Policy = NewAdaptiveThresholdPolicyWithBudgets(b.Budgets())
	if TraceLevel(b.Trace) == TraceLevelDecisions {
		o.Trace = NewOptimizationTrace(TraceLevelDecisions)
	}
	return o
}
