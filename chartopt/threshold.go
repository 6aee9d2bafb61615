package chartopt

// Default point budgets. The breakpoints are a decision table, not a
// continuous function; existing dashboards depend on these exact values.
const (
	BaseThreshold             = 1000
	ConstrainedThreshold      = 50
	SeverelyConstrainedBudget = 25
	LargeDatasetThreshold     = 500
	MediumDatasetThreshold    = 750

	// Dataset sizes at which a capable host scales its budget down.
	largeDatasetSize  = 10000
	mediumDatasetSize = 5000

	// Signals that demote a constrained host to the severe budget.
	severeViewportWidth = 480
	severeCPUCount      = 2
)

// ThresholdRule is one row of the decision table: the first rule whose
// condition holds supplies the budget.
type ThresholdRule struct {
	Name      string
	Condition func(p CapabilityProfile, datasetSize int) bool
	Threshold int
}

// AdaptiveThresholdPolicy maps a capability profile plus raw dataset size to
// a target point budget by scanning an ordered rule table. The table form
// keeps each breakpoint unit-testable in isolation from capability
// detection.
type AdaptiveThresholdPolicy struct {
	Rules []ThresholdRule
}

// ThresholdBudgets holds the budget of each rule in the standard table.
type ThresholdBudgets struct {
	Severe      int
	Constrained int
	Large       int
	Medium      int
	Base        int
}

// DefaultThresholdBudgets returns the standard breakpoint values.
func DefaultThresholdBudgets() ThresholdBudgets {
	return ThresholdBudgets{
		Severe:      SeverelyConstrainedBudget,
		Constrained: ConstrainedThreshold,
		Large:       LargeDatasetThreshold,
		Medium:      MediumDatasetThreshold,
		Base:        BaseThreshold,
	}
}

// NewAdaptiveThresholdPolicy creates the policy with the standard table.
func NewAdaptiveThresholdPolicy() *AdaptiveThresholdPolicy {
	return NewAdaptiveThresholdPolicyWithBudgets(DefaultThresholdBudgets())
}

// NewAdaptiveThresholdPolicyWithBudgets creates the standard table with
// custom budgets, keeping the rule order and conditions fixed.
func NewAdaptiveThresholdPolicyWithBudgets(b ThresholdBudgets) *AdaptiveThresholdPolicy {
	return &AdaptiveThresholdPolicy{Rules: thresholdRules(b)}
}

// Threshold returns the budget for the given profile and raw dataset size.
// The default table always terminates with a catch-all rule; an exhausted
// custom table falls back to BaseThreshold.
func (p *AdaptiveThresholdPolicy) Threshold(profile CapabilityProfile, datasetSize int) int {
	for _, rule := range p.Rules {
		if rule.Condition(profile, datasetSize) {
			return rule.Threshold
		}
	}
	return BaseThreshold
}

func thresholdRules(b ThresholdBudgets) []ThresholdRule {
	return []ThresholdRule{
		{
			Name: "severely-constrained",
			Condition: func(p CapabilityProfile, _ int) bool {
				if !p.IsConstrainedDevice {
					return false
				}
				narrow := p.Signals.ViewportWidth > 0 && p.Signals.ViewportWidth < severeViewportWidth
				fewCPUs := p.Signals.LogicalCPUs > 0 && p.Signals.LogicalCPUs < severeCPUCount
				return narrow || fewCPUs
			},
			Threshold: b.Severe,
		},
		{
			Name: "constrained",
			Condition: func(p CapabilityProfile, _ int) bool {
				return p.IsConstrainedDevice
			},
			Threshold: b.Constrained,
		},
		{
			Name: "large-dataset",
			Condition: func(_ CapabilityProfile, size int) bool {
				return size > largeDatasetSize
			},
			Threshold: b.Large,
		},
		{
			Name: "medium-dataset",
			Condition: func(_ CapabilityProfile, size int) bool {
				return size > mediumDatasetSize
			},
			Threshold: b.Medium,
		},
		{
			Name:      "base",
			Condition: func(CapabilityProfile, int) bool { return true },
			Threshold: b.Base,
		},
	}
}
