package chartopt

import (
	"runtime"
	"strings"
)

// HostSignals is a snapshot of the host's performance-relevant signals.
// Zero values mean "signal unavailable" and never trigger the constrained
// classification (fail-open toward capable): a server that cannot report a
// viewport must not be throttled like a phone.
type HostSignals struct {
	UserAgent      string  `yaml:"user_agent"`
	DeviceMemoryGB float64 `yaml:"device_memory_gb"`
	LogicalCPUs    int     `yaml:"logical_cpus"`
	NetworkType    string  `yaml:"network_type"`
	SaveData       bool    `yaml:"save_data"`
	ViewportWidth  int     `yaml:"viewport_width"`
}

// SignalProvider supplies a signals snapshot. Implementations exist for the
// local host and for configuration-driven synthetic profiles; browser-like
// deployments plug in their own.
type SignalProvider interface {
	Signals() HostSignals
}

// HostProvider reads what the local process can observe: logical CPU count.
// Browser-only signals (user agent, viewport, network class) stay zero.
type HostProvider struct{}

func (HostProvider) Signals() HostSignals {
	return HostSignals{LogicalCPUs: runtime.NumCPU()}
}

// StaticProvider returns a fixed snapshot, typically loaded from YAML.
type StaticProvider struct {
	Snapshot HostSignals
}

func (p StaticProvider) Signals() HostSignals { return p.Snapshot }

// mobileUAMarkers are the substrings treated as a mobile user agent.
var mobileUAMarkers = []string{"Android", "iPhone", "iPad", "iPod", "Mobile", "webOS", "BlackBerry", "Opera Mini"}

// slowNetworkTypes are the effective network classes treated as slow.
var slowNetworkTypes = map[string]bool{"slow-2g": true, "2g": true, "3g": true}

// CapabilityProfile is the engine's coarse classification of the host.
// Recomputed per optimization pass, never persisted.
type CapabilityProfile struct {
	IsConstrainedDevice bool
	Signals             HostSignals
}

// CapabilityProfiler classifies the host as constrained or capable from a
// SignalProvider snapshot.
type CapabilityProfiler struct {
	Provider SignalProvider
}

// NewCapabilityProfiler creates a profiler. A nil provider defaults to the
// local host.
func NewCapabilityProfiler(provider SignalProvider) *CapabilityProfiler {
	if provider == nil {
		provider = HostProvider{}
	}
	return &CapabilityProfiler{Provider: provider}
}

// Profile snapshots the signals and classifies them.
func (c *CapabilityProfiler) Profile() CapabilityProfile {
	s := c.Provider.Signals()
	return CapabilityProfile{IsConstrainedDevice: IsConstrained(s), Signals: s}
}

// IsConstrained OR-combines the constraint heuristics over one snapshot.
// Each clause checks that its signal is present before comparing.
func IsConstrained(s HostSignals) bool {
	if isMobileUA(s.UserAgent) {
		return true
	}
	if s.DeviceMemoryGB > 0 && s.DeviceMemoryGB < 4 {
		return true
	}
	if s.LogicalCPUs > 0 && s.LogicalCPUs < 4 {
		return true
	}
	if slowNetworkTypes[s.NetworkType] {
		return true
	}
	if s.SaveData {
		return true
	}
	if s.ViewportWidth > 0 && s.ViewportWidth < 768 {
		return true
	}
	return false
}

func isMobileUA(ua string) bool {
	for _, marker := range mobileUAMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}
