package picker

import (
	"sync"
)

// Capabilities records which selection mechanisms the environment offers.
type Capabilities struct {
	HasHostBridge      bool `json:"has_host_bridge"`
	HasSandboxedPicker bool `json:"has_sandboxed_picker"`
}

// Environment is the explicit view of the running host that a Picker is
// built from. Leave a field nil when the mechanism is absent.
type Environment struct {
	Bridge   Bridge
	Sandbox  SandboxedPicker
	Prompter Prompter
}

// DetectCapabilities derives Capabilities from env without side effects.
func DetectCapabilities(env Environment) Capabilities {
	return Capabilities{
		HasHostBridge:      env.Bridge != nil,
		HasSandboxedPicker: env.Sandbox != nil,
	}
}

// Probe computes Capabilities once and caches them.
type Probe struct {
	once   sync.Once
	env    Environment
	detect func(Environment) Capabilities
	caps   Capabilities
}

// NewProbe returns a Probe over env.
func NewProbe(env Environment) *Probe {
	return &Probe{env: env, detect: DetectCapabilities}
}

// Capabilities returns the cached capabilities, running detection on the
// first call.
func (p *Probe) Capabilities() Capabilities {
	p.once.Do(func() {
		p.caps = p.detect(p.env)
	})
	return p.caps
}
