package picker

import (
	"sync"
	"sync/atomic"
	"testing"
)

type stubPrompter struct{}

func (stubPrompter) Prompt(string) (string, error) { return "", nil }

func TestDetectCapabilities(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		want Capabilities
	}{
		{"nothing", Environment{}, Capabilities{}},
		{"prompter only", Environment{Prompter: stubPrompter{}}, Capabilities{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCapabilities(tt.env); got != tt.want {
				t.Errorf("DetectCapabilities() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestProbe_DetectsOnce(t *testing.T) {
	var calls atomic.Int32
	p := NewProbe(Environment{})
	p.detect = func(Environment) Capabilities {
		calls.Add(1)
		return Capabilities{HasSandboxedPicker: true}
	}

	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			if !p.Capabilities().HasSandboxedPicker {
				t.Error("expected cached sandbox capability")
			}
		})
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("detect called %d times, want 1", got)
	}
}
