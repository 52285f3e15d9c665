package picker

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/pathpick/internal/errors"
	"github.com/thoreinstein/pathpick/internal/logging"
	"github.com/thoreinstein/pathpick/pkg/pathutil"
)

// Picker runs the adapter chain. It is safe for concurrent use as long as
// the wrapped mechanisms are; calls are independent.
type Picker struct {
	probe   *Probe
	caps    *Capabilities
	bridge  Adapter
	sandbox Adapter
	manual  Adapter
	target  pathutil.Platform
	logger  *slog.Logger
}

// Option configures a Picker.
type Option func(*Picker)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Picker) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithTargetPlatform sets the platform whose separator selected paths are
// normalized to. The default is the detected platform.
func WithTargetPlatform(target pathutil.Platform) Option {
	return func(p *Picker) {
		p.target = target
	}
}

// WithCapabilities overrides capability detection.
func WithCapabilities(c Capabilities) Option {
	return func(p *Picker) {
		p.caps = &c
	}
}

// New builds a Picker over env.
func New(env Environment, opts ...Option) *Picker {
	p := &Picker{
		probe:  NewProbe(env),
		target: pathutil.DetectPlatform(),
		logger: logging.NewDiscard(),
	}
	if env.Bridge != nil {
		p.bridge = NewBridgeAdapter(env.Bridge)
	}
	if env.Sandbox != nil {
		p.sandbox = NewSandboxAdapter(env.Sandbox)
	}
	if env.Prompter != nil {
		p.manual = NewManualAdapter(env.Prompter)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Capabilities returns the capabilities the chain is built from.
func (p *Picker) Capabilities() Capabilities {
	if p.caps != nil {
		return *p.caps
	}
	return p.probe.Capabilities()
}

type link struct {
	name    string
	enabled bool
	adapter Adapter
}

func (p *Picker) chain() []link {
	caps := p.Capabilities()
	return []link{
		{name: "bridge", enabled: caps.HasHostBridge, adapter: p.bridge},
		{name: "sandbox", enabled: caps.HasSandboxedPicker, adapter: p.sandbox},
		{name: "manual", enabled: true, adapter: p.manual},
	}
}

// Pick runs one selection.
//
// Adapters are tried in priority order: host bridge, sandboxed picker,
// manual entry. A selection or an explicit cancellation ends the walk.
// Failures are logged and the next adapter is tried. When ctx is done the
// walk stops with a cancelled result.
//
// The returned error is non-nil only for misuse: an unknown mode or a
// Picker built without a manual prompt.
func (p *Picker) Pick(ctx context.Context, req Request) (Result, error) {
	if req.Mode < ModeFile || req.Mode > ModeFileOrFolder {
		return Result{}, errors.Wrapf(ErrInvalidMode, "%d", int(req.Mode))
	}
	if p.manual == nil {
		return Result{}, ErrNoFallback
	}

	logger := p.logger.With("mode", req.Mode.String())
	for _, l := range p.chain() {
		if !l.enabled {
			continue
		}
		if l.adapter == nil {
			logger.Debug("adapter not present", "adapter", l.name)
			continue
		}

		out := p.run(ctx, l.adapter, req)
		switch out.Kind {
		case OutcomeSelected:
			res := p.finish(req, l.name, out)
			logger.Debug("selection made", "adapter", l.name, "count", len(res.Paths), "kind", res.Kind.String())
			return res, nil
		case OutcomeCancelled:
			logger.Debug("selection cancelled", "adapter", l.name)
			return Result{Kind: KindCancelled, Adapter: l.name}, nil
		default:
			if errors.Is(out.Err, ErrUnsupported) {
				logger.Debug("adapter skipped", "adapter", l.name, "reason", out.Err)
			} else {
				logger.Warn("adapter failed, falling back", "adapter", l.name, "error", out.Err)
			}
		}

		if ctx.Err() != nil {
			logger.Debug("selection interrupted", "error", ctx.Err())
			return Result{Kind: KindCancelled}, nil
		}
	}

	logger.Debug("no adapter produced a selection")
	return Result{Kind: KindCancelled}, nil
}

func (p *Picker) run(ctx context.Context, a Adapter, req Request) Outcome {
	opts := req.fileOptions()
	switch req.Mode {
	case ModeFolder:
		return a.SelectFolder(ctx, req.Title)
	case ModeFileOrFolder:
		s, ok := a.(AnySelector)
		if !ok {
			return Unsupported("%s adapter cannot offer files and folders together", a.Name())
		}
		return s.SelectAny(ctx, opts)
	default:
		return a.SelectFile(ctx, opts)
	}
}

// finish normalizes and validates a selection.
func (p *Picker) finish(req Request, adapter string, out Outcome) Result {
	paths := out.Paths
	if (req.Mode == ModeFolder || !req.Multiple) && len(paths) > 1 {
		paths = paths[:1]
	}

	normalized := make([]string, 0, len(paths))
	for _, raw := range paths {
		if n := pathutil.NormalizeFor(raw, p.target); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return Result{Kind: KindCancelled, Adapter: adapter}
	}

	res := Result{
		Kind:     KindSelected,
		Paths:    normalized,
		NameOnly: out.NameOnly,
		Adapter:  adapter,
	}
	for _, n := range normalized {
		if err := pathutil.Validate(n); err != nil {
			res.Kind = KindInvalid
			res.Reason = err
			break
		}
	}
	return res
}

// PickFile asks for a single file. It returns an empty path when the user
// cancels, and a validation error when the chosen path is malformed.
func (p *Picker) PickFile(ctx context.Context, opts FileOptions) (string, error) {
	res, err := p.Pick(ctx, Request{Mode: ModeFile, Accept: opts.Accept, Title: opts.Title})
	if err != nil {
		return "", err
	}
	if res.Kind == KindInvalid {
		return "", res.Reason
	}
	return res.Path(), nil
}

// PickFiles asks for several files. It returns nil when the user cancels.
func (p *Picker) PickFiles(ctx context.Context, opts FileOptions) ([]string, error) {
	res, err := p.Pick(ctx, Request{Mode: ModeFile, Multiple: true, Accept: opts.Accept, Title: opts.Title})
	if err != nil {
		return nil, err
	}
	if res.Kind == KindInvalid {
		return nil, res.Reason
	}
	if !res.Selected() {
		return nil, nil
	}
	return res.Paths, nil
}

// PickFolder asks for a single folder. It returns an empty path when the
// user cancels.
func (p *Picker) PickFolder(ctx context.Context, title string) (string, error) {
	res, err := p.Pick(ctx, Request{Mode: ModeFolder, Title: title})
	if err != nil {
		return "", err
	}
	if res.Kind == KindInvalid {
		return "", res.Reason
	}
	return res.Path(), nil
}
