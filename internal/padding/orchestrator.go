package padding

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/rs/zerolog"
)

// FillingConfig holds the context-filling parameters. Built once at
// startup and immutable for the process lifetime.
type FillingConfig struct {
	Enabled      bool
	WindowTarget int
	FillRatio    float64
	SafetyMargin int
	Method       Method
}

// Validate checks the parameters that would make a filling target
// meaningless. A failing config disables filling for every call; it is
// never fatal.
func (c FillingConfig) Validate() error {
	if c.FillRatio < 0 || c.FillRatio > 1 {
		return fmt.Errorf("fill ratio %v outside [0, 1]", c.FillRatio)
	}
	if c.WindowTarget <= 0 {
		return fmt.Errorf("window target %d must be positive", c.WindowTarget)
	}
	if c.SafetyMargin < 0 {
		return fmt.Errorf("safety margin %d must be non-negative", c.SafetyMargin)
	}
	if float64(c.WindowTarget)*c.FillRatio-float64(c.SafetyMargin) < 0 {
		return errors.New("safety margin exceeds the fillable window")
	}
	return nil
}

// Target selects which response fields obfuscation applies to.
type Target string

const (
	// TargetTranslation obfuscates only the translated payload.
	TargetTranslation Target = "translation"
	// TargetAll obfuscates every field of the response envelope,
	// with the injection density computed per field.
	TargetAll Target = "all"
)

// ObfuscationConfig holds the interference parameters. Immutable after
// construction, like FillingConfig.
type ObfuscationConfig struct {
	Enabled bool
	Level   Level
	Target  Target
}

// Field classifies a piece of response text for obfuscation targeting.
type Field string

const (
	// FieldTranslation is the translated payload itself.
	FieldTranslation Field = "translation"
	// FieldEnvelope is any other part of the response.
	FieldEnvelope Field = "envelope"
)

// Mode names the padding behavior active for a call.
type Mode string

const (
	ModeFill        Mode = "context-filling"
	ModeObfuscate   Mode = "obfuscation"
	ModePassthrough Mode = "passthrough"
)

// Orchestrator composes the padding engine: it picks the active mode per
// call, runs the search and distributor or the injector, and keeps the
// session budget current. Context filling always wins over obfuscation
// when both are enabled; the two are never combined in one call.
type Orchestrator struct {
	filling FillingConfig
	obfs    ObfuscationConfig
	est     *Estimator
	budget  *Budget
	inj     *Injector
	log     zerolog.Logger

	// mu makes the fill decision atomic: headroom computation and the
	// budget charge happen in one critical section so concurrent
	// requests cannot double-book the same headroom.
	mu sync.Mutex

	fillingErr error
}

// NewOrchestrator wires an orchestrator from immutable configuration.
// rng seeds the obfuscation injector; pass nil outside tests. An invalid
// filling config is logged once here and demotes every call on the
// filling path to passthrough.
func NewOrchestrator(filling FillingConfig, obfs ObfuscationConfig, rng *rand.Rand, logger zerolog.Logger) *Orchestrator {
	o := &Orchestrator{
		filling: filling,
		obfs:    obfs,
		est:     NewEstimator(filling.Method),
		budget:  NewBudget(filling.WindowTarget, filling.SafetyMargin),
		inj:     NewInjector(rng),
		log:     logger,
	}
	if filling.Enabled {
		if err := filling.Validate(); err != nil {
			o.fillingErr = err
			o.log.Warn().Err(err).Msg("context filling disabled: invalid configuration")
		}
	}
	return o
}

// Mode returns the padding mode the orchestrator applies to responses.
func (o *Orchestrator) Mode() Mode {
	switch {
	case o.fillingActive():
		return ModeFill
	case o.obfs.Enabled && ValidLevel(o.obfs.Level):
		return ModeObfuscate
	default:
		return ModePassthrough
	}
}

// Budget exposes the session budget for status reporting.
func (o *Orchestrator) Budget() *Budget {
	return o.budget
}

// Estimator exposes the configured token estimator.
func (o *Orchestrator) Estimator() *Estimator {
	return o.est
}

func (o *Orchestrator) fillingActive() bool {
	return o.filling.Enabled && o.fillingErr == nil
}

// Fill pads a fully-rendered response body toward the session's token
// target and charges the result to the budget. No-op unless context
// filling is active.
func (o *Orchestrator) Fill(body string) string {
	if !o.fillingActive() || body == "" {
		return body
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.budget.ShouldReset() {
		o.budget.Reset()
		o.log.Debug().Msg("session budget reset at window threshold")
	}

	base := o.est.Estimate(body)
	remaining := o.filling.WindowTarget - o.budget.Cumulative() - o.filling.SafetyMargin
	if remaining <= 0 {
		// A concurrent charge can land between the threshold check and
		// here; start the session over rather than compute against a
		// stale, over-threshold budget.
		o.budget.Reset()
		remaining = o.filling.WindowTarget - o.filling.SafetyMargin
		o.log.Debug().Msg("session budget reset: no headroom remaining")
	}

	target := int(math.Floor(float64(remaining) * o.filling.FillRatio))
	if target < base {
		target = base
	}

	count := FindFillerCount(body, o.est, target)
	padded := Distribute(body, count)
	used := o.est.Estimate(padded)
	o.budget.Charge(used)

	o.log.Info().
		Int("base_tokens", base).
		Int("target_tokens", target).
		Int("filler_units", count).
		Int("padded_tokens", used).
		Int("session_tokens", o.budget.Cumulative()).
		Msg("context filling applied")
	return padded
}

// Obfuscate applies interference to one response field. It is inert when
// context filling is active (filling takes priority and handles the
// whole body in Fill) and when the field is outside the configured
// target.
func (o *Orchestrator) Obfuscate(text string, field Field) string {
	if o.fillingActive() || !o.obfs.Enabled || !ValidLevel(o.obfs.Level) || text == "" {
		return text
	}
	if o.obfs.Target != TargetAll && field != FieldTranslation {
		return text
	}

	out := o.inj.Obfuscate(text, o.obfs.Level)
	o.log.Info().
		Str("field", string(field)).
		Str("level", string(o.obfs.Level)).
		Int("filler_units", CountFillers(out)).
		Msg("obfuscation applied")
	return out
}
