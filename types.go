package bounded

import (
	"time"

	"github.com/innoave/bounded-number/pkg/journal"
)

// Adjustable couples a bounded value with evaluator configuration so relative
// adjustments can be driven by expression strings instead of Go functions.
// Like Value it is immutable: MapExpr and TryMapExpr return fresh instances
// sharing the same configuration.
type Adjustable[N Number] struct {
	Value Value[N]

	cfg config
}

// Response stores a typed result produced by an evaluator.
type Response[T any] struct {
	Value T
}

// EvalContext carries inputs needed when evaluating an expression.
type EvalContext struct {
	Snapshot any
	Now      *time.Time
	Args     map[string]any
	Metadata map[string]any
}

func (ctx EvalContext) withDefaultNow() EvalContext {
	if ctx.Now != nil {
		return ctx
	}
	now := time.Now()
	ctx.Now = &now
	return ctx
}

func (ctx EvalContext) timestamp() time.Time {
	ctx = ctx.withDefaultNow()
	return *ctx.Now
}

func (ctx EvalContext) withDefaultMaps() EvalContext {
	if ctx.Args == nil {
		ctx.Args = map[string]any{}
	}
	if ctx.Metadata == nil {
		ctx.Metadata = map[string]any{}
	}
	return ctx
}

func (ctx EvalContext) withDefaults() EvalContext {
	return ctx.withDefaultNow().withDefaultMaps()
}

// Evaluator executes expressions against an eval context.
type Evaluator interface {
	Evaluate(ctx EvalContext, expr string) (any, error)
	Compile(expr string, opts ...CompileOption) (CompiledRule, error)
}

// CompiledRule represents a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx EvalContext) (any, error)
}

// CompileOption configures evaluator compile behaviour.
type CompileOption interface {
	applyCompileOption(*compileConfig)
}

type compileConfig struct{}

type compileOptionFunc func(*compileConfig)

func (f compileOptionFunc) applyCompileOption(cfg *compileConfig) {
	if f != nil {
		f(cfg)
	}
}

type Option func(*config)

type config struct {
	evaluator    Evaluator
	programCache ProgramCache
	functions    *FunctionRegistry
	logger       EvaluatorLogger
	journal      journal.Hooks
	metadata     map[string]any
}

func applyOptions(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithEvaluator configures the evaluator used for expression transforms.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *config) {
		cfg.evaluator = e
	}
}

// WithMetadata attaches metadata forwarded to evaluators and journal events.
func WithMetadata(metadata map[string]any) Option {
	return func(cfg *config) {
		cfg.metadata = cloneMetadata(metadata)
	}
}

func (a *Adjustable[N]) evaluator() Evaluator {
	return a.cfg.evaluator
}

func (a *Adjustable[N]) withEvaluator(e Evaluator) {
	a.cfg.evaluator = e
}

func (a *Adjustable[N]) evaluatorLogger() EvaluatorLogger {
	if a.cfg.logger != nil {
		return a.cfg.logger
	}
	return noopEvaluatorLogger{}
}

func cloneMetadata(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
