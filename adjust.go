package bounded

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoEvaluator is returned when no evaluator could be resolved.
var ErrNoEvaluator = errors.New("bounded: evaluator not configured")

// Journal op names emitted by expression transforms.
const (
	opMap    = "map"
	opTryMap = "try_map"
	opReject = "reject"
)

// Wrap couples a bounded value with evaluator configuration.
func Wrap[N Number](value Value[N], opts ...Option) *Adjustable[N] {
	cfg := applyOptions(opts)
	return &Adjustable[N]{
		Value: value,
		cfg:   cfg,
	}
}

// MapExpr evaluates expression against the current value and clamps the
// numeric result into the bounds, per Value.Set. The expression sees the
// bindings value, min, max and span, plus now, args, metadata and any
// registered functions.
func (a *Adjustable[N]) MapExpr(expression string) (*Adjustable[N], error) {
	result, err := a.evaluateNumeric(expression)
	if err != nil {
		return nil, err
	}
	next := a.derive(a.Value.Set(result))
	a.emitJournal(opMap, expression, a.Value, next.Value, !a.Value.Contains(result))
	return next, nil
}

// TryMapExpr evaluates expression against the current value and accepts the
// numeric result only when it stays inside the bounds, per Value.TrySet.
// Evaluation failures are errors; an out-of-range result is a clean
// rejection with ok == false.
func (a *Adjustable[N]) TryMapExpr(expression string) (*Adjustable[N], bool, error) {
	result, err := a.evaluateNumeric(expression)
	if err != nil {
		return nil, false, err
	}
	updated, ok := a.Value.TrySet(result)
	if !ok {
		a.emitJournal(opReject, expression, a.Value, a.Value, false)
		return nil, false, nil
	}
	next := a.derive(updated)
	a.emitJournal(opTryMap, expression, a.Value, next.Value, false)
	return next, true, nil
}

// Evaluate executes expr using the configured evaluator and wraps the raw
// result. Useful for predicates such as "value == max".
func (a *Adjustable[N]) Evaluate(expr string) (Response[any], error) {
	return a.EvaluateWith(EvalContext{}, expr)
}

// EvaluateWith executes expr using ctx, falling back to the wrapped value's
// bindings when ctx.Snapshot is nil.
func (a *Adjustable[N]) EvaluateWith(ctx EvalContext, expr string) (Response[any], error) {
	if expr == "" {
		return Response[any]{}, fmt.Errorf("expression must not be empty")
	}
	evaluator, err := a.resolveEvaluator()
	if err != nil {
		return Response[any]{}, err
	}
	if ctx.Snapshot == nil {
		ctx.Snapshot = a.bindings()
	}
	if ctx.Metadata == nil {
		ctx.Metadata = cloneMetadata(a.cfg.metadata)
	}
	ctx = ctx.withDefaults()
	engine := evaluatorEngineName(evaluator)
	start := time.Now()
	value, evalErr := evaluator.Evaluate(ctx, expr)
	duration := time.Since(start)
	evalErr = wrapEvaluationError(engine, expr, evalErr)
	a.evaluatorLogger().LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     expr,
		Duration: duration,
		Err:      evalErr,
	})
	if evalErr != nil {
		return Response[any]{}, evalErr
	}
	return Response[any]{Value: value}, nil
}

func (a *Adjustable[N]) evaluateNumeric(expression string) (N, error) {
	var zero N
	response, err := a.EvaluateWith(EvalContext{}, expression)
	if err != nil {
		return zero, err
	}
	result, err := toNumber[N](response.Value)
	if err != nil {
		return zero, wrapEvaluationError(evaluatorEngineName(a.evaluator()), expression, err)
	}
	return result, nil
}

// derive carries the configuration over to a new value.
func (a *Adjustable[N]) derive(value Value[N]) *Adjustable[N] {
	return &Adjustable[N]{
		Value: value,
		cfg:   a.cfg,
	}
}

// bindings exposes the bounded value to expression environments.
func (a *Adjustable[N]) bindings() map[string]any {
	return map[string]any{
		"value": a.Value.Value(),
		"min":   a.Value.Min(),
		"max":   a.Value.Max(),
		"span":  a.Value.Max() - a.Value.Min(),
	}
}

func (a *Adjustable[N]) resolveEvaluator() (Evaluator, error) {
	evaluator := a.evaluator()
	if evaluator != nil {
		return evaluator, nil
	}
	var exprOpts []ExprEvaluatorOption
	if cache := a.programCache(); cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := a.functionRegistry(); registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	defaultEvaluator := NewExprEvaluator(exprOpts...)
	if defaultEvaluator == nil {
		return nil, ErrNoEvaluator
	}
	a.withEvaluator(defaultEvaluator)
	return defaultEvaluator, nil
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*bounded.exprEvaluator":
		return "expr"
	case "*bounded.celEvaluator":
		return "cel"
	case "*bounded.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}

// toNumber coerces the dynamic result an engine hands back into N.
func toNumber[N Number](result any) (N, error) {
	switch n := result.(type) {
	case int:
		return N(n), nil
	case int8:
		return N(n), nil
	case int16:
		return N(n), nil
	case int32:
		return N(n), nil
	case int64:
		return N(n), nil
	case uint:
		return N(n), nil
	case uint8:
		return N(n), nil
	case uint16:
		return N(n), nil
	case uint32:
		return N(n), nil
	case uint64:
		return N(n), nil
	case float32:
		return N(n), nil
	case float64:
		return N(n), nil
	default:
		var zero N
		return zero, fmt.Errorf("result %v (%T) is not numeric", result, result)
	}
}
