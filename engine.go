package uranus

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/uranus/pkg/logger"
	"github.com/dmitrymomot/uranus/pkg/rules"
)

// Engine runs rule declarations against values and builds reports.
// An Engine is immutable after New and safe for concurrent use.
type Engine struct {
	registry    rules.Registry
	progressive bool
	duplicates  DuplicatePolicy
	logger      *slog.Logger
	observer    Observer
}

// New builds an engine. The registry (built-ins unless WithRegistry is
// given) is merged with every WithPredicates extension exactly once, here.
func New(opts ...Option) *Engine {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	registry := o.registry
	if !o.hasRegistry {
		registry = rules.Default()
	}
	for _, ext := range o.extensions {
		registry = registry.Merge(ext)
	}

	if o.logger == nil {
		o.logger = logger.Discard()
	}
	if o.observer == nil {
		o.observer = noopObserver{}
	}

	return &Engine{
		registry:    registry,
		progressive: o.progressive,
		duplicates:  o.duplicates,
		logger:      o.logger,
		observer:    o.observer,
	}
}

// Registry returns the effective rule registry.
func (e *Engine) Registry() rules.Registry {
	return e.registry
}

// Progressive reports whether the engine short-circuits on first failure.
func (e *Engine) Progressive() bool {
	return e.progressive
}

// ValidateOne applies rs to a single value. The result maps rule names to
// items.
func (e *Engine) ValidateOne(value any, rs Rules) (*Result, error) {
	start := time.Now()

	res, err := e.validateOne(value, rs)
	e.complete(FormOne, res, err, start)
	return res, err
}

// ValidateSequence applies each entry's rules to its value. The result
// maps entry positions ("0", "1", ...) to nested results.
func (e *Engine) ValidateSequence(entries Entries) (*Result, error) {
	start := time.Now()

	res, err := e.validateSequence(entries)
	e.complete(FormSequence, res, err, start)
	return res, err
}

// ValidateFields applies each field's rules to source[field]. Fields of
// source without rules are ignored; missing fields validate as nil.
func (e *Engine) ValidateFields(source map[string]any, fields Fields) (*Result, error) {
	start := time.Now()

	res, err := e.validateFields(source, fields)
	e.complete(FormFields, res, err, start)
	return res, err
}

// ValidateAll dispatches on the input shape.
func (e *Engine) ValidateAll(in Input) (*Result, error) {
	switch v := in.(type) {
	case SingleInput:
		return e.ValidateOne(v.Value, v.Rules)
	case SequenceInput:
		return e.ValidateSequence(v.Entries)
	case KeyedInput:
		return e.ValidateFields(v.Source, v.Fields)
	case nil:
		return nil, fmt.Errorf("%w: nil input", ErrInputShape)
	}
	return nil, fmt.Errorf("%w: %T", ErrInputShape, in)
}

func (e *Engine) validateOne(value any, rs Rules) (*Result, error) {
	if err := e.resolve(rs); err != nil {
		return nil, err
	}
	return e.evaluate(value, rs)
}

func (e *Engine) validateSequence(entries Entries) (*Result, error) {
	for i, entry := range entries {
		if err := e.resolve(entry.Rules); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	res := newResult()
	for i, entry := range entries {
		nested, err := e.evaluate(entry.Value, entry.Rules)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		res.setNested(strconv.Itoa(i), nested)
	}
	return res.seal(), nil
}

func (e *Engine) validateFields(source map[string]any, fields Fields) (*Result, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup && e.duplicates == DuplicateReject {
			return nil, fmt.Errorf("%w: field %q declared twice", ErrDuplicateRule, f.Name)
		}
		seen[f.Name] = struct{}{}

		if err := e.resolve(f.Rules); err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
	}

	res := newResult()
	for _, f := range fields {
		nested, err := e.evaluate(source[f.Name], f.Rules)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		res.setNested(f.Name, nested)
	}
	return res.seal(), nil
}

// evaluate runs already resolved rules against one value.
func (e *Engine) evaluate(value any, rs Rules) (*Result, error) {
	if name, dup := rs.duplicate(); dup {
		e.logger.Warn("rule declared more than once, last outcome wins", logger.Rule(name))
	}

	res := newResult()
	for _, r := range rs {
		d := r.Declaration
		if _, ok := shapeRules[r.Name]; ok {
			d = d.shapeOnly()
		}

		valid, err := e.invoke(value, r.Name, d)
		if err != nil {
			e.observer.RuleEvaluated(r.Name, OutcomeError)
			return nil, err
		}
		e.logger.Debug("rule evaluated", logger.Rule(r.Name), slog.Bool("valid", valid))

		if valid {
			e.observer.RuleEvaluated(r.Name, OutcomePass)
			res.setItem(r.Name, passed())
			continue
		}

		e.observer.RuleEvaluated(r.Name, OutcomeFail)
		res.setItem(r.Name, failed(d.failureMessage(r.Name)))
		if e.progressive {
			break
		}
	}
	return res.seal(), nil
}

func (e *Engine) complete(form Form, res *Result, err error, start time.Time) {
	elapsed := time.Since(start)
	valid := err == nil && res.IsValid()
	e.observer.ValidationCompleted(form, valid, err, elapsed)

	if err != nil {
		e.logger.Debug("validation aborted", logger.Form(string(form)), logger.Error(err))
		return
	}
	e.logger.Debug("validation completed",
		logger.Form(string(form)),
		slog.Bool("valid", valid),
		logger.Duration(elapsed),
	)
}
