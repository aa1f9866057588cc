package instrument

import (
	"fmt"
	"maps"
	"slices"
)

// Resolver turns the arguments of one call into span attributes.
// A wrapped function invokes its Resolver once per call; an error aborts
// the call before the target function runs.
//
// Implementations must not retain or mutate the returned map after
// returning it, and must be safe for concurrent use.
type Resolver[A any] interface {
	Resolve(args A) (map[string]string, error)
}

// afterStart marks resolvers whose attributes are set on an already started
// span instead of being passed when the span is created.
type afterStart interface {
	resolvesAfterStart()
}

// ParamResolver resolves attributes by parameter name. For every
// attribute it looks the parameter up, in order, in:
//
//  1. the call's keyword arguments,
//  2. the arguments bound against the Signature,
//  3. the declared default of the parameter.
//
// A parameter found in none of them fails the call with
// ErrParameterNotFound. Resolved attributes are attached when the span is
// started.
type ParamResolver struct {
	sig      Signature
	mapping  map[string]string
	order    []string
	defaults map[string]any
}

// NewParamResolver builds a resolver for functions declared by sig.
// The mapping goes from attribute names to parameter names. Declared defaults are
// captured here, once, rather than on every call.
func NewParamResolver(sig Signature, mapping map[string]string) *ParamResolver {
	return &ParamResolver{
		sig:      sig,
		mapping:  maps.Clone(mapping),
		order:    slices.Sorted(maps.Keys(mapping)),
		defaults: sig.Defaults(),
	}
}

// Resolve implements Resolver.
func (r *ParamResolver) Resolve(c Call) (map[string]string, error) {
	attrs := make(map[string]string, len(r.order))
	if len(r.order) == 0 {
		return attrs, nil
	}

	bound, err := r.sig.Bind(c)
	if err != nil {
		return nil, err
	}

	for _, attr := range r.order {
		param := r.mapping[attr]
		value, ok := r.lookup(param, c.Kwargs, bound)
		if !ok {
			return nil, fmt.Errorf("%w: parameter %q for attribute %q", ErrParameterNotFound, param, attr)
		}
		attrs[attr] = fmt.Sprint(value)
	}
	return attrs, nil
}

func (r *ParamResolver) lookup(param string, kwargs, bound map[string]any) (any, bool) {
	if v, ok := kwargs[param]; ok {
		return v, true
	}
	if v, ok := bound[param]; ok {
		return v, true
	}
	v, ok := r.defaults[param]
	return v, ok
}

type slot[T any] struct {
	attr string
	at   T
}

func slotsOf[T any](mapping map[string]T) []slot[T] {
	slots := make([]slot[T], 0, len(mapping))
	for _, attr := range slices.Sorted(maps.Keys(mapping)) {
		slots = append(slots, slot[T]{attr: attr, at: mapping[attr]})
	}
	return slots
}

// SlotResolver resolves attributes directly from positional indexes and
// keyword names, without a declared signature. Keyword slots are resolved
// before positional ones; a missing slot fails the call with
// ErrParameterNotFound.
//
// Unlike ParamResolver, the span is started with only the static
// attributes and the resolved ones are set on it afterwards, so a
// resolution failure is recorded on that span.
type SlotResolver struct {
	positions []slot[int]
	keywords  []slot[string]
}

// NewSlotResolver builds a resolver from attribute → positional index and
// attribute → keyword name specs. Either may be nil.
func NewSlotResolver(positions map[string]int, keywords map[string]string) *SlotResolver {
	return &SlotResolver{
		positions: slotsOf(positions),
		keywords:  slotsOf(keywords),
	}
}

// Resolve implements Resolver.
func (r *SlotResolver) Resolve(c Call) (map[string]string, error) {
	attrs := make(map[string]string, len(r.positions)+len(r.keywords))

	for _, s := range r.keywords {
		value, ok := c.Kwargs[s.at]
		if !ok {
			return nil, fmt.Errorf("%w: keyword %q for attribute %q", ErrParameterNotFound, s.at, s.attr)
		}
		attrs[s.attr] = fmt.Sprint(value)
	}

	for _, s := range r.positions {
		if s.at < 0 || len(c.Args) < s.at+1 {
			return nil, fmt.Errorf("%w: position %d for attribute %q (%d positional arguments)",
				ErrParameterNotFound, s.at, s.attr, len(c.Args))
		}
		attrs[s.attr] = fmt.Sprint(c.Args[s.at])
	}

	return attrs, nil
}

func (r *SlotResolver) resolvesAfterStart() {}

// Extractor pulls one attribute value out of typed call arguments.
// It reports false when the value is not available.
type Extractor[A any] func(args A) (any, bool)

// FirstOf returns an Extractor trying each extractor in order and using the
// first value found. It expresses a lookup precedence, for example an
// explicit override, then a field, then a fallback:
//
//	instrument.FirstOf(fromOverride, fromField, instrument.Default[Req]("none"))
func FirstOf[A any](extractors ...Extractor[A]) Extractor[A] {
	return func(args A) (any, bool) {
		for _, extract := range extractors {
			if v, ok := extract(args); ok {
				return v, true
			}
		}
		return nil, false
	}
}

// Default returns an Extractor that always yields v.
func Default[A any](v any) Extractor[A] {
	return func(A) (any, bool) { return v, true }
}

// FuncResolver resolves attributes from typed arguments with one Extractor
// per attribute. Values are stringified with fmt.Sprint.
type FuncResolver[A any] struct {
	order      []string
	extractors map[string]Extractor[A]
}

// NewFuncResolver builds a resolver from attribute → extractor pairs.
func NewFuncResolver[A any](extractors map[string]Extractor[A]) *FuncResolver[A] {
	return &FuncResolver[A]{
		order:      slices.Sorted(maps.Keys(extractors)),
		extractors: maps.Clone(extractors),
	}
}

// Resolve implements Resolver.
func (r *FuncResolver[A]) Resolve(args A) (map[string]string, error) {
	attrs := make(map[string]string, len(r.order))
	for _, attr := range r.order {
		value, ok := r.extractors[attr](args)
		if !ok {
			return nil, fmt.Errorf("%w: no value for attribute %q", ErrParameterNotFound, attr)
		}
		attrs[attr] = fmt.Sprint(value)
	}
	return attrs, nil
}
