package instrument

import (
	"fmt"
	"maps"
	"slices"
)

// Call holds the actual arguments of one invocation of a wrapped function
// whose parameters are addressed by name or position rather than by a Go
// struct type.
type Call struct {
	// Args are the positional arguments in order.
	Args []any

	// Kwargs are the keyword arguments. A key may name a declared parameter
	// or, for signatures with VarKwargs, any other keyword.
	Kwargs map[string]any
}

// Args builds a Call from positional arguments.
//
//	call := instrument.Args(1, "bar").With("verbose", true)
func Args(args ...any) Call {
	return Call{Args: args}
}

// With returns a copy of the call with an extra keyword argument.
// The receiver is left unchanged.
func (c Call) With(name string, value any) Call {
	kwargs := make(map[string]any, len(c.Kwargs)+1)
	maps.Copy(kwargs, c.Kwargs)
	kwargs[name] = value
	return Call{Args: c.Args, Kwargs: kwargs}
}

// Param is one declared parameter of a Signature.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Required declares a parameter without a default.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares a parameter with a default value.
func Optional(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// Signature declares the parameter list of a function taking a Call.
// It stands in for runtime introspection: callers describe the parameters
// once, when the function is wrapped.
type Signature struct {
	// Params are the named parameters in positional order.
	Params []Param

	// VarKwargs reports whether the function accepts keyword arguments that
	// do not match any declared parameter.
	VarKwargs bool
}

// NewSignature declares a signature from its parameters.
func NewSignature(params ...Param) Signature {
	return Signature{Params: params}
}

// WithVarKwargs returns a copy of the signature that accepts arbitrary
// keyword arguments.
func (s Signature) WithVarKwargs() Signature {
	s.Params = slices.Clone(s.Params)
	s.VarKwargs = true
	return s
}

// Defaults returns the declared default of every parameter that has one.
func (s Signature) Defaults() map[string]any {
	defaults := make(map[string]any)
	for _, p := range s.Params {
		if p.HasDefault {
			defaults[p.Name] = p.Default
		}
	}
	return defaults
}

func (s Signature) declares(name string) bool {
	return slices.ContainsFunc(s.Params, func(p Param) bool { return p.Name == name })
}

// Bind maps the call's arguments onto the declared parameters: positional
// arguments in order, then keyword arguments naming a declared parameter.
// Keywords captured by VarKwargs and declared defaults are not part of the
// result.
//
// Bind fails with ErrInvalidCall when the call could not be made against
// the signature.
func (s Signature) Bind(c Call) (map[string]any, error) {
	if len(c.Args) > len(s.Params) {
		return nil, fmt.Errorf("%w: takes %d positional arguments but %d were given",
			ErrInvalidCall, len(s.Params), len(c.Args))
	}

	bound := make(map[string]any, len(s.Params))
	for i, value := range c.Args {
		bound[s.Params[i].Name] = value
	}

	for _, name := range slices.Sorted(maps.Keys(c.Kwargs)) {
		if !s.declares(name) {
			if !s.VarKwargs {
				return nil, fmt.Errorf("%w: unexpected keyword argument %q", ErrInvalidCall, name)
			}
			continue
		}
		if _, dup := bound[name]; dup {
			return nil, fmt.Errorf("%w: multiple values for argument %q", ErrInvalidCall, name)
		}
		bound[name] = c.Kwargs[name]
	}

	for _, p := range s.Params {
		if _, ok := bound[p.Name]; !ok && !p.HasDefault {
			return nil, fmt.Errorf("%w: missing required argument %q", ErrInvalidCall, p.Name)
		}
	}

	return bound, nil
}
