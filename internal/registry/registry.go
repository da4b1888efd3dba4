// Package registry declares the callable operation surface that is
// advertised to the language model and validates model-proposed calls
// before they reach a handler. The registry is static for the lifetime
// of the process.
package registry

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownOperation reports a call naming an operation that was never
// registered. It is a defined condition the dispatch loop recovers from,
// not a crash.
var ErrUnknownOperation = errors.New("unknown operation")

// ParamType is the JSON-schema type of an argument.
type ParamType string

// Argument types understood by the registry and the model.
const (
	TypeString  ParamType = "string"
	TypeInteger ParamType = "integer"
	TypeNumber  ParamType = "number"
)

// Param describes one argument of an operation. The description is part of
// the contract surfaced to the model so it can propose well-formed calls.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Handler executes an operation with validated arguments.
type Handler func(ctx context.Context, args Args) (any, error)

// Operation binds a name and argument schema to an implementation.
type Operation struct {
	Name        string
	Description string
	Params      []Param
	Handler     Handler
}

// Registry is a static table of operations keyed by name. Registration
// order is preserved for the declarations sent to the model.
type Registry struct {
	ops   map[string]Operation
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{ops: make(map[string]Operation)}
}

// Register adds an operation. Registering the same name twice is a
// programming error and panics during startup wiring.
func (r *Registry) Register(op Operation) {
	if _, exists := r.ops[op.Name]; exists {
		panic("registry: duplicate operation " + op.Name)
	}
	r.ops[op.Name] = op
	r.order = append(r.order, op.Name)
}

// Operations returns all operations in registration order.
func (r *Registry) Operations() []Operation {
	ops := make([]Operation, 0, len(r.order))
	for _, name := range r.order {
		ops = append(ops, r.ops[name])
	}
	return ops
}

// Lookup returns the named operation if it is registered.
func (r *Registry) Lookup(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Invoke validates args against the operation's schema and runs its
// handler. An unregistered name yields ErrUnknownOperation; a missing
// required argument or a type mismatch is rejected here so handlers never
// see malformed input.
func (r *Registry) Invoke(ctx context.Context, name string, args Args) (any, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	if err := validate(op.Params, args); err != nil {
		return nil, fmt.Errorf("invalid arguments for %s: %w", name, err)
	}
	return op.Handler(ctx, args)
}

// validate checks required presence and JSON types for declared arguments.
// Arguments the schema does not declare are ignored; models occasionally
// invent extras and dropping them keeps the session alive.
func validate(params []Param, args Args) error {
	for _, p := range params {
		value, present := args[p.Name]
		if !present {
			if p.Required {
				return fmt.Errorf("missing required argument %q", p.Name)
			}
			continue
		}
		if err := checkType(p, value); err != nil {
			return err
		}
	}
	return nil
}

func checkType(p Param, value any) error {
	switch p.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("argument %q must be a string, got %T", p.Name, value)
		}
	case TypeInteger:
		if _, err := toInt(p.Name, value); err != nil {
			return err
		}
	case TypeNumber:
		if _, err := toFloat(p.Name, value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("argument %q has unsupported type %q", p.Name, p.Type)
	}
	return nil
}
