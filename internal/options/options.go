// Package options implements the named functional options shared by the
// descriptor builder and the catalog loader.
//
// Every option carries the name of the constructor that made it, so a
// rejected option is reported as, for example,
// "invalid option: WithHashIndexThreshold: hash index threshold must not be negative, got -1".
package options

import (
	"fmt"

	"github.com/arloliu/enumrefl/errs"
)

// Option configures a target of type T.
type Option[T any] interface {
	// Name returns the name of the option constructor.
	Name() string
	apply(T) error
}

// Func adapts a named function to Option.
type Func[T any] struct {
	name string
	fn   func(T) error
}

// Name implements Option.
func (f *Func[T]) Name() string {
	return f.name
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New creates an option called name from a function that may reject its input.
func New[T any](name string, fn func(T) error) *Func[T] {
	return &Func[T]{name: name, fn: fn}
}

// NoError creates an option called name from a function that cannot fail.
func NoError[T any](name string, fn func(T)) *Func[T] {
	return &Func[T]{
		name: name,
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error, which
// is wrapped with errs.ErrInvalidOption and the option name. Nil options are
// skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("%w: %s: %w", errs.ErrInvalidOption, opt.Name(), err)
		}
	}

	return nil
}
