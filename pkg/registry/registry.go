// Package registry provides a name-keyed table of operator factories with
// per-name default construction parameters.
//
// Names are matched case-insensitively. A Registry is safe for concurrent
// use; lookups take a read lock and registration takes the write lock.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownOperator is matched by every UnknownOperatorError.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrDuplicateOperator is returned by Register when the name is taken.
	ErrDuplicateOperator = errors.New("operator already registered")
	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("cannot register nil factory")
)

// UnknownOperatorError reports a lookup for a name with no binding.
type UnknownOperatorError struct {
	Family string
	Name   string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("%s %q is not registered", e.Family, e.Name)
}

// Is lets errors.Is match ErrUnknownOperator.
func (e *UnknownOperatorError) Is(target error) bool {
	return target == ErrUnknownOperator
}

// Factory constructs a fresh operator from its parameters.
type Factory[T, P any] func(params P) (T, error)

// MergeFunc overlays caller supplied parameters on registered defaults.
type MergeFunc[P any] func(defaults, supplied P) P

type entry[T, P any] struct {
	factory  Factory[T, P]
	defaults P
}

// Registry maps normalized names to factories.
type Registry[T, P any] struct {
	family  string
	merge   MergeFunc[P]
	entries map[string]entry[T, P]
	lock    sync.RWMutex
}

// New creates an empty registry. family names the operator kind in error
// messages ("metric", "transform"). A nil merge keeps the defaults unless
// the caller passes parameters through Instantiate's merge itself.
func New[T, P any](family string, merge MergeFunc[P]) *Registry[T, P] {
	if merge == nil {
		merge = func(defaults, _ P) P { return defaults }
	}
	return &Registry[T, P]{
		family:  family,
		merge:   merge,
		entries: make(map[string]entry[T, P]),
	}
}

// Normalize returns the lookup key for name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Family returns the operator family this registry serves.
func (r *Registry[T, P]) Family() string {
	return r.family
}

// Register binds name to factory with the given default parameters.
// It fails with ErrDuplicateOperator if name is already bound.
func (r *Registry[T, P]) Register(name string, factory Factory[T, P], defaults P) error {
	if factory == nil {
		return ErrNilFactory
	}
	key := Normalize(name)

	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("%s %q: %w", r.family, key, ErrDuplicateOperator)
	}
	r.entries[key] = entry[T, P]{factory: factory, defaults: defaults}
	return nil
}

// Replace binds name to factory, overwriting any prior binding.
func (r *Registry[T, P]) Replace(name string, factory Factory[T, P], defaults P) error {
	if factory == nil {
		return ErrNilFactory
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.entries[Normalize(name)] = entry[T, P]{factory: factory, defaults: defaults}
	return nil
}

// Resolve returns the factory bound to name.
func (r *Registry[T, P]) Resolve(name string) (Factory[T, P], error) {
	e, err := r.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.factory, nil
}

// Defaults returns the default parameters bound to name.
func (r *Registry[T, P]) Defaults(name string) (P, error) {
	e, err := r.lookup(name)
	if err != nil {
		var zero P
		return zero, err
	}
	return e.defaults, nil
}

// Instantiate resolves name and constructs a new operator, merging the
// supplied parameters over the registered defaults.
func (r *Registry[T, P]) Instantiate(name string, supplied P) (T, error) {
	e, err := r.lookup(name)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.factory(r.merge(e.defaults, supplied))
}

// Names returns the registered names in sorted order.
func (r *Registry[T, P]) Names() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered names.
func (r *Registry[T, P]) Len() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.entries)
}

func (r *Registry[T, P]) lookup(name string) (entry[T, P], error) {
	key := Normalize(name)

	r.lock.RLock()
	defer r.lock.RUnlock()

	e, exists := r.entries[key]
	if !exists {
		return entry[T, P]{}, &UnknownOperatorError{Family: r.family, Name: name}
	}
	return e, nil
}
