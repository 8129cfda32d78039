package router

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// Factory produces a fresh view instance for a route.
type Factory[V any] func() (V, error)

var errNilFactory = errors.New("factory is nil")

// Registry maps route names to factories. Registering a name twice replaces
// the earlier factory.
type Registry[V any] struct {
	factories map[string]Factory[V]
}

// NewRegistry creates an empty registry.
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{factories: make(map[string]Factory[V])}
}

// Register stores factory under name, overwriting any prior registration.
func (r *Registry[V]) Register(name string, factory Factory[V]) {
	r.factories[name] = factory
}

// RegisterType registers a factory that builds a zero value of t. Pointer
// types get a pointer to a new zero value of their element type.
func (r *Registry[V]) RegisterType(name string, t reflect.Type) error {
	factory, err := typeFactory[V](name, t)
	if err != nil {
		return err
	}
	r.factories[name] = factory
	return nil
}

// Resolve invokes the factory registered under name.
func (r *Registry[V]) Resolve(name string) (view V, err error) {
	factory, ok := r.factories[name]
	if !ok {
		return view, &RouteNotFoundError{Route: name}
	}
	if factory == nil {
		return view, &ViewCreationError{Route: name, Err: errNilFactory}
	}

	defer func() {
		if rec := recover(); rec != nil {
			var zero V
			view = zero
			err = &ViewCreationError{Route: name, Err: fmt.Errorf("factory panicked: %v", rec)}
		}
	}()

	created, ferr := factory()
	if ferr != nil {
		return view, &ViewCreationError{Route: name, Err: ferr}
	}
	return created, nil
}

// Has reports whether name is registered.
func (r *Registry[V]) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

// Names returns the registered route names in sorted order.
func (r *Registry[V]) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func typeFactory[V any](name string, t reflect.Type) (Factory[V], error) {
	if t == nil {
		return nil, &InvalidRouteTypeError{Route: name, Reason: "is not a type"}
	}
	target := reflect.TypeOf((*V)(nil)).Elem()

	if t.Kind() == reflect.Interface {
		return nil, &InvalidRouteTypeError{Route: name, Type: t, Reason: "is an interface and cannot be constructed"}
	}
	if !t.AssignableTo(target) {
		return nil, &InvalidRouteTypeError{Route: name, Type: t, Reason: fmt.Sprintf("is not assignable to %s", target)}
	}

	if t.Kind() == reflect.Pointer {
		elem := t.Elem()
		return func() (V, error) {
			return reflect.New(elem).Interface().(V), nil
		}, nil
	}
	return func() (V, error) {
		return reflect.New(t).Elem().Interface().(V), nil
	}, nil
}
