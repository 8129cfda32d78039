package router

import (
	"errors"
	"fmt"
	"reflect"
)

// RouteNotFoundError is returned when a route name has no registration.
type RouteNotFoundError struct {
	Route string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("router: route %q not found", e.Route)
}

// ViewCreationError wraps a failure raised by a route's factory.
type ViewCreationError struct {
	Route string
	Err   error
}

func (e *ViewCreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("router: create view for %q: %v", e.Route, e.Err)
	}
	return fmt.Sprintf("router: create view for %q", e.Route)
}

func (e *ViewCreationError) Unwrap() error {
	return e.Err
}

// InvalidRouteTypeError is returned by RegisterType when the given type cannot
// produce a view.
type InvalidRouteTypeError struct {
	Route  string
	Type   reflect.Type
	Reason string
}

func (e *InvalidRouteTypeError) Error() string {
	name := "<nil>"
	if e.Type != nil {
		name = e.Type.String()
	}
	return fmt.Sprintf("router: route %q: type %s %s", e.Route, name, e.Reason)
}

// IsRouteNotFound reports whether err is or wraps a RouteNotFoundError.
func IsRouteNotFound(err error) bool {
	var target *RouteNotFoundError
	return errors.As(err, &target)
}

// IsViewCreation reports whether err is or wraps a ViewCreationError.
func IsViewCreation(err error) bool {
	var target *ViewCreationError
	return errors.As(err, &target)
}

// IsInvalidRouteType reports whether err is or wraps an InvalidRouteTypeError.
func IsInvalidRouteType(err error) bool {
	var target *InvalidRouteTypeError
	return errors.As(err, &target)
}
