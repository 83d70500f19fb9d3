// Package navigator tracks which view of the application is visible.
//
// The set of views is fixed when the Navigator is built. Show moves to any
// known view and runs that view's refresh hook, so data on screen is always
// reloaded on entry. Asking for a view that was never registered is a
// programming error, reported as *UnknownViewError.
package navigator

import (
	"context"
	"errors"
	"fmt"
)

type View string

const (
	Home               View = "Home"
	Booking            View = "Booking"
	Reservations       View = "Reservations"
	Edit               View = "Edit"
	Flights            View = "Flights"
	ReservationsDialog View = "ReservationsDialog"
)

// Hook reloads the data a view displays. It runs after the view became current.
type Hook func(ctx context.Context) error

type UnknownViewError struct {
	View View
}

func (e *UnknownViewError) Error() string {
	return fmt.Sprintf("unknown view %q", string(e.View))
}

// IsFatal reports whether err must terminate the program.
func IsFatal(err error) bool {
	var unknown *UnknownViewError
	return errors.As(err, &unknown)
}

type Registration struct {
	View View
	Hook Hook
}

// Register names a view with an optional refresh hook.
func Register(v View, hook Hook) Registration {
	return Registration{View: v, Hook: hook}
}

type Navigator struct {
	current View
	hooks   map[View]Hook
}

// New returns a navigator positioned at initial. initial must be one of views.
func New(initial View, views ...Registration) (*Navigator, error) {
	n := &Navigator{hooks: make(map[View]Hook, len(views))}
	for _, r := range views {
		if _, dup := n.hooks[r.View]; dup {
			return nil, fmt.Errorf("view %q registered twice", string(r.View))
		}
		n.hooks[r.View] = r.Hook
	}
	if _, ok := n.hooks[initial]; !ok {
		return nil, &UnknownViewError{View: initial}
	}
	n.current = initial
	return n, nil
}

func (n *Navigator) Current() View {
	return n.current
}

func (n *Navigator) Known(v View) bool {
	_, ok := n.hooks[v]
	return ok
}

// Show makes v current and runs its hook. A hook error is returned but the
// transition stands: the view is shown with whatever it managed to load.
func (n *Navigator) Show(ctx context.Context, v View) error {
	hook, ok := n.hooks[v]
	if !ok {
		return &UnknownViewError{View: v}
	}
	n.current = v
	if hook == nil {
		return nil
	}
	return hook(ctx)
}
