package navigator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigator_StartsAtInitial(t *testing.T) {
	n, err := New(Home, Register(Home, nil), Register(Booking, nil))

	require.NoError(t, err)
	assert.Equal(t, Home, n.Current())
	assert.True(t, n.Known(Booking))
	assert.False(t, n.Known(Edit))
}

func TestNavigator_ShowRunsHookOfTarget(t *testing.T) {
	var calls []View
	hook := func(v View) Hook {
		return func(context.Context) error {
			calls = append(calls, v)
			return nil
		}
	}

	n, err := New(Home,
		Register(Home, nil),
		Register(Reservations, hook(Reservations)),
		Register(Edit, hook(Edit)),
	)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, n.Show(ctx, Reservations))
	require.NoError(t, n.Show(ctx, Edit))
	require.NoError(t, n.Show(ctx, Reservations))
	require.NoError(t, n.Show(ctx, Home))

	assert.Equal(t, Home, n.Current())
	assert.Equal(t, []View{Reservations, Edit, Reservations}, calls)
}

func TestNavigator_ShowSameViewReloads(t *testing.T) {
	calls := 0
	n, err := New(Reservations, Register(Reservations, func(context.Context) error {
		calls++
		return nil
	}))
	require.NoError(t, err)

	require.NoError(t, n.Show(context.Background(), Reservations))
	require.NoError(t, n.Show(context.Background(), Reservations))
	assert.Equal(t, 2, calls)
}

func TestNavigator_HookErrorStillTransitions(t *testing.T) {
	loadErr := errors.New("database is locked")
	n, err := New(Home, Register(Home, nil), Register(Reservations, func(context.Context) error { return loadErr }))
	require.NoError(t, err)

	err = n.Show(context.Background(), Reservations)

	assert.Equal(t, loadErr, err)
	assert.False(t, IsFatal(err))
	assert.Equal(t, Reservations, n.Current())
}

func TestNavigator_UnknownViewIsFatal(t *testing.T) {
	n, err := New(Home, Register(Home, nil))
	require.NoError(t, err)

	err = n.Show(context.Background(), View("Settings"))

	var unknown *UnknownViewError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, View("Settings"), unknown.View)
	assert.True(t, IsFatal(err))
	assert.Equal(t, Home, n.Current())
}

func TestNew_RejectsBadRegistrations(t *testing.T) {
	_, err := New(Edit, Register(Home, nil))
	assert.True(t, IsFatal(err))

	_, err = New(Home, Register(Home, nil), Register(Home, nil))
	assert.Error(t, err)
}
