package ship

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/fleetload/internal/cargo"
	"github.com/shinji-kodama/fleetload/internal/model"
)

func newTestFleet(t *testing.T) (*Fleet, *Ship, *Ship) {
	t.Helper()
	fleet := NewFleet()
	north := New("Northern Star", 20, 10, 10000)
	south := New("Southern Cross", 18, 10, 10000)
	require.NoError(t, fleet.Add("north", north))
	require.NoError(t, fleet.Add("south", south))
	return fleet, north, south
}

// TestFleet_Add verifies key uniqueness and registration order.
func TestFleet_Add(t *testing.T) {
	fleet, north, south := newTestFleet(t)

	err := fleet.Add("north", New("Impostor", 1, 1, 1))
	assert.Error(t, err)

	got, ok := fleet.Ship("south")
	require.True(t, ok)
	assert.Same(t, south, got)

	_, ok = fleet.Ship("west")
	assert.False(t, ok)

	assert.Equal(t, []*Ship{north, south}, fleet.Ships())
}

// TestFleet_OneShipAtATime verifies a container cannot board a second ship
// until it has been unboarded from the first.
func TestFleet_OneShipAtATime(t *testing.T) {
	fleet, north, south := newTestFleet(t)
	c := cargo.NewFactory().NewGas(cargo.Dimensions{MaxLoad: 100}, 0)

	require.NoError(t, fleet.Board(north, c))

	err := fleet.Board(south, c)
	var aboard *model.AlreadyAboardError
	require.True(t, errors.As(err, &aboard))
	assert.Equal(t, "Northern Star", aboard.Ship)
	assert.Equal(t, 0, south.Len())

	carrier, ok := fleet.Carrier(c)
	require.True(t, ok)
	assert.Same(t, north, carrier)

	require.True(t, fleet.Unboard(north, c))
	_, ok = fleet.Carrier(c)
	assert.False(t, ok)

	assert.NoError(t, fleet.Board(south, c))
}

// TestFleet_BoardCapacityFailure verifies a rejected boarding does not
// mark the container as aboard.
func TestFleet_BoardCapacityFailure(t *testing.T) {
	fleet := NewFleet()
	small := New("Small", 5, 0, 100)
	require.NoError(t, fleet.Add("small", small))

	c := cargo.NewFactory().NewGas(cargo.Dimensions{}, 0)
	err := fleet.Board(small, c)

	var capErr *model.ShipCapacityError
	require.True(t, errors.As(err, &capErr))
	_, ok := fleet.Carrier(c)
	assert.False(t, ok)
}

// TestFleet_UnboardNotAboard verifies unboarding a container that is not
// on the ship is a no-op.
func TestFleet_UnboardNotAboard(t *testing.T) {
	fleet, north, _ := newTestFleet(t)
	c := cargo.NewFactory().NewGas(cargo.Dimensions{}, 0)
	assert.False(t, fleet.Unboard(north, c))
}

// TestFleet_DuplicateBoarding verifies that re-boarding onto the same ship
// is allowed and the container stays registered until the last reference
// is removed.
func TestFleet_DuplicateBoarding(t *testing.T) {
	fleet, north, _ := newTestFleet(t)
	c := cargo.NewFactory().NewGas(cargo.Dimensions{}, 0)

	require.NoError(t, fleet.Board(north, c))
	require.NoError(t, fleet.Board(north, c))

	require.True(t, fleet.Unboard(north, c))
	_, ok := fleet.Carrier(c)
	assert.True(t, ok, "one reference remains")

	require.True(t, fleet.Unboard(north, c))
	_, ok = fleet.Carrier(c)
	assert.False(t, ok)
}
