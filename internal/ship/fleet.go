package ship

import (
	"fmt"

	"github.com/shinji-kodama/fleetload/internal/cargo"
	"github.com/shinji-kodama/fleetload/internal/model"
)

// Fleet is a set of named ships that enforces the one-ship-at-a-time rule:
// a container registered with one ship must be unloaded from it before it
// can board another. A single Ship on its own cannot see other ships, so
// the rule lives here.
type Fleet struct {
	ships []*Ship
	byKey map[string]*Ship

	// aboard maps a container serial to the ship currently carrying it.
	aboard map[string]*Ship
}

// NewFleet creates an empty Fleet.
func NewFleet() *Fleet {
	return &Fleet{
		byKey:  make(map[string]*Ship),
		aboard: make(map[string]*Ship),
	}
}

// Add registers s with the fleet under key. Keys must be unique.
func (f *Fleet) Add(key string, s *Ship) error {
	if _, exists := f.byKey[key]; exists {
		return fmt.Errorf("ship %q is already part of the fleet", key)
	}
	f.byKey[key] = s
	f.ships = append(f.ships, s)
	return nil
}

// Ship looks up a ship by key.
func (f *Fleet) Ship(key string) (*Ship, bool) {
	s, ok := f.byKey[key]
	return s, ok
}

// Ships returns the fleet's ships in registration order.
func (f *Fleet) Ships() []*Ship {
	out := make([]*Ship, len(f.ships))
	copy(out, f.ships)
	return out
}

// Board loads c onto s. It fails with *model.AlreadyAboardError when c is
// still aboard a different ship, otherwise with whatever s.LoadContainer
// returns.
func (f *Fleet) Board(s *Ship, c cargo.Container) error {
	if current, ok := f.aboard[c.SerialNumber()]; ok && current != s {
		return &model.AlreadyAboardError{Serial: c.SerialNumber(), Ship: current.Name}
	}
	if err := s.LoadContainer(c); err != nil {
		return err
	}
	f.aboard[c.SerialNumber()] = s
	return nil
}

// Unboard removes c from s and reports whether it was aboard.
func (f *Fleet) Unboard(s *Ship, c cargo.Container) bool {
	if !s.UnloadContainer(c) {
		return false
	}
	// The same container may have been boarded on s more than once;
	// only forget it once the last reference is gone.
	if !s.Contains(c) {
		delete(f.aboard, c.SerialNumber())
	}
	return true
}

// Carrier returns the ship currently carrying c, if any.
func (f *Fleet) Carrier(c cargo.Container) (*Ship, bool) {
	s, ok := f.aboard[c.SerialNumber()]
	return s, ok
}
