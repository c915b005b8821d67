package ship

import (
	"fmt"
	"io"

	"github.com/shinji-kodama/fleetload/internal/cargo"
	"github.com/shinji-kodama/fleetload/internal/model"
)

// Ship carries containers up to a count cap and an aggregate cargo weight
// cap. The caps are fixed at construction.
type Ship struct {
	// Name identifies the ship in listings and errors.
	Name string

	// MaxSpeed in knots. Informational only.
	MaxSpeed float64

	// MaxContainers is the count cap.
	MaxContainers int

	// MaxWeight caps the sum of the carried containers' load weights.
	// PrintInfo labels it in tons while container loads are
	// in kg; the comparison is unit-less.
	MaxWeight float64

	containers []cargo.Container
}

// New creates an empty Ship.
func New(name string, maxSpeed float64, maxContainers int, maxWeight float64) *Ship {
	return &Ship{
		Name:          name,
		MaxSpeed:      maxSpeed,
		MaxContainers: maxContainers,
		MaxWeight:     maxWeight,
	}
}

// LoadContainer registers c with the ship.
//
// The count cap is checked first: a full ship rejects the container even
// if its weight would fit. Otherwise the container's current load is added
// to the aggregate and compared with MaxWeight. Rejected containers are
// not registered.
func (s *Ship) LoadContainer(c cargo.Container) error {
	if len(s.containers) >= s.MaxContainers {
		return &model.ShipCapacityError{
			Ship:    s.Name,
			Serial:  c.SerialNumber(),
			Reason:  model.CapacityCount,
			Limit:   float64(s.MaxContainers),
			Current: float64(len(s.containers)),
		}
	}

	total := s.TotalLoad()
	// Written so that a NaN load or cap rejects the container.
	if !(total+c.LoadWeight() <= s.MaxWeight) {
		return &model.ShipCapacityError{
			Ship:      s.Name,
			Serial:    c.SerialNumber(),
			Reason:    model.CapacityWeight,
			Limit:     s.MaxWeight,
			Current:   total,
			Requested: c.LoadWeight(),
		}
	}

	s.containers = append(s.containers, c)
	return nil
}

// UnloadContainer removes the first reference to c and reports whether one
// was found. Unloading a container that is not aboard is a no-op.
func (s *Ship) UnloadContainer(c cargo.Container) bool {
	for i, existing := range s.containers {
		if existing == c {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether c is aboard.
func (s *Ship) Contains(c cargo.Container) bool {
	for _, existing := range s.containers {
		if existing == c {
			return true
		}
	}
	return false
}

// Containers returns the carried containers in load order. The returned
// slice is a copy; the containers are shared.
func (s *Ship) Containers() []cargo.Container {
	out := make([]cargo.Container, len(s.containers))
	copy(out, s.containers)
	return out
}

// Len returns the number of containers aboard.
func (s *Ship) Len() int {
	return len(s.containers)
}

// TotalLoad returns the sum of the carried containers' current load
// weights. Loads are read live, so a container loaded or unloaded while
// aboard changes the total.
func (s *Ship) TotalLoad() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.LoadWeight()
	}
	return total
}

// PrintInfo writes the ship header followed by one line per container, in
// load order:
//
//	Ship Ship 1 (Speed: 25 knots, Max Containers: 100, Max Weight: 40000 tons)
//	- Container KON-L-1 (500 kg loaded)
func (s *Ship) PrintInfo(w io.Writer) {
	fmt.Fprintf(w, "Ship %s (Speed: %s knots, Max Containers: %d, Max Weight: %s tons)\n",
		s.Name, model.FormatNumber(s.MaxSpeed), s.MaxContainers, model.FormatNumber(s.MaxWeight))
	for _, c := range s.containers {
		fmt.Fprintf(w, "- Container %s\n", c)
	}
}
