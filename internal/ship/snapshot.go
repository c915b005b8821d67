package ship

import "github.com/shinji-kodama/fleetload/internal/model"

// Snapshot is a point-in-time, serializable view of a ship and its cargo.
// It is used for --json output.
type Snapshot struct {
	Name          string              `json:"name"`
	MaxSpeed      float64             `json:"maxSpeed"`
	MaxContainers int                 `json:"maxContainers"`
	MaxWeight     float64             `json:"maxWeight"`
	TotalLoad     float64             `json:"totalLoad"`
	Containers    []ContainerSnapshot `json:"containers"`
}

// ContainerSnapshot describes one container aboard.
type ContainerSnapshot struct {
	SerialNumber string              `json:"serialNumber"`
	Kind         model.ContainerKind `json:"kind"`
	LoadWeight   float64             `json:"loadWeight"`
	GrossWeight  float64             `json:"grossWeight"`
	MaxLoad      float64             `json:"maxLoad"`
}

// Snapshot captures the ship's current state.
func (s *Ship) Snapshot() Snapshot {
	snap := Snapshot{
		Name:          s.Name,
		MaxSpeed:      s.MaxSpeed,
		MaxContainers: s.MaxContainers,
		MaxWeight:     s.MaxWeight,
		TotalLoad:     s.TotalLoad(),
		// Use an empty slice instead of nil so JSON output shows []
		// instead of null for an empty ship.
		Containers: make([]ContainerSnapshot, 0, len(s.containers)),
	}
	for _, c := range s.containers {
		snap.Containers = append(snap.Containers, ContainerSnapshot{
			SerialNumber: c.SerialNumber(),
			Kind:         c.Kind(),
			LoadWeight:   c.LoadWeight(),
			GrossWeight:  c.GrossWeight(),
			MaxLoad:      c.Dimensions().MaxLoad,
		})
	}
	return snap
}
