package scenario

import (
	"fmt"
	"strings"

	"github.com/shinji-kodama/fleetload/internal/cargo"
	"github.com/shinji-kodama/fleetload/internal/model"
)

// Manifest is the decoded form of a scenario file.
type Manifest struct {
	// Name is a display name for the scenario.
	Name string `yaml:"name" json:"name"`

	// Ships lists the ships taking part. Steps that omit a ship refer to
	// the first one.
	Ships []ShipSpec `yaml:"ships" json:"ships"`

	// Containers lists the containers, constructed in this order. The
	// order determines their serial numbers.
	Containers []ContainerSpec `yaml:"containers" json:"containers"`

	// Blocks are executed in order.
	Blocks []Block `yaml:"blocks" json:"blocks"`
}

// ShipSpec declares a ship.
type ShipSpec struct {
	// ID is the key steps use to refer to the ship. Defaults to Name.
	ID string `yaml:"id,omitempty" json:"id,omitempty"`

	Name          string  `yaml:"name" json:"name"`
	MaxSpeed      float64 `yaml:"maxSpeed" json:"maxSpeed"`
	MaxContainers int     `yaml:"maxContainers" json:"maxContainers"`
	MaxWeight     float64 `yaml:"maxWeight" json:"maxWeight"`
}

// Key returns the identifier steps use for the ship.
func (s ShipSpec) Key() string {
	if s.ID != "" {
		return s.ID
	}
	return s.Name
}

// ContainerSpec declares a container. Kind-specific fields are ignored for
// kinds they do not apply to.
type ContainerSpec struct {
	// ID is the key steps use to refer to the container. It is unrelated
	// to the serial number, which is assigned at construction.
	ID string `yaml:"id" json:"id"`

	// Kind is one of liquid, gas, refrigerated.
	Kind string `yaml:"kind" json:"kind"`

	MaxLoad   float64 `yaml:"maxLoad" json:"maxLoad"`
	Height    float64 `yaml:"height,omitempty" json:"height,omitempty"`
	Depth     float64 `yaml:"depth,omitempty" json:"depth,omitempty"`
	OwnWeight float64 `yaml:"ownWeight,omitempty" json:"ownWeight,omitempty"`

	ProductType string  `yaml:"productType,omitempty" json:"productType,omitempty"`
	Pressure    float64 `yaml:"pressure,omitempty" json:"pressure,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty" json:"temperature,omitempty"`
}

// CargoSpec converts the manifest entry into a cargo.Spec.
func (c ContainerSpec) CargoSpec() (cargo.Spec, error) {
	kind, err := model.ParseContainerKind(c.Kind)
	if err != nil {
		return cargo.Spec{}, err
	}
	return cargo.Spec{
		Kind: kind,
		Dimensions: cargo.Dimensions{
			Height:    c.Height,
			Depth:     c.Depth,
			OwnWeight: c.OwnWeight,
			MaxLoad:   c.MaxLoad,
		},
		ProductType: c.ProductType,
		Pressure:    c.Pressure,
		Temperature: c.Temperature,
	}, nil
}

// Block is a protected region of steps.
type Block struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Action names what a step does.
type Action string

const (
	// ActionLoad puts Weight kg of cargo into Container.
	ActionLoad Action = "load"

	// ActionUnload empties Container according to its kind.
	ActionUnload Action = "unload"

	// ActionBoard registers Container with Ship.
	ActionBoard Action = "board"

	// ActionUnboard removes Container from Ship.
	ActionUnboard Action = "unboard"

	// ActionPrint writes the ship listing for Ship.
	ActionPrint Action = "print"

	// ActionNotify sends Container's hazard notification.
	ActionNotify Action = "notify"

	// ActionEcho writes Message verbatim.
	ActionEcho Action = "echo"
)

// Actions lists every valid action.
var Actions = []Action{
	ActionLoad, ActionUnload, ActionBoard, ActionUnboard,
	ActionPrint, ActionNotify, ActionEcho,
}

// String returns the string representation of Action.
func (a Action) String() string {
	return string(a)
}

// IsValid checks whether the Action is one of the predefined actions.
func (a Action) IsValid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// needsContainer reports whether the action operates on a container.
func (a Action) needsContainer() bool {
	switch a {
	case ActionLoad, ActionUnload, ActionBoard, ActionUnboard, ActionNotify:
		return true
	default:
		return false
	}
}

// usesShip reports whether the action operates on a ship.
func (a Action) usesShip() bool {
	return a == ActionBoard || a == ActionUnboard || a == ActionPrint
}

// Step is one scripted operation.
type Step struct {
	Action    Action `yaml:"action" json:"action"`
	Container string `yaml:"container,omitempty" json:"container,omitempty"`

	// Ship defaults to the manifest's first ship.
	Ship string `yaml:"ship,omitempty" json:"ship,omitempty"`

	// Weight is required for load steps.
	Weight *float64 `yaml:"weight,omitempty" json:"weight,omitempty"`

	// Message is required for echo steps.
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
}

// Describe renders the step for logs and reports, e.g.
// "load c1 500", "board c1 -> ship1", "echo".
func (s Step) Describe() string {
	parts := []string{s.Action.String()}
	if s.Container != "" {
		parts = append(parts, s.Container)
	}
	if s.Action == ActionLoad && s.Weight != nil {
		parts = append(parts, model.FormatNumber(*s.Weight))
	}
	if s.Ship != "" {
		parts = append(parts, "->", s.Ship)
	}
	return strings.Join(parts, " ")
}

// String implements fmt.Stringer.
func (s Step) String() string {
	return s.Describe()
}

// Kg returns a pointer to w, for building load steps in code.
func Kg(w float64) *float64 {
	return &w
}

// blockLabel returns the block's name, or its position when unnamed.
func blockLabel(b Block, index int) string {
	if b.Name != "" {
		return b.Name
	}
	return fmt.Sprintf("block %d", index+1)
}
