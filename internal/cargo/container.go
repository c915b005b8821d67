package cargo

import (
	"fmt"
	"io"
	"math"

	"github.com/shinji-kodama/fleetload/internal/model"
)

// Container is the capability shared by every container variant: it can
// report its identity and current load, accept cargo and be unloaded.
//
// Load and Unload are always the variant's own implementation; there is no
// behavior that depends on the static type of the reference the caller
// happens to hold.
type Container interface {
	// SerialNumber returns the immutable serial assigned at construction.
	SerialNumber() string

	// Kind returns the container variant.
	Kind() model.ContainerKind

	// LoadWeight returns the current cargo mass in kg.
	LoadWeight() float64

	// Dimensions returns the construction-time physical configuration.
	Dimensions() Dimensions

	// GrossWeight returns the tare weight plus the current cargo, in kg.
	GrossWeight() float64

	// Load adds weight kg of cargo, or returns an error and leaves the
	// load untouched when a rule rejects it.
	Load(weight float64) error

	// Unload empties the container according to the variant's rule.
	Unload()

	// String renders the serial and current load as ship listings show it.
	fmt.Stringer
}

// HazardNotifier is implemented by containers carrying dangerous cargo.
type HazardNotifier interface {
	// SendHazardNotification writes a human-readable hazard message
	// identifying the container. It does not change any state.
	SendHazardNotification(w io.Writer)
}

// NotifyHazard sends a hazard notification for c if it supports one and
// reports whether a message was written.
func NotifyHazard(c Container, w io.Writer) bool {
	notifier, ok := c.(HazardNotifier)
	if !ok {
		return false
	}
	notifier.SendHazardNotification(w)
	return true
}

// Dimensions holds the physical configuration of a container. All values
// are fixed at construction.
type Dimensions struct {
	// Height in cm.
	Height float64 `json:"height" yaml:"height"`

	// Depth in cm.
	Depth float64 `json:"depth" yaml:"depth"`

	// OwnWeight is the tare weight in kg.
	OwnWeight float64 `json:"ownWeight" yaml:"ownWeight"`

	// MaxLoad is the cargo capacity in kg.
	MaxLoad float64 `json:"maxLoad" yaml:"maxLoad"`
}

// base carries the state and the plain capacity rule shared by all
// variants. Variants embed it and layer their own checks in front of
// load.
type base struct {
	serial     string
	kind       model.ContainerKind
	dims       Dimensions
	loadWeight float64
}

func newBase(seq *Sequence, kind model.ContainerKind, dims Dimensions) base {
	return base{
		serial: seq.Next(kind.Code()),
		kind:   kind,
		dims:   dims,
	}
}

func (b *base) SerialNumber() string      { return b.serial }
func (b *base) Kind() model.ContainerKind { return b.kind }
func (b *base) LoadWeight() float64       { return b.loadWeight }
func (b *base) Dimensions() Dimensions    { return b.dims }

// GrossWeight returns the tare weight plus the current cargo.
func (b *base) GrossWeight() float64 { return b.dims.OwnWeight + b.loadWeight }

// load applies the base rule: finite, non-negative weight and a total
// within MaxLoad. Comparisons are written so that a NaN on either side
// rejects the load.
func (b *base) load(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("container %s: %w (got %s kg)", b.serial, model.ErrInvalidWeight, model.FormatNumber(weight))
	}
	if weight < 0 {
		return fmt.Errorf("container %s: %w (got %s kg)", b.serial, model.ErrNegativeWeight, model.FormatNumber(weight))
	}
	if !(weight+b.loadWeight <= b.dims.MaxLoad) {
		return &model.OverfillError{
			Serial:    b.serial,
			Requested: weight,
			Current:   b.loadWeight,
			MaxLoad:   b.dims.MaxLoad,
		}
	}
	b.loadWeight += weight
	return nil
}

// String renders the container the way ship listings show it.
func (b *base) String() string {
	return fmt.Sprintf("%s (%s kg loaded)", b.serial, model.FormatNumber(b.loadWeight))
}

// LiquidContainer carries liquids. Loads are capped at a product-dependent
// fraction of MaxLoad.
type LiquidContainer struct {
	base

	// ProductType names the cargo. "fuel" triggers the stricter cap.
	ProductType string

	// Pressure in bar.
	Pressure float64
}

// Load rejects cargo above the safe fill fraction, then applies the base
// capacity rule.
func (c *LiquidContainer) Load(weight float64) error {
	fraction := model.LiquidFillFraction(c.ProductType)
	limit := c.dims.MaxLoad * fraction
	if !(weight+c.loadWeight <= limit) {
		return &model.UnsafeLoadError{
			Serial:    c.serial,
			Product:   c.ProductType,
			Requested: weight,
			Current:   c.loadWeight,
			Limit:     limit,
			Fraction:  fraction,
		}
	}
	return c.load(weight)
}

// Unload empties the container.
func (c *LiquidContainer) Unload() {
	c.loadWeight = 0
}

// SendHazardNotification implements HazardNotifier.
func (c *LiquidContainer) SendHazardNotification(w io.Writer) {
	fmt.Fprintf(w, "Hazard: Liquid container %s has a dangerous situation.\n", c.serial)
}

// GasContainer carries pressurized gas.
type GasContainer struct {
	base

	// Pressure in bar.
	Pressure float64
}

// Load applies the base capacity rule unchanged.
func (c *GasContainer) Load(weight float64) error {
	return c.load(weight)
}

// Unload vents the container but keeps GasResidueFraction of the current
// load as residual pressurized gas.
func (c *GasContainer) Unload() {
	c.loadWeight *= model.GasResidueFraction
}

// SendHazardNotification implements HazardNotifier.
func (c *GasContainer) SendHazardNotification(w io.Writer) {
	fmt.Fprintf(w, "Hazard: Gas container %s has a dangerous situation.\n", c.serial)
}

// RefrigeratedContainer carries perishable goods. It refuses any load
// while its temperature is below the product's requirement.
type RefrigeratedContainer struct {
	base

	ProductType string

	// Temperature in degrees Celsius.
	Temperature float64
}

// Load checks the temperature requirement for ProductType, then applies
// the base capacity rule.
func (c *RefrigeratedContainer) Load(weight float64) error {
	required := model.RequiredTemperature(c.ProductType)
	if !(c.Temperature >= required) {
		return &model.TemperatureError{
			Serial:      c.serial,
			Product:     c.ProductType,
			Temperature: c.Temperature,
			Required:    required,
		}
	}
	return c.load(weight)
}

// Unload empties the container.
func (c *RefrigeratedContainer) Unload() {
	c.loadWeight = 0
}

// Compile-time checks that each variant satisfies its capabilities.
var (
	_ Container      = (*LiquidContainer)(nil)
	_ Container      = (*GasContainer)(nil)
	_ Container      = (*RefrigeratedContainer)(nil)
	_ HazardNotifier = (*LiquidContainer)(nil)
	_ HazardNotifier = (*GasContainer)(nil)
)
