package model

import (
	"errors"
	"fmt"
)

// ErrNegativeWeight is returned (wrapped) when a load request carries a
// negative weight. Loads are additive only; removing cargo goes through
// Unload.
var ErrNegativeWeight = errors.New("load weight must not be negative")

// ErrInvalidWeight is returned (wrapped) when a load request carries NaN
// or an infinite weight.
var ErrInvalidWeight = errors.New("load weight must be a finite number")

// OverfillError reports a load that would push a container past its
// maximum load.
type OverfillError struct {
	// Serial identifies the container that rejected the load.
	Serial string

	// Requested is the weight that was offered, in kg.
	Requested float64

	// Current is the container's load weight before the attempt, in kg.
	Current float64

	// MaxLoad is the container's capacity, in kg.
	MaxLoad float64
}

// Error implements the error interface for OverfillError.
func (e *OverfillError) Error() string {
	return fmt.Sprintf("overfill: container %s cannot take %s kg on top of %s kg (max load %s kg)",
		e.Serial, FormatNumber(e.Requested), FormatNumber(e.Current), FormatNumber(e.MaxLoad))
}

// UnsafeLoadError reports a liquid load that exceeds the safe fill
// fraction for its product.
type UnsafeLoadError struct {
	Serial    string
	Product   string
	Requested float64
	Current   float64

	// Limit is the effective cap (max load times Fraction), in kg.
	Limit float64

	// Fraction is the share of max load allowed for Product.
	Fraction float64
}

// Error implements the error interface for UnsafeLoadError.
func (e *UnsafeLoadError) Error() string {
	return fmt.Sprintf("unsafe loading attempt: container %s cannot take %s kg on top of %s kg of %q (limit %s kg, %s%% of max load)",
		e.Serial, FormatNumber(e.Requested), FormatNumber(e.Current), e.Product,
		FormatNumber(e.Limit), FormatNumber(e.Fraction*100))
}

// TemperatureError reports a refrigerated container held below the
// minimum temperature of the product it was asked to carry.
type TemperatureError struct {
	Serial      string
	Product     string
	Temperature float64
	Required    float64
}

// Error implements the error interface for TemperatureError.
func (e *TemperatureError) Error() string {
	return fmt.Sprintf("temperature too low for %s: container %s is at %s°C, requires at least %s°C",
		e.Product, e.Serial, FormatNumber(e.Temperature), FormatNumber(e.Required))
}

// CapacityReason names the ship-level cap a rejected container ran into.
type CapacityReason string

const (
	// CapacityCount means the ship already holds MaxContainers containers.
	CapacityCount CapacityReason = "count"

	// CapacityWeight means the container's load would push the ship's
	// aggregate cargo past MaxWeight.
	CapacityWeight CapacityReason = "weight"
)

// ShipCapacityError reports a container that a ship refused to take on.
type ShipCapacityError struct {
	Ship   string
	Serial string
	Reason CapacityReason

	// Limit is MaxContainers for CapacityCount and MaxWeight for
	// CapacityWeight.
	Limit float64

	// Current is the container count or aggregate load before the attempt.
	Current float64

	// Requested is the container's load weight (CapacityWeight only).
	Requested float64
}

// Error implements the error interface for ShipCapacityError.
func (e *ShipCapacityError) Error() string {
	if e.Reason == CapacityCount {
		return fmt.Sprintf("cannot load container %s onto ship %s: capacity exceeded, already carrying %s of %s containers",
			e.Serial, e.Ship, FormatNumber(e.Current), FormatNumber(e.Limit))
	}
	return fmt.Sprintf("cannot load container %s onto ship %s: capacity exceeded, %s kg on top of %s kg exceeds max weight %s",
		e.Serial, e.Ship, FormatNumber(e.Requested), FormatNumber(e.Current), FormatNumber(e.Limit))
}

// AlreadyAboardError reports an attempt to board a container that is still
// registered with another ship.
type AlreadyAboardError struct {
	Serial string
	Ship   string
}

// Error implements the error interface for AlreadyAboardError.
func (e *AlreadyAboardError) Error() string {
	return fmt.Sprintf("container %s is already aboard ship %s", e.Serial, e.Ship)
}

// IsLoadRejection reports whether err is (or wraps) one of the cargo rule
// violations. Scenario blocks treat these as expected outcomes; anything
// else is a programming or manifest error.
func IsLoadRejection(err error) bool {
	var (
		overfill *OverfillError
		unsafe   *UnsafeLoadError
		temp     *TemperatureError
		capacity *ShipCapacityError
		aboard   *AlreadyAboardError
	)
	return errors.Is(err, ErrNegativeWeight) ||
		errors.Is(err, ErrInvalidWeight) ||
		errors.As(err, &overfill) ||
		errors.As(err, &unsafe) ||
		errors.As(err, &temp) ||
		errors.As(err, &capacity) ||
		errors.As(err, &aboard)
}
