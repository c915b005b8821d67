// Package model defines the domain types for the fleetload CLI.
//
// The cargo rules encoded here are constants of the domain, not
// configuration: a scenario manifest can choose which containers exist and
// what is loaded into them, but never the thresholds a container enforces.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// ContainerKind identifies a container variant. Each kind carries its own
// load-acceptance rule and a one-letter type code used in serial numbers.
type ContainerKind string

const (
	// KindLiquid containers refuse loads above a product-dependent
	// fraction of their max load (see LiquidFillFraction).
	KindLiquid ContainerKind = "liquid"

	// KindGas containers use the plain capacity rule but keep a residue
	// of pressurized gas when unloaded (see GasResidueFraction).
	KindGas ContainerKind = "gas"

	// KindRefrigerated containers refuse any load while their temperature
	// is below the product's required temperature.
	KindRefrigerated ContainerKind = "refrigerated"
)

// ContainerKinds lists every valid kind in display order.
var ContainerKinds = []ContainerKind{KindLiquid, KindGas, KindRefrigerated}

// String returns the string representation of ContainerKind.
func (k ContainerKind) String() string {
	return string(k)
}

// IsValid checks whether the ContainerKind value is one of the
// predefined kinds.
func (k ContainerKind) IsValid() bool {
	switch k {
	case KindLiquid, KindGas, KindRefrigerated:
		return true
	default:
		return false
	}
}

// Code returns the serial-number type code for the kind:
// "L" for liquid, "G" for gas, "C" for refrigerated (cooled).
// Invalid kinds return an empty string.
func (k ContainerKind) Code() string {
	switch k {
	case KindLiquid:
		return "L"
	case KindGas:
		return "G"
	case KindRefrigerated:
		return "C"
	default:
		return ""
	}
}

// IsHazardous reports whether containers of this kind carry dangerous
// cargo and therefore expose a hazard-notification capability.
func (k ContainerKind) IsHazardous() bool {
	return k == KindLiquid || k == KindGas
}

// ParseContainerKind converts a string to a ContainerKind.
// Returns an error if the string does not match any valid kind.
func ParseContainerKind(s string) (ContainerKind, error) {
	kind := ContainerKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid container kind: %q (valid: liquid, gas, refrigerated)", s)
	}
	return kind, nil
}

// Product names recognized by the cargo rules. Any other product name is
// accepted and falls back to the default thresholds.
const (
	ProductFuel    = "fuel"
	ProductBananas = "bananas"
	ProductMilk    = "milk"
)

const (
	// fuelFillFraction caps fuel loads at half of a liquid container's
	// max load.
	fuelFillFraction = 0.5

	// defaultFillFraction caps every other liquid at 90% of max load.
	defaultFillFraction = 0.9

	// GasResidueFraction is the share of the current load a gas container
	// keeps after being unloaded.
	GasResidueFraction = 0.05
)

// requiredTemperatures maps refrigerated products to their minimum
// storage temperature in degrees Celsius.
var requiredTemperatures = map[string]float64{
	ProductBananas: 10.0,
	ProductMilk:    4.0,
}

// RequiredTemperature returns the minimum temperature a refrigerated
// container must hold before it accepts the given product.
// Unknown products require 0.0.
func RequiredTemperature(product string) float64 {
	return requiredTemperatures[product]
}

// KnownRefrigeratedProducts returns the products with a dedicated
// temperature requirement, sorted by name.
func KnownRefrigeratedProducts() []string {
	return []string{ProductBananas, ProductMilk}
}

// LiquidFillFraction returns the share of max load a liquid container may
// hold for the given product: 0.5 for fuel, 0.9 for anything else.
func LiquidFillFraction(product string) float64 {
	if product == ProductFuel {
		return fuelFillFraction
	}
	return defaultFillFraction
}

// FormatNumber renders a weight, speed or temperature with the shortest
// decimal representation ("500", "75", "12.5").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ExitCode defines the CLI exit codes. These codes allow scripts and CI
// systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitManifestNotFound indicates the scenario manifest file does not exist.
	ExitManifestNotFound ExitCode = 2

	// ExitManifestInvalid indicates the manifest could not be decoded or
	// failed validation.
	ExitManifestInvalid ExitCode = 3

	// ExitLoadRejected indicates at least one scenario block was aborted by
	// a rejected load. Only returned when --strict is set.
	ExitLoadRejected ExitCode = 4
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
