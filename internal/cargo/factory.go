package cargo

import (
	"fmt"
	"math"

	"github.com/shinji-kodama/fleetload/internal/model"
)

// Spec describes a container to build. Fields that do not apply to the
// chosen Kind are ignored (e.g. Temperature for a gas container).
type Spec struct {
	Kind model.ContainerKind
	Dimensions

	ProductType string
	Pressure    float64
	Temperature float64
}

// Factory builds containers and assigns their serial numbers from the
// Sequence it owns.
type Factory struct {
	seq *Sequence
}

// NewFactory creates a Factory with a fresh Sequence.
func NewFactory() *Factory {
	return NewFactoryWithSequence(NewSequence())
}

// NewFactoryWithSequence creates a Factory that draws serials from seq.
// Factories sharing a Sequence never issue the same serial twice.
func NewFactoryWithSequence(seq *Sequence) *Factory {
	return &Factory{seq: seq}
}

// NewLiquid builds a LiquidContainer.
func (f *Factory) NewLiquid(dims Dimensions, productType string, pressure float64) *LiquidContainer {
	return &LiquidContainer{
		base:        newBase(f.seq, model.KindLiquid, dims),
		ProductType: productType,
		Pressure:    pressure,
	}
}

// NewGas builds a GasContainer.
func (f *Factory) NewGas(dims Dimensions, pressure float64) *GasContainer {
	return &GasContainer{
		base:     newBase(f.seq, model.KindGas, dims),
		Pressure: pressure,
	}
}

// NewRefrigerated builds a RefrigeratedContainer.
func (f *Factory) NewRefrigerated(dims Dimensions, productType string, temperature float64) *RefrigeratedContainer {
	return &RefrigeratedContainer{
		base:        newBase(f.seq, model.KindRefrigerated, dims),
		ProductType: productType,
		Temperature: temperature,
	}
}

// Build constructs the variant named by spec.Kind. No serial is consumed
// when the spec is rejected.
func (f *Factory) Build(spec Spec) (Container, error) {
	if err := spec.Dimensions.Validate(); err != nil {
		return nil, err
	}

	switch spec.Kind {
	case model.KindLiquid:
		return f.NewLiquid(spec.Dimensions, spec.ProductType, spec.Pressure), nil
	case model.KindGas:
		return f.NewGas(spec.Dimensions, spec.Pressure), nil
	case model.KindRefrigerated:
		return f.NewRefrigerated(spec.Dimensions, spec.ProductType, spec.Temperature), nil
	default:
		return nil, fmt.Errorf("invalid container kind: %q (valid: liquid, gas, refrigerated)", spec.Kind)
	}
}

// Validate checks that every dimension is a finite, non-negative number.
func (d Dimensions) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"height", d.Height},
		{"depth", d.Depth},
		{"ownWeight", d.OwnWeight},
		{"maxLoad", d.MaxLoad},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("container %s must be a finite number (got %s)", f.name, model.FormatNumber(f.value))
		}
		if f.value < 0 {
			return fmt.Errorf("container %s must not be negative (got %s)", f.name, model.FormatNumber(f.value))
		}
	}
	return nil
}
