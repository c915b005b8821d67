package cargo

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/fleetload/internal/model"
)

// TestLoad_IncreasesByExactWeight verifies that a successful load adds
// exactly the requested weight, for every variant.
func TestLoad_IncreasesByExactWeight(t *testing.T) {
	f := NewFactory()
	containers := []Container{
		f.NewLiquid(Dimensions{MaxLoad: 1000}, "milk", 0),
		f.NewGas(Dimensions{MaxLoad: 1000}, 0),
		f.NewRefrigerated(Dimensions{MaxLoad: 1000}, "bananas", 12),
	}

	for _, c := range containers {
		t.Run(c.Kind().String(), func(t *testing.T) {
			require.NoError(t, c.Load(100))
			assert.Equal(t, 100.0, c.LoadWeight())

			require.NoError(t, c.Load(250.5))
			assert.Equal(t, 350.5, c.LoadWeight())
		})
	}
}

// TestLoad_NegativeWeight verifies that negative weights are rejected by
// the base rule and leave the load untouched.
func TestLoad_NegativeWeight(t *testing.T) {
	f := NewFactory()
	c := f.NewGas(Dimensions{MaxLoad: 1000}, 0)
	require.NoError(t, c.Load(10))

	err := c.Load(-5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNegativeWeight))
	assert.Equal(t, 10.0, c.LoadWeight())
}

// TestGasContainer_Overfill verifies the base capacity rule: reaching
// MaxLoad exactly is fine, going past it is an OverfillError.
func TestGasContainer_Overfill(t *testing.T) {
	f := NewFactory()
	c := f.NewGas(Dimensions{MaxLoad: 2000}, 0)

	require.NoError(t, c.Load(1500), "gas has no percentage cap")
	require.NoError(t, c.Load(500), "loading up to exactly max load succeeds")

	err := c.Load(1)
	var overfill *model.OverfillError
	require.True(t, errors.As(err, &overfill))
	assert.Equal(t, "KON-G-1", overfill.Serial)
	assert.Equal(t, 2000.0, overfill.Current)
	assert.Equal(t, 2000.0, c.LoadWeight(), "rejected load must not be applied")
}

// TestLiquidContainer_FillFraction covers the fuel (50%) and non-fuel
// (90%) caps at, and just above, the threshold.
func TestLiquidContainer_FillFraction(t *testing.T) {
	tests := []struct {
		name    string
		product string
		weight  float64
		wantErr bool
	}{
		{"fuel at half", "fuel", 500, false},
		{"fuel above half", "fuel", 500.5, true},
		{"milk at ninety percent", "milk", 900, false},
		{"milk above ninety percent", "milk", 901, true},
		{"unnamed product uses ninety percent", "", 900, false},
		{"fuel far below cap", "fuel", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFactory().NewLiquid(Dimensions{MaxLoad: 1000}, tt.product, 1)
			err := c.Load(tt.weight)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.weight, c.LoadWeight())
				return
			}

			var unsafe *model.UnsafeLoadError
			require.True(t, errors.As(err, &unsafe), "expected UnsafeLoadError, got %v", err)
			assert.Equal(t, tt.product, unsafe.Product)
			assert.Equal(t, 0.0, c.LoadWeight())
		})
	}
}

// TestLiquidContainer_CumulativeCap verifies that the fill fraction applies
// to the total load, not just the incoming weight.
func TestLiquidContainer_CumulativeCap(t *testing.T) {
	c := NewFactory().NewLiquid(Dimensions{MaxLoad: 1000}, "fuel", 0)
	require.NoError(t, c.Load(300))

	err := c.Load(201)
	var unsafe *model.UnsafeLoadError
	require.True(t, errors.As(err, &unsafe))
	assert.Equal(t, 300.0, unsafe.Current)
	assert.Equal(t, 500.0, unsafe.Limit)
	assert.Equal(t, 300.0, c.LoadWeight())
}

// TestRefrigeratedContainer_Temperature verifies that loads are gated by
// the product's required temperature regardless of weight.
func TestRefrigeratedContainer_Temperature(t *testing.T) {
	tests := []struct {
		name        string
		product     string
		temperature float64
		weight      float64
		wantTempErr bool
	}{
		{"bananas too cold", "bananas", 5, 1000, true},
		{"bananas too cold even for tiny load", "bananas", 9.9, 1, true},
		{"bananas at threshold", "bananas", 10, 1000, false},
		{"milk at threshold", "milk", 4, 100, false},
		{"milk too cold", "milk", 3, 100, true},
		{"unknown product requires zero", "fish", 0, 100, false},
		{"unknown product below zero", "fish", -1, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFactory().NewRefrigerated(Dimensions{MaxLoad: 1500}, tt.product, tt.temperature)
			err := c.Load(tt.weight)
			if !tt.wantTempErr {
				require.NoError(t, err)
				assert.Equal(t, tt.weight, c.LoadWeight())
				return
			}

			var tempErr *model.TemperatureError
			require.True(t, errors.As(err, &tempErr), "expected TemperatureError, got %v", err)
			assert.Contains(t, err.Error(), tt.product)
			assert.Equal(t, 0.0, c.LoadWeight())
		})
	}
}

// TestRefrigeratedContainer_OverfillAfterTemperature verifies that the
// base capacity rule still applies once the temperature is acceptable.
func TestRefrigeratedContainer_OverfillAfterTemperature(t *testing.T) {
	c := NewFactory().NewRefrigerated(Dimensions{MaxLoad: 1500}, "bananas", 12)

	err := c.Load(1600)
	var overfill *model.OverfillError
	assert.True(t, errors.As(err, &overfill))
}

// TestUnload_ThroughCapability verifies that Unload dispatches to the
// variant's own implementation even when the caller holds a Container.
// Gas keeps 5% residue; every other variant is emptied.
func TestUnload_ThroughCapability(t *testing.T) {
	f := NewFactory()
	tests := []struct {
		name string
		c    Container
		load float64
		want float64
	}{
		{"liquid empties", f.NewLiquid(Dimensions{MaxLoad: 1000}, "milk", 0), 500, 0},
		{"gas keeps residue", f.NewGas(Dimensions{MaxLoad: 2000}, 0), 1500, 75},
		{"refrigerated empties", f.NewRefrigerated(Dimensions{MaxLoad: 1500}, "milk", 5), 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.c.Load(tt.load))
			tt.c.Unload()
			assert.InDelta(t, tt.want, tt.c.LoadWeight(), 1e-9)
		})
	}
}

// TestGasContainer_RepeatedUnload verifies the residue compounds on each
// unload.
func TestGasContainer_RepeatedUnload(t *testing.T) {
	c := NewFactory().NewGas(Dimensions{MaxLoad: 2000}, 0)
	require.NoError(t, c.Load(2000))

	c.Unload()
	assert.InDelta(t, 100.0, c.LoadWeight(), 1e-9)
	c.Unload()
	assert.InDelta(t, 5.0, c.LoadWeight(), 1e-9)
}

// TestNotifyHazard verifies that only liquid and gas containers expose the
// hazard capability and that the message names the serial.
func TestNotifyHazard(t *testing.T) {
	f := NewFactory()

	var buf bytes.Buffer
	assert.True(t, NotifyHazard(f.NewLiquid(Dimensions{}, "fuel", 0), &buf))
	assert.Equal(t, "Hazard: Liquid container KON-L-1 has a dangerous situation.\n", buf.String())

	buf.Reset()
	assert.True(t, NotifyHazard(f.NewGas(Dimensions{}, 0), &buf))
	assert.Equal(t, "Hazard: Gas container KON-G-1 has a dangerous situation.\n", buf.String())

	buf.Reset()
	assert.False(t, NotifyHazard(f.NewRefrigerated(Dimensions{}, "milk", 4), &buf))
	assert.Empty(t, buf.String())
}

// TestHazardCapabilityMatchesKind keeps the type-level capability and
// model.ContainerKind.IsHazardous in agreement.
func TestHazardCapabilityMatchesKind(t *testing.T) {
	f := NewFactory()
	for _, kind := range model.ContainerKinds {
		c, err := f.Build(Spec{Kind: kind})
		require.NoError(t, err)
		_, ok := c.(HazardNotifier)
		assert.Equal(t, kind.IsHazardous(), ok, kind.String())
	}
}

// TestContainer_GrossWeightAndString verifies the listing form and the
// tare-inclusive weight through the Container interface.
func TestContainer_GrossWeightAndString(t *testing.T) {
	var c Container = NewFactory().NewGas(Dimensions{OwnWeight: 300, MaxLoad: 2000}, 0)
	require.NoError(t, c.Load(1500))

	assert.Equal(t, 1800.0, c.GrossWeight())
	assert.Equal(t, "KON-G-1 (1500 kg loaded)", c.String())
}

// TestLoad_NonFiniteWeight verifies NaN and infinite weights are rejected
// by every variant and leave the load untouched.
func TestLoad_NonFiniteWeight(t *testing.T) {
	weights := []float64{math.NaN(), math.Inf(1), math.Inf(-1)}

	f := NewFactory()
	containers := []Container{
		f.NewLiquid(Dimensions{MaxLoad: 1000}, "milk", 0),
		f.NewGas(Dimensions{MaxLoad: 1000}, 0),
		f.NewRefrigerated(Dimensions{MaxLoad: 1000}, "bananas", 12),
	}

	for _, c := range containers {
		t.Run(c.Kind().String(), func(t *testing.T) {
			require.NoError(t, c.Load(100))
			for _, w := range weights {
				err := c.Load(w)
				require.Error(t, err, "weight %v", w)
				assert.True(t, errors.Is(err, model.ErrInvalidWeight), "weight %v: %v", w, err)
				assert.True(t, model.IsLoadRejection(err))
				assert.Equal(t, 100.0, c.LoadWeight())
			}
		})
	}
}

// TestLoad_NaNLimits verifies a NaN capacity or temperature rejects loads
// instead of letting every comparison pass.
func TestLoad_NaNLimits(t *testing.T) {
	f := NewFactory()

	gas := f.NewGas(Dimensions{MaxLoad: math.NaN()}, 0)
	var overfill *model.OverfillError
	assert.True(t, errors.As(gas.Load(10), &overfill))
	assert.Equal(t, 0.0, gas.LoadWeight())

	liquid := f.NewLiquid(Dimensions{MaxLoad: math.NaN()}, "milk", 0)
	var unsafe *model.UnsafeLoadError
	assert.True(t, errors.As(liquid.Load(10), &unsafe))

	reefer := f.NewRefrigerated(Dimensions{MaxLoad: 1000}, "milk", math.NaN())
	var temp *model.TemperatureError
	assert.True(t, errors.As(reefer.Load(10), &temp))
}
