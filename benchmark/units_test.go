package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUnits(t *testing.T) {
	tests := []struct {
		ns    int64
		value float64
		unit  string
	}{
		{0, 0, "ns"},
		{50, 50, "ns"},
		{999, 999, "ns"},
		{1000, 1, "us"},
		{1500, 1.5, "us"},
		{500_000, 500, "us"},
		{1_000_000, 1, "ms"},
		{2_500_000_000, 2.5, "s"},
		{60_000_000_000, 1, "min"},
		{3_600_000_000_000, 1, "hr"},
		{86_400_000_000_000, 1, "days"},
		{604_800_000_000_000, 1, "weeks"},
		{6_048_000_000_000_000, 10, "weeks"},
	}
	for _, tt := range tests {
		value, unit := ConvertUnits(tt.ns)
		assert.InDelta(t, tt.value, value, 1e-9, "ns=%d", tt.ns)
		assert.Equal(t, tt.unit, unit, "ns=%d", tt.ns)
	}
}

func TestBreakdownUnits(t *testing.T) {
	assert.Equal(t, map[string]int64{
		"weeks": 0, "days": 0, "hr": 0, "min": 0,
		"s": 0, "ms": 5, "us": 50, "ns": 0,
	}, BreakdownUnits(5_050_000))

	assert.Equal(t, map[string]int64{
		"weeks": 0, "days": 0, "hr": 0, "min": 0,
		"s": 1, "ms": 5, "us": 50, "ns": 0,
	}, BreakdownUnits(1_005_050_000))

	got := BreakdownUnits(694_861_001_001_001)
	assert.Equal(t, int64(1), got["weeks"])
	assert.Equal(t, int64(1), got["days"])
	assert.Equal(t, int64(1), got["hr"])
	assert.Equal(t, int64(1), got["min"])
	assert.Equal(t, int64(1), got["s"])
	assert.Equal(t, int64(1), got["ms"])
	assert.Equal(t, int64(1), got["us"])
	assert.Equal(t, int64(1), got["ns"])
}

func TestUnits(t *testing.T) {
	units := Units()
	require.Len(t, units, 8)

	wantBases := []int64{
		1,
		1_000,
		1_000_000,
		1_000_000_000,
		60_000_000_000,
		3_600_000_000_000,
		86_400_000_000_000,
		604_800_000_000_000,
	}
	for i, u := range units {
		assert.Equal(t, wantBases[i], u.Base, u.Unit)
	}
	assert.True(t, units[len(units)-1].Terminal())
	for _, u := range units[:len(units)-1] {
		assert.False(t, u.Terminal(), u.Unit)
	}

	units[0].Unit = "changed"
	assert.Equal(t, "ns", Units()[0].Unit, "Units returns a copy")
}

func TestNewConverter_Empty(t *testing.T) {
	c := NewConverter(nil)

	value, unit := c.Convert(1_500_000)
	assert.Equal(t, 1_500_000.0, value)
	assert.Empty(t, unit)
	assert.Empty(t, c.Breakdown(1_500_000))
}

func TestNewConverter_Custom(t *testing.T) {
	c := NewConverter([]UnitTime{
		{Unit: "ms", Base: 99, Modifier: 1000},
		{Unit: "s"},
		{Unit: "ignored", Modifier: 10},
	})

	units := c.Units()
	require.Len(t, units, 2, "bins after the terminal one are dropped")
	assert.Equal(t, int64(1), units[0].Base, "bases are recomputed")
	assert.Equal(t, int64(1000), units[1].Base)

	value, unit := c.Convert(2500)
	assert.InDelta(t, 2.5, value, 1e-9)
	assert.Equal(t, "s", unit)

	assert.Equal(t, map[string]int64{"s": 2, "ms": 500}, c.Breakdown(2500))
}

func TestNewConverter_OverflowingModifiers(t *testing.T) {
	c := NewConverter([]UnitTime{
		{Unit: "lo", Modifier: 1 << 32},
		{Unit: "mid", Modifier: 1 << 32},
		{Unit: "hi"},
	})

	units := c.Units()
	require.Len(t, units, 2, "the bin whose next base overflows ends the table")
	assert.Equal(t, int64(1<<32), units[1].Base)
	assert.True(t, units[1].Terminal())

	require.NotPanics(t, func() {
		assert.Equal(t, map[string]int64{"mid": 2, "lo": 5}, c.Breakdown(1<<33+5))
	})
	value, unit := c.Convert(1 << 33)
	assert.InDelta(t, 2.0, value, 1e-9)
	assert.Equal(t, "mid", unit)
}

func TestNewConverter_NegativeModifier(t *testing.T) {
	c := NewConverter([]UnitTime{
		{Unit: "ticks", Modifier: -5},
		{Unit: "ignored"},
	})

	units := c.Units()
	require.Len(t, units, 1)
	assert.Equal(t, int64(0), units[0].Modifier)
	assert.True(t, units[0].Terminal())

	value, unit := c.Convert(42)
	assert.Equal(t, 42.0, value)
	assert.Equal(t, "ticks", unit)
	assert.Equal(t, map[string]int64{"ticks": 42}, c.Breakdown(42))
}

func BenchmarkConvertUnits(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ConvertUnits(int64(i) * 7919)
	}
}
