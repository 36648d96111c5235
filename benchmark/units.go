package benchmark

import "math"

// UnitTime is one bin of a duration unit table. Base is the number of
// nanoseconds in one Unit; Modifier is how many of this unit make up the
// next one. A Modifier below 1 marks the terminal, largest bin.
type UnitTime struct {
	Unit     string
	Base     int64
	Modifier int64
}

// Terminal reports whether u is the largest bin of its table
func (u UnitTime) Terminal() bool {
	return u.Modifier < 1
}

var nsUnits = []UnitTime{
	{Unit: "ns", Modifier: 1000},
	{Unit: "us", Modifier: 1000},
	{Unit: "ms", Modifier: 1000},
	{Unit: "s", Modifier: 60},
	{Unit: "min", Modifier: 60},
	{Unit: "hr", Modifier: 24},
	{Unit: "days", Modifier: 7},
	{Unit: "weeks"},
}

var defaultConverter = NewConverter(nsUnits)

// Converter renders nanosecond durations in the largest sensible unit of
// its table. It is immutable and safe for concurrent use.
type Converter struct {
	units []UnitTime
}

// NewConverter builds a converter over units, ordered smallest first.
// Bases are recomputed as the cumulative product of the preceding
// modifiers, starting at 1; bins after the first terminal one are
// dropped. A bin whose modifier would push the next base past
// math.MaxInt64 becomes terminal. An empty table gives a converter that
// reports raw nanoseconds with an empty unit.
func NewConverter(units []UnitTime) *Converter {
	table := make([]UnitTime, 0, len(units))
	base := int64(1)
	for _, u := range units {
		u.Base = base
		if u.Terminal() || base > math.MaxInt64/u.Modifier {
			u.Modifier = 0
			table = append(table, u)
			break
		}
		table = append(table, u)
		base *= u.Modifier
	}
	return &Converter{units: table}
}

// Units returns a copy of the converter's table
func (c *Converter) Units() []UnitTime {
	out := make([]UnitTime, len(c.units))
	copy(out, c.units)
	return out
}

// Convert divides ns by the base of each bin in turn, smallest first, and
// stops at the terminal bin or at the first bin whose value is below its
// modifier.
func (c *Converter) Convert(ns int64) (float64, string) {
	value, unit := float64(ns), ""
	for _, u := range c.units {
		value = float64(ns) / float64(u.Base)
		unit = u.Unit
		if u.Terminal() || value < float64(u.Modifier) {
			break
		}
	}
	return value, unit
}

// Breakdown splits ns into whole counts per unit, largest first, each
// bin taking what its base divides out of the remainder. Every unit of
// the table is present in the result.
func (c *Converter) Breakdown(ns int64) map[string]int64 {
	out := make(map[string]int64, len(c.units))
	for i := len(c.units) - 1; i >= 0; i-- {
		u := c.units[i]
		out[u.Unit] = ns / u.Base
		ns %= u.Base
	}
	return out
}

// Units returns a copy of the default table:
// ns, us, ms, s, min, hr, days, weeks.
func Units() []UnitTime {
	return defaultConverter.Units()
}

// ConvertUnits expresses ns in the largest unit of the default table whose
// value does not reach the next unit, e.g. 500_000 is (500, "us").
func ConvertUnits(ns int64) (float64, string) {
	return defaultConverter.Convert(ns)
}

// BreakdownUnits splits ns over the default table, e.g. 1_005_050_000 is
// 1 s, 5 ms and 50 us with every other unit at 0.
func BreakdownUnits(ns int64) map[string]int64 {
	return defaultConverter.Breakdown(ns)
}
