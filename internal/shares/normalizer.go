// Package shares turns raw proportions into fixed-precision shares that sum to exactly one.
//
// Every value is rounded to the grid 10^-precision and the aggregate rounding error is then
// handed back one grid unit at a time, in remainder order. All grid arithmetic is done on
// integer unit counts, so "sums to one" means the units sum to exactly 10^precision.
//
// Example (precision 4):
//
//	in:  [0.33333, 0.33333, 0.33333]
//	rnd: [0.3333,  0.3333,  0.3333 ]  residual +1 unit
//	out: [0.3334,  0.3333,  0.3333 ]
package shares

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// MaxPrecision is the finest grid whose unit counts a float64 share still represents exactly.
const MaxPrecision = 15

var (
	ErrEmptyInput       = errors.New("no values to normalize")
	ErrInvalidPrecision = errors.New("invalid precision")
	ErrValueOutOfRange  = errors.New("value out of range [0,1]")
	ErrInvalidPasses    = errors.New("invalid number of redistribution passes")
)

// Normalize rounds values to the 10^-precision grid and redistributes the rounding residual
// in a single ordered pass. Each index moves by at most one unit, so when the residual exceeds
// the number of indices able to move the result can still miss 1 (see Residual).
func Normalize(values []float64, precision int) ([]float64, error) {
	return NormalizeWithPasses(values, precision, 1)
}

// NormalizeWithPasses behaves like Normalize but repeats the ordered pass, reusing the same
// order, until the residual is gone, no index can move, or maxPasses passes have run.
func NormalizeWithPasses(values []float64, precision, maxPasses int) ([]float64, error) {
	if maxPasses < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPasses, maxPasses)
	}

	units, err := toUnits(values, precision)
	if err != nil {
		return nil, err
	}

	grid := gridSize(precision)
	diff := grid - sumUnits(units)
	if diff == 0 {
		return fromUnits(units, grid), nil
	}

	order := adjustOrder(units, grid, diff)
	for pass := 0; pass < maxPasses && diff != 0; pass++ {
		var moved bool
		diff, moved = redistribute(units, order, grid, diff)
		if !moved {
			break
		}
	}

	return fromUnits(units, grid), nil
}

// Residual reports how many grid units values miss 1 by once rounded to precision.
// Positive means a deficit, negative a surplus.
func Residual(values []float64, precision int) (int64, error) {
	units, err := toUnits(values, precision)
	if err != nil {
		return 0, err
	}
	return gridSize(precision) - sumUnits(units), nil
}

// Unit returns the grid unit 10^-precision.
func Unit(precision int) float64 {
	return math.Pow10(-precision)
}

func toUnits(values []float64, precision int) ([]int64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if precision < 0 || precision > MaxPrecision {
		return nil, fmt.Errorf("%w: %d (must be within 0..%d)", ErrInvalidPrecision, precision, MaxPrecision)
	}

	grid := float64(gridSize(precision))
	units := make([]int64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return nil, fmt.Errorf("%w: values[%d]=%v", ErrValueOutOfRange, i, v)
		}
		// math.Round rounds half away from zero
		units[i] = int64(math.Round(v * grid))
	}
	return units, nil
}

func fromUnits(units []int64, grid int64) []float64 {
	out := make([]float64, len(units))
	for i, u := range units {
		out[i] = float64(u) / float64(grid)
	}
	return out
}

// adjustOrder sorts indices by their remainder above the previous whole number: ascending
// when filling a deficit, descending when removing a surplus. Ties keep input order.
func adjustOrder(units []int64, grid, diff int64) []int {
	order := make([]int, len(units))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := units[order[a]]%grid, units[order[b]]%grid
		if diff > 0 {
			return ra < rb
		}
		return ra > rb
	})
	return order
}

// redistribute walks order once, moving each index by one unit towards closing diff while it
// stays within [0, grid]. It returns the remaining diff and whether any index moved.
func redistribute(units []int64, order []int, grid, diff int64) (int64, bool) {
	moved := false
	for _, i := range order {
		if diff == 0 {
			break
		}
		step := int64(1)
		if diff < 0 {
			step = -1
		}
		next := units[i] + step
		if next < 0 || next > grid {
			continue
		}
		units[i] = next
		diff -= step
		moved = true
	}
	return diff, moved
}

func gridSize(precision int) int64 {
	grid := int64(1)
	for i := 0; i < precision; i++ {
		grid *= 10
	}
	return grid
}

func sumUnits(units []int64) int64 {
	var total int64
	for _, u := range units {
		total += u
	}
	return total
}
