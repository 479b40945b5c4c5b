// Package random supplies the uniform draws behind particle creation and drift.
package random

import (
	"errors"
	"fmt"
	"math"

	"go-particle-drift/internal/utils"
)

// ErrInvalidRange is wrapped by the panic value of Uniform when min >= max.
var ErrInvalidRange = errors.New("random: invalid range")

// Source returns values uniformly distributed in [min, max).
// Calling Uniform with min >= max is a programming error and panics.
type Source interface {
	Uniform(min, max float64) float64
}

// Splitter is implemented by sources that can derive independent generators,
// one per goroutine.
type Splitter interface {
	Source
	Split() Source
}

// CheckRange reports whether [min, max) is a usable range.
func CheckRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || !(min < max) {
		return fmt.Errorf("%w: [%v, %v)", ErrInvalidRange, min, max)
	}
	return nil
}

func mustRange(min, max float64) {
	if err := CheckRange(min, max); err != nil {
		panic(err)
	}
}

// scale maps u in [0, 1] onto [min, max), keeping the upper end open.
func scale(u, min, max float64) float64 {
	v := utils.Lerp(min, max, u)
	if v >= max {
		return math.Nextafter(max, min)
	}
	return v
}
