// SPDX-License-Identifier: MIT

package axis

import (
	"github.com/katalvlaran/lvfunc/ndarray"
)

// Selection names the axes of an array either by what survives into the
// output (Keep, the margin) or by what a per-slice function consumes
// (Collapse). Both resolve to the same margin.
type Selection struct {
	axes []int
	keep bool
}

// Keep selects the margin axes: the output has one element per combination
// of these axes, in the order listed.
func Keep(axes ...int) Selection {
	return Selection{axes: append([]int(nil), axes...), keep: true}
}

// Collapse selects the axes consumed by the per-slice function; the margin
// is every other axis in ascending order.
func Collapse(axes ...int) Selection {
	return Selection{axes: append([]int(nil), axes...), keep: false}
}

// Margin resolves the kept axes for an array of the given rank.
// Errors: ndarray.ErrBadAxis for out-of-range or repeated axes.
func (s Selection) Margin(rank int) ([]int, error) {
	if err := ndarray.CheckAxes(rank, s.axes); err != nil {
		return nil, err
	}
	if s.keep {
		return append([]int(nil), s.axes...), nil
	}
	return ndarray.Complement(rank, s.axes), nil
}
