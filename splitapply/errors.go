// SPDX-License-Identifier: MIT

package splitapply

import "errors"

// ErrLayout indicates a combiner that cannot reassemble the layout the
// split came from (e.g. Stack on a sequence split).
var ErrLayout = errors.New("splitapply: combiner does not fit split layout")
