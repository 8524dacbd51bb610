// SPDX-License-Identifier: MIT

package series

import "errors"

// ErrBadSize indicates a requested length below one.
var ErrBadSize = errors.New("series: length must be ≥ 1")
