package usecase

import "math"

// End times are caller supplied and may sit anywhere up to math.MaxInt64,
// so grace windows are checked as now-hammer against end and extensions
// saturate.

// extendTo returns now + hammer, saturating at math.MaxInt64.
func extendTo(now, hammer int64) int64 {
	if hammer > math.MaxInt64-now {
		return math.MaxInt64
	}
	return now + hammer
}
