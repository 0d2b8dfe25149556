package kernel

import (
	"github.com/exactplane/projgeom/numeric"
	"github.com/exactplane/projgeom/ordering"
)

// ratio is an opaque, totally-ordered rational value used to compare slopes,
// distances, and x-coordinates without ever dividing.
//
// Grounded on the private Ratio types in original_source/src/utils.rs (there
// are three near-identical copies there — one for slope/distance, one for
// x_coord, one for event priority — all folded into this single
// implementation). The denominator is normalized to be positive at
// construction, so two ratios compare by cross-multiplying their numerators
// and denominators directly; dividing by a zero denominator panics rather
// than silently producing an unusable ratio.
type ratio struct {
	num, den int64
}

var ratioZero = ratio{num: 0, den: 1}

// newRatio constructs num/den, normalizing den to be positive.
//
// Panics if den is zero: ratios are only ever constructed from quantities
// the kernel's callers have already established are non-degenerate (a
// nonzero Line coefficient, a nonzero Point weight), so a zero denominator
// here indicates a programming error in the kernel itself, not bad input.
func newRatio(num, den int64) ratio {
	switch {
	case den > 0:
		return ratio{num: num, den: den}
	case den < 0:
		return ratio{num: -num, den: -den}
	default:
		panic("kernel: ratio with zero denominator")
	}
}

// cmp compares r and other by cross-multiplying, widened to avoid overflow.
func (r ratio) cmp(other ratio) ordering.Ordering {
	lhs := numeric.MulInt64(r.num, other.den)
	rhs := numeric.MulInt64(other.num, r.den)
	return ordering.FromInt(lhs.Cmp(rhs))
}
