package hull

import (
	"math/rand/v2"
	"testing"

	"github.com/exactplane/projgeom/kernel"
	"github.com/exactplane/projgeom/ordering"
)

// P3 (convex consistency), spec.md §8: for every output of FromBoundaries
// and every tested point, poly.Contains(p) == Greater iff the minimum of
// cmp_line(p, l) over the input boundaries is Greater. Encoded as a
// randomized Go test rather than the fuzz harness spec.md places out of
// core scope.
func TestPropertyConvexConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(5)
		boundaries := make([]kernel.Line, n)
		for i := range boundaries {
			boundaries[i] = randSmallLine(rng)
		}

		poly, err := FromBoundaries(boundaries)

		for p := 0; p < 50; p++ {
			pt := randSmallPositivePoint(rng)

			naive := ordering.Greater
			for _, l := range boundaries {
				if c := pt.CmpLine(l); c < naive {
					naive = c
				}
			}

			if err != nil {
				if naive == ordering.Greater {
					t.Fatalf("boundaries %v: empty region reported but point %v satisfies every boundary", boundaries, pt)
				}
				continue
			}

			if got := poly.Contains(pt); (got == ordering.Greater) != (naive == ordering.Greater) {
				t.Fatalf("boundaries %v: poly.Contains(%v) = %v, naive min = %v", boundaries, pt, got, naive)
			}
		}
	}
}

func randSmallLine(rng *rand.Rand) kernel.Line {
	for {
		a := int32(rng.IntN(7) - 3)
		b := int32(rng.IntN(7) - 3)
		c := int32(rng.IntN(7) - 3)
		l, err := kernel.NewLine(a, b, c)
		if err == nil {
			return l
		}
	}
}

func randSmallPositivePoint(rng *rand.Rand) kernel.Point {
	x := int64(rng.IntN(9) - 4)
	y := int64(rng.IntN(9) - 4)
	p, err := kernel.NewPoint(x, y, 1)
	if err != nil {
		panic(err)
	}
	return p
}
