package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehrlich-b/bigoptcube/internal/coord"
)

func TestTwistConjRoundTripTestify(t *testing.T) {
	for s := 0; s < coord.NumD4h; s++ {
		inv := InvIdx(s)
		for tw := 0; tw < coord.NTwist; tw += 53 {
			back := TwistConj(TwistConj(tw, s), inv)
			assert.Equalf(t, tw, back, "symmetry %d round trip on twist %d", s, tw)
		}
	}
}

func TestUDCornersConjRoundTripTestify(t *testing.T) {
	for s := 0; s < coord.NumD4h; s++ {
		inv := InvIdx(s)
		for u := 0; u < coord.NUDCorners; u++ {
			back := UDCornersConj(UDCornersConj(u, s), inv)
			require.Equal(t, u, back)
		}
	}
}
