// Package cubie implements the cubie-level model of a 3x3x3 Rubik's cube:
// corner and edge permutations with orientations, group composition, and
// conversion to and from the 54-character facelet string used at the
// system boundary.
package cubie

import (
	"errors"
	"fmt"
	"math/rand"
)

// Corner identities, in the fixed order used throughout this package.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
	NumCorners = 8
)

// Edge identities, in the fixed order used throughout this package.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
	NumEdges = 12
)

// CubieCube is an element of the cube group: a permutation of the 8
// corners and 12 edges together with their orientations.
//
//   - CP[i] is the identity of the corner currently at position i.
//   - CO[i] is that corner's orientation in {0,1,2}, summing to 0 mod 3.
//   - EP[i] is the identity of the edge currently at position i.
//   - EO[i] is that edge's orientation in {0,1}, summing to 0 mod 2.
type CubieCube struct {
	CP [NumCorners]int8
	CO [NumCorners]int8
	EP [NumEdges]int8
	EO [NumEdges]int8
}

// Solved returns the identity cube.
func Solved() *CubieCube {
	cc := &CubieCube{}
	for i := range cc.CP {
		cc.CP[i] = int8(i)
	}
	for i := range cc.EP {
		cc.EP[i] = int8(i)
	}
	return cc
}

// Clone returns a deep copy.
func (cc *CubieCube) Clone() *CubieCube {
	out := *cc
	return &out
}

// Equal reports whether two cubes describe the same state.
func (cc *CubieCube) Equal(other *CubieCube) bool {
	return cc.CP == other.CP && cc.CO == other.CO && cc.EP == other.EP && cc.EO == other.EO
}

// IsSolved reports whether cc is the identity element.
func (cc *CubieCube) IsSolved() bool {
	return cc.Equal(Solved())
}

// CornerMultiply sets cc to cc*other, composing corner permutation and
// orientation: (a*b).cp[i] = a.cp[b.cp[i]], (a*b).co[i] = (a.co[b.cp[i]] + b.co[i]) mod 3.
func (cc *CubieCube) CornerMultiply(other *CubieCube) {
	var cp [NumCorners]int8
	var co [NumCorners]int8
	for i := 0; i < NumCorners; i++ {
		cp[i] = cc.CP[other.CP[i]]
		co[i] = (cc.CO[other.CP[i]] + other.CO[i]) % 3
	}
	cc.CP = cp
	cc.CO = co
}

// EdgeMultiply sets cc to cc*other for the edge part, analogous to
// CornerMultiply but with orientation mod 2.
func (cc *CubieCube) EdgeMultiply(other *CubieCube) {
	var ep [NumEdges]int8
	var eo [NumEdges]int8
	for i := 0; i < NumEdges; i++ {
		ep[i] = cc.EP[other.EP[i]]
		eo[i] = (cc.EO[other.EP[i]] + other.EO[i]) % 2
	}
	cc.EP = ep
	cc.EO = eo
}

// Multiply sets cc to cc*other (both corners and edges).
func (cc *CubieCube) Multiply(other *CubieCube) {
	cc.CornerMultiply(other)
	cc.EdgeMultiply(other)
}

// Multiplied returns a new cube equal to a*b, leaving both inputs unchanged.
func Multiplied(a, b *CubieCube) *CubieCube {
	out := a.Clone()
	out.Multiply(b)
	return out
}

// Inverse returns the group inverse of cc.
func (cc *CubieCube) Inverse() *CubieCube {
	out := &CubieCube{}
	for i := 0; i < NumCorners; i++ {
		out.CP[cc.CP[i]] = int8(i)
	}
	for i := 0; i < NumCorners; i++ {
		out.CO[i] = (3 - cc.CO[out.CP[i]]%3) % 3
	}
	for i := 0; i < NumEdges; i++ {
		out.EP[cc.EP[i]] = int8(i)
	}
	for i := 0; i < NumEdges; i++ {
		out.EO[i] = (2 - cc.EO[out.EP[i]]%2) % 2
	}
	return out
}

var (
	// ErrUnsolvableCubie is the sentinel for any cubie state that cannot
	// arise from physically manipulating an assembled cube.
	ErrUnsolvableCubie = errors.New("unsolvable cubie cube")
)

func permutationParity(perm []int8) int {
	seen := make([]bool, len(perm))
	parity := 0
	for i := range perm {
		if seen[i] {
			continue
		}
		cycleLen := 0
		j := i
		for !seen[j] {
			seen[j] = true
			j = int(perm[j])
			cycleLen++
		}
		if cycleLen > 0 {
			parity += cycleLen - 1
		}
	}
	return parity % 2
}

// Verify checks that cc could result from scrambling a physical cube:
// valid permutations, orientation sums, and matching corner/edge parity.
// It returns an error wrapping ErrUnsolvableCubie describing the first
// violation found, or nil if cc is a legal cube state.
func (cc *CubieCube) Verify() error {
	var seenC [NumCorners]bool
	for _, c := range cc.CP {
		if c < 0 || int(c) >= NumCorners || seenC[c] {
			return fmt.Errorf("%w: corner permutation is not a valid permutation", ErrUnsolvableCubie)
		}
		seenC[c] = true
	}
	var seenE [NumEdges]bool
	for _, e := range cc.EP {
		if e < 0 || int(e) >= NumEdges || seenE[e] {
			return fmt.Errorf("%w: edge permutation is not a valid permutation", ErrUnsolvableCubie)
		}
		seenE[e] = true
	}

	coSum := 0
	for _, co := range cc.CO {
		if co < 0 || co > 2 {
			return fmt.Errorf("%w: corner orientation out of range", ErrUnsolvableCubie)
		}
		coSum += int(co)
	}
	if coSum%3 != 0 {
		return fmt.Errorf("%w: corner orientation sum %d not divisible by 3", ErrUnsolvableCubie, coSum)
	}

	eoSum := 0
	for _, eo := range cc.EO {
		if eo < 0 || eo > 1 {
			return fmt.Errorf("%w: edge orientation out of range", ErrUnsolvableCubie)
		}
		eoSum += int(eo)
	}
	if eoSum%2 != 0 {
		return fmt.Errorf("%w: edge orientation sum %d not divisible by 2", ErrUnsolvableCubie, eoSum)
	}

	if permutationParity(cc.CP[:]) != permutationParity(cc.EP[:]) {
		return fmt.Errorf("%w: corner and edge permutation parity disagree", ErrUnsolvableCubie)
	}
	return nil
}

// Random returns a uniformly sampled legal cube: a random corner
// permutation and a random edge permutation with matching parity, plus
// independently random orientations whose sums satisfy the group
// invariants.
func Random(rng *rand.Rand) *CubieCube {
	cc := &CubieCube{}

	for i := 0; i < NumCorners; i++ {
		cc.CP[i] = int8(i)
	}
	rng.Shuffle(NumCorners, func(i, j int) { cc.CP[i], cc.CP[j] = cc.CP[j], cc.CP[i] })

	for i := 0; i < NumEdges; i++ {
		cc.EP[i] = int8(i)
	}
	rng.Shuffle(NumEdges, func(i, j int) { cc.EP[i], cc.EP[j] = cc.EP[j], cc.EP[i] })

	if permutationParity(cc.CP[:]) != permutationParity(cc.EP[:]) {
		// Swap two edges to flip edge parity to match the corners.
		cc.EP[0], cc.EP[1] = cc.EP[1], cc.EP[0]
	}

	coSum := 0
	for i := 0; i < NumCorners-1; i++ {
		cc.CO[i] = int8(rng.Intn(3))
		coSum += int(cc.CO[i])
	}
	cc.CO[NumCorners-1] = int8((3 - coSum%3) % 3)

	eoSum := 0
	for i := 0; i < NumEdges-1; i++ {
		cc.EO[i] = int8(rng.Intn(2))
		eoSum += int(cc.EO[i])
	}
	cc.EO[NumEdges-1] = int8((2 - eoSum%2) % 2)

	return cc
}
