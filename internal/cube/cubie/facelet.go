package cubie

import (
	"errors"
	"fmt"
)

// Facelet order: U1..U9, R1..R9, F1..F9, D1..D9, L1..L9, B1..B9. Face
// index within that order also doubles as the face's colour under
// ErrInvalidFacelets centre-based colour mapping.
const (
	faceU = iota
	faceR
	faceF
	faceD
	faceL
	faceB
)

// ErrInvalidFacelets is the sentinel for malformed facelet strings:
// wrong length, illegal characters, a colour count mismatch, or a
// centre conflict (two faces claiming the same colour).
var ErrInvalidFacelets = errors.New("invalid facelet string")

// cornerFacelet[c] lists the three facelet indices (in the order
// U/D-layer, clockwise) belonging to corner c.
var cornerFacelet = [NumCorners][3]int{
	URF: {8, 9, 20},
	UFL: {6, 18, 38},
	ULB: {0, 36, 47},
	UBR: {2, 45, 11},
	DFR: {29, 26, 15},
	DLF: {27, 44, 24},
	DBL: {33, 53, 42},
	DRB: {35, 17, 51},
}

// edgeFacelet[e] lists the two facelet indices belonging to edge e.
var edgeFacelet = [NumEdges][2]int{
	UR: {5, 10},
	UF: {7, 19},
	UL: {3, 37},
	UB: {1, 46},
	DR: {32, 16},
	DF: {28, 25},
	DL: {30, 43},
	DB: {34, 52},
	FR: {23, 12},
	FL: {21, 41},
	BL: {50, 39},
	BR: {48, 14},
}

// cornerColor[c] gives the solved-cube colours (as face indices) at
// cornerFacelet[c], in the same order.
var cornerColor = [NumCorners][3]int{
	URF: {faceU, faceR, faceF},
	UFL: {faceU, faceF, faceL},
	ULB: {faceU, faceL, faceB},
	UBR: {faceU, faceB, faceR},
	DFR: {faceD, faceF, faceR},
	DLF: {faceD, faceL, faceF},
	DBL: {faceD, faceB, faceL},
	DRB: {faceD, faceR, faceB},
}

// edgeColor[e] gives the solved-cube colours at edgeFacelet[e].
var edgeColor = [NumEdges][2]int{
	UR: {faceU, faceR},
	UF: {faceU, faceF},
	UL: {faceU, faceL},
	UB: {faceU, faceB},
	DR: {faceD, faceR},
	DF: {faceD, faceF},
	DL: {faceD, faceL},
	DB: {faceD, faceB},
	FR: {faceF, faceR},
	FL: {faceF, faceL},
	BL: {faceB, faceL},
	BR: {faceB, faceR},
}

var faceLetters = [6]byte{'U', 'R', 'F', 'D', 'L', 'B'}

// ToFacelets projects cc onto the 54-character facelet string.
func (cc *CubieCube) ToFacelets() string {
	var f [54]byte
	for face := 0; face < 6; face++ {
		f[face*9+4] = faceLetters[face]
	}
	for c := 0; c < NumCorners; c++ {
		src := cc.CP[c]
		ori := cc.CO[c]
		for k := 0; k < 3; k++ {
			f[cornerFacelet[c][k]] = faceLetters[cornerColor[src][(int(ori)+k)%3]]
		}
	}
	for e := 0; e < NumEdges; e++ {
		src := cc.EP[e]
		ori := cc.EO[e]
		for k := 0; k < 2; k++ {
			f[edgeFacelet[e][k]] = faceLetters[edgeColor[src][(int(ori)+k)%2]]
		}
	}
	return string(f[:])
}

func letterFace(b byte) (int, error) {
	switch b {
	case 'U':
		return faceU, nil
	case 'R':
		return faceR, nil
	case 'F':
		return faceF, nil
	case 'D':
		return faceD, nil
	case 'L':
		return faceL, nil
	case 'B':
		return faceB, nil
	default:
		return 0, fmt.Errorf("%w: illegal character %q", ErrInvalidFacelets, string(b))
	}
}

// FromFacelets parses a 54-character facelet string into a CubieCube.
// It validates length, alphabet, per-face sticker counts, and centre
// uniqueness, but does not check group-theoretic legality — call
// Verify on the result for that.
func FromFacelets(s string) (*CubieCube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("%w: length %d, want 54", ErrInvalidFacelets, len(s))
	}
	var count [6]int
	faceOf := make([]int, 54)
	for i := 0; i < 54; i++ {
		fc, err := letterFace(s[i])
		if err != nil {
			return nil, err
		}
		faceOf[i] = fc
		count[fc]++
	}
	for fc := 0; fc < 6; fc++ {
		if count[fc] != 9 {
			return nil, fmt.Errorf("%w: colour %c appears %d times, want 9", ErrInvalidFacelets, faceLetters[fc], count[fc])
		}
	}
	for face := 0; face < 6; face++ {
		if faceOf[face*9+4] != face {
			return nil, fmt.Errorf("%w: centre of face %c does not match its own colour", ErrInvalidFacelets, faceLetters[face])
		}
	}

	cc := &CubieCube{}
	for c := 0; c < NumCorners; c++ {
		var colors [3]int
		for k := 0; k < 3; k++ {
			colors[k] = faceOf[cornerFacelet[c][k]]
		}
		ori := -1
		var ident int
		for cand := 0; cand < NumCorners; cand++ {
			for rot := 0; rot < 3; rot++ {
				if cornerColor[cand][0] == colors[rot] &&
					cornerColor[cand][1] == colors[(rot+1)%3] &&
					cornerColor[cand][2] == colors[(rot+2)%3] {
					ident = cand
					ori = rot
				}
			}
		}
		if ori < 0 {
			return nil, fmt.Errorf("%w: corner at position %d does not match any corner's colours", ErrInvalidFacelets, c)
		}
		cc.CP[c] = int8(ident)
		cc.CO[c] = int8((3 - ori) % 3)
	}

	for e := 0; e < NumEdges; e++ {
		var colors [2]int
		for k := 0; k < 2; k++ {
			colors[k] = faceOf[edgeFacelet[e][k]]
		}
		ori := -1
		var ident int
		for cand := 0; cand < NumEdges; cand++ {
			if edgeColor[cand][0] == colors[0] && edgeColor[cand][1] == colors[1] {
				ident, ori = cand, 0
			} else if edgeColor[cand][0] == colors[1] && edgeColor[cand][1] == colors[0] {
				ident, ori = cand, 1
			}
		}
		if ori < 0 {
			return nil, fmt.Errorf("%w: edge at position %d does not match any edge's colours", ErrInvalidFacelets, e)
		}
		cc.EP[e] = int8(ident)
		cc.EO[e] = int8(ori)
	}

	return cc, nil
}
