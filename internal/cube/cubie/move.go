package cubie

import (
	"fmt"
	"strings"
)

// Move is one of the 18 face turns in the fixed order U,U2,U3, R,R2,R3,
// F,F2,F3, D,D2,D3, L,L2,L3, B,B2,B3. Face() = int(m)/3 groups the three
// turn amounts of a face together, which the solver's successor filter
// and the symmetry conjugation tables both rely on.
type Move int

const (
	U Move = iota
	U2
	U3
	R
	R2
	R3
	F
	F2
	F3
	D
	D2
	D3
	L
	L2
	L3
	B
	B2
	B3
	NumMoves
)

var moveNames = [NumMoves]string{
	"U", "U2", "U3", "R", "R2", "R3", "F", "F2", "F3",
	"D", "D2", "D3", "L", "L2", "L3", "B", "B2", "B3",
}

func (m Move) String() string {
	if m < 0 || int(m) >= int(NumMoves) {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Face returns the face index (U=0,R=1,F=2,D=3,L=4,B=5) turned by m.
func (m Move) Face() int { return int(m) / 3 }

// Turn returns the quarter-turn count minus one: 0 for a single
// clockwise turn, 1 for a double turn, 2 for a single counter-clockwise
// turn (i.e. three clockwise turns).
func (m Move) Turn() int { return int(m) % 3 }

// Inverse returns the move that undoes m.
func Inverse(m Move) Move {
	return Move(m.Face()*3 + (2 - m.Turn()))
}

// ParseMove parses a single move token such as "R", "R'", "R2", "R3".
// "'" and "3" both denote the counter-clockwise quarter turn.
func ParseMove(tok string) (Move, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty move token")
	}
	faceCh := tok[0]
	rest := tok[1:]
	var face int
	switch faceCh {
	case 'U':
		face = 0
	case 'R':
		face = 1
	case 'F':
		face = 2
	case 'D':
		face = 3
	case 'L':
		face = 4
	case 'B':
		face = 5
	default:
		return 0, fmt.Errorf("unknown face %q in move %q", string(faceCh), tok)
	}
	turn := 0
	switch rest {
	case "":
		turn = 0
	case "2":
		turn = 1
	case "3", "'":
		turn = 2
	default:
		return 0, fmt.Errorf("unknown modifier %q in move %q", rest, tok)
	}
	return Move(face*3 + turn), nil
}

// ParseMoves parses a whitespace-separated sequence of move tokens.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// generator holds the single-clockwise-quarter-turn cubie cube for each
// face, in the standard permutation/orientation layout.
var generator = [6]*CubieCube{
	// U
	{
		CP: [8]int8{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		CO: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int8{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// R
	{
		CP: [8]int8{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [8]int8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]int8{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// F
	{
		CP: [8]int8{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [8]int8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]int8{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [12]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	// D
	{
		CP: [8]int8{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		CO: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int8{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// L
	{
		CP: [8]int8{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [8]int8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]int8{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// B
	{
		CP: [8]int8{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [8]int8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]int8{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [12]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

var moveCube [NumMoves]*CubieCube

func init() {
	for face := 0; face < 6; face++ {
		q1 := generator[face].Clone()
		q2 := Multiplied(q1, q1)
		q3 := Multiplied(q2, q1)
		moveCube[face*3+0] = q1
		moveCube[face*3+1] = q2
		moveCube[face*3+2] = q3
	}
}

// MoveCube returns the fixed cubie cube describing move m in isolation.
// Applying it to a state via Multiply advances that state by m.
func MoveCube(m Move) *CubieCube { return moveCube[m] }

// Apply returns a new cube equal to cc with move m applied.
func (cc *CubieCube) Apply(m Move) *CubieCube {
	return Multiplied(cc, moveCube[m])
}

// ApplyInPlace advances cc by move m.
func (cc *CubieCube) ApplyInPlace(m Move) {
	cc.Multiply(moveCube[m])
}
