package algebra

import (
	"fmt"
	"strings"
)

// Move is a single quarter-turn-counted face turn, e.g. R, U2, F'.
type Move struct {
	face Face
	by   Z4
}

// NewMove builds a move turning face by the given number of quarter turns.
func NewMove(face Face, by Z4) Move {
	return Move{face: face, by: by}
}

func (m Move) Face() Face { return m.face }
func (m Move) By() Z4     { return m.by }

// Inv returns the move that undoes m.
func (m Move) Inv() Move {
	return Move{face: m.face, by: m.by.Neg()}
}

// Rotate returns the move that results from applying rot to m, i.e. the
// move that has the same effect on the cube after the whole cube has been
// reoriented by rot.
func (m Move) Rotate(rot Rotation) Move {
	return Move{face: rot.Apply(m.face), by: m.by}
}

func (m Move) String() string {
	return m.face.String() + m.by.String()
}

// ParseMove parses a single move token such as "R", "U2" or "F'".
func ParseMove(tok string) (Move, error) {
	if tok == "" {
		return Move{}, ErrEmptyMove
	}
	faceLetter := tok[:1]
	face, err := ParseFace(faceLetter)
	if err != nil {
		return Move{}, err
	}
	suffix := tok[1:]
	var by Z4
	switch suffix {
	case "":
		by = Z4One
	case "2":
		by = Z4Two
	case "'":
		by = Z4Three
	case "0":
		by = Z4Zero
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrBadAmount, suffix)
	}
	return Move{face: face, by: by}, nil
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

// FormatMoves renders a move sequence back to its canonical space-separated form.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
