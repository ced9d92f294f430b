package algebra

import "fmt"

// Face names one of the six faces of a 3x3x3 cube. The numeric values are
// load-bearing: the rotation table data is indexed positionally by Face, so this
// order (R,U,F,L,D,B) must not change.
type Face uint8

const (
	FaceR Face = iota
	FaceU
	FaceF
	FaceL
	FaceD
	FaceB
)

// AllFaces enumerates the six faces in R,U,F,L,D,B order.
var AllFaces = [6]Face{FaceR, FaceU, FaceF, FaceL, FaceD, FaceB}

// NewFace builds the face on the given axis, negative (L/D/B) or
// positive (R/U/F) as requested.
func NewFace(axis Axis, neg bool) Face {
	switch axis {
	case AxisX:
		if neg {
			return FaceL
		}
		return FaceR
	case AxisY:
		if neg {
			return FaceD
		}
		return FaceU
	default:
		if neg {
			return FaceB
		}
		return FaceF
	}
}

// Axis returns the body axis this face lies on.
func (f Face) Axis() Axis {
	switch f {
	case FaceR, FaceL:
		return AxisX
	case FaceU, FaceD:
		return AxisY
	default:
		return AxisZ
	}
}

// Neg reports whether this face is the negative face of its axis (L, D, B).
func (f Face) Neg() bool {
	switch f {
	case FaceL, FaceD, FaceB:
		return true
	default:
		return false
	}
}

func (f Face) String() string {
	switch f {
	case FaceR:
		return "R"
	case FaceU:
		return "U"
	case FaceF:
		return "F"
	case FaceL:
		return "L"
	case FaceD:
		return "D"
	case FaceB:
		return "B"
	default:
		return fmt.Sprintf("Face(%d)", uint8(f))
	}
}

// ParseFace parses a single face letter.
func ParseFace(s string) (Face, error) {
	switch s {
	case "R":
		return FaceR, nil
	case "U":
		return FaceU, nil
	case "F":
		return FaceF, nil
	case "L":
		return FaceL, nil
	case "D":
		return FaceD, nil
	case "B":
		return FaceB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadFace, s)
	}
}
