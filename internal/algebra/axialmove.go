package algebra

import "fmt"

// AxialMove bundles the quarter turns applied to the two opposite faces of
// a single axis, e.g. "R U'" is never a single AxialMove (R and U are on
// different axes), but "R L'" is one:
// pos counts turns on the positive face (R/U/F), neg on the negative face
// (L/D/B). The identity (pos=neg=0) is always normalized to AxisX so that
// two otherwise-equal identities compare equal regardless of which axis
// produced them.
type AxialMove struct {
	axis Axis
	pos  Z4
	neg  Z4
}

// IdentityAxialMove is the do-nothing axial move.
var IdentityAxialMove = AxialMove{axis: AxisX}

// NewAxialMove builds a normalized axial move.
func NewAxialMove(axis Axis, pos, neg Z4) AxialMove {
	if pos == Z4Zero && neg == Z4Zero {
		return IdentityAxialMove
	}
	return AxialMove{axis: axis, pos: pos, neg: neg}
}

// FromMove lifts a single face turn into an axial move on its axis.
func FromMove(m Move) AxialMove {
	if m.face.Neg() {
		return NewAxialMove(m.face.Axis(), Z4Zero, m.by)
	}
	return NewAxialMove(m.face.Axis(), m.by, Z4Zero)
}

func (a AxialMove) Axis() Axis { return a.axis }
func (a AxialMove) Pos() Z4    { return a.pos }
func (a AxialMove) Neg() Z4    { return a.neg }

// IsIdentity reports whether this axial move has no effect.
func (a AxialMove) IsIdentity() bool {
	return a.pos == Z4Zero && a.neg == Z4Zero
}

// PosMove returns the turn applied to the positive face, if any.
func (a AxialMove) PosMove() Move {
	return NewMove(NewFace(a.axis, false), a.pos)
}

// NegMove returns the turn applied to the negative face, if any.
func (a AxialMove) NegMove() Move {
	return NewMove(NewFace(a.axis, true), a.neg)
}

// Add composes two axial moves. The identity is axis-agnostic and composes
// with anything; composing two non-identity axial moves on different axes
// is a contract violation since such a pair is never a single axial move.
func (a AxialMove) Add(b AxialMove) AxialMove {
	if a.IsIdentity() {
		return b
	}
	if b.IsIdentity() {
		return a
	}
	if a.axis != b.axis {
		panic(fmt.Sprintf("algebra: Add of axial moves on different axes (%v, %v)", a.axis, b.axis))
	}
	return NewAxialMove(a.axis, a.pos.Add(b.pos), a.neg.Add(b.neg))
}

// Sub returns a-b.
func (a AxialMove) Sub(b AxialMove) AxialMove {
	return a.Add(b.Inv())
}

// Inv returns the inverse axial move.
func (a AxialMove) Inv() AxialMove {
	return NewAxialMove(a.axis, a.pos.Neg(), a.neg.Neg())
}

// Rotate returns the axial move obtained by reorienting a through rot: the
// positive face is reassigned to wherever rot sends it, and pos/neg swap
// if that destination is the negative face of its axis.
func (a AxialMove) Rotate(rot Rotation) AxialMove {
	newFace := rot.Apply(NewFace(a.axis, false))
	if newFace.Neg() {
		return NewAxialMove(newFace.Axis(), a.neg, a.pos)
	}
	return NewAxialMove(newFace.Axis(), a.pos, a.neg)
}

func (a AxialMove) String() string {
	switch {
	case a.pos == Z4Zero && a.neg == Z4Zero:
		return "(0)"
	case a.neg == Z4Zero:
		return "(" + a.PosMove().String() + ")"
	case a.pos == Z4Zero:
		return "(" + a.NegMove().String() + ")"
	default:
		return "(" + a.PosMove().String() + " " + a.NegMove().String() + ")"
	}
}
