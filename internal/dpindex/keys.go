package dpindex

import "github.com/ehrlich-b/cubefold/internal/algebra"

// AxisKey linearizes algebra.Axis into [0,3).
type AxisKey algebra.Axis

func (k AxisKey) Size() int  { return 3 }
func (k AxisKey) Index() int { return int(k) }

// Z4Key linearizes algebra.Z4 into [0,4).
type Z4Key algebra.Z4

func (k Z4Key) Size() int  { return 4 }
func (k Z4Key) Index() int { return int(k) }

// FaceKey linearizes algebra.Face into [0,6) as the composition of its
// axis and its sign.
type FaceKey algebra.Face

func (k FaceKey) Size() int { return 6 }
func (k FaceKey) Index() int {
	f := algebra.Face(k)
	return Compose(AxisKey(f.Axis()), Bool(f.Neg()))
}

// RotationKey linearizes algebra.Rotation into [0,24) via its Index().
type RotationKey struct{ R algebra.Rotation }

func (k RotationKey) Size() int  { return 24 }
func (k RotationKey) Index() int { return k.R.Index() }

// AxialMoveKey linearizes an algebra.AxialMove as the composition of its
// axis, positive amount and negative amount, spanning 3*4*4=48 flat slots.
// Two of those slots (the canonical-zero collapse landing on Y or Z) are
// never produced by the normalizing constructor and are simply unused.
type AxialMoveKey struct{ M algebra.AxialMove }

func (k AxialMoveKey) Size() int { return 3 * 4 * 4 }
func (k AxialMoveKey) Index() int {
	return Compose(AxisKey(k.M.Axis()), Z4Key(k.M.Pos()), Z4Key(k.M.Neg()))
}
