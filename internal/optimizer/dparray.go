package optimizer

import (
	"github.com/ehrlich-b/cubefold/internal/algebra"
	"github.com/ehrlich-b/cubefold/internal/dpindex"
)

// idx names one dynamic-programming subproblem: rewrite alg[l:r] starting
// from orientation rot with a pending axial move ax that has to be merged
// into the start of the program emitted for this interval (its axis must
// match the interval's first move, and an empty interval admits only the
// identity).
type idx struct {
	l, r int
	rot  algebra.Rotation
	ax   algebra.AxialMove
}

func (i idx) key(n int) int {
	return dpindex.Compose(
		dpindex.Range{Val: i.l, N: n + 1},
		dpindex.Range{Val: i.r, N: n + 1},
		dpindex.RotationKey{R: i.rot},
		dpindex.AxialMoveKey{M: i.ax},
	)
}

func dpSize(n int) int {
	return dpindex.Size(
		dpindex.Range{N: n + 1},
		dpindex.Range{N: n + 1},
		dpindex.RotationKey{},
		dpindex.AxialMoveKey{},
	)
}

type cellState uint8

const (
	cellUnset cellState = iota
	cellInfeasible
	cellFeasible
)

type dpChoice struct {
	k  int
	r1 algebra.Rotation
	t1 algebra.AxialMove
}

type dpCell struct {
	state     cellState
	cost      int
	choice    dpChoice
	hasChoice bool
}

// dpArray is the flat table the solver fills bottom-up by interval width.
type dpArray struct {
	n     int
	cells dpindex.Array[dpCell]
}

func newDPArray(n int) *dpArray {
	arr := dpindex.NewArray[dpCell](dpSize(n))
	return &dpArray{n: n, cells: arr}
}

func (a *dpArray) get(i idx) dpCell {
	return a.cells.Get(i.key(a.n))
}

func (a *dpArray) set(i idx, c dpCell) {
	a.cells.Set(i.key(a.n), c)
}

// lookup reads a strictly-smaller-width cell that the previous width pass
// already filled, returning its cost and whether it was feasible.
func (a *dpArray) lookup(i idx) (int, bool) {
	c := a.get(i)
	if c.state == cellFeasible {
		return c.cost, true
	}
	return 0, false
}
