// Package optimizer implements the dynamic program that rewrites a
// sequence of face turns into a minimum-cost program mixing face turns
// with whole-cube rotations.
package optimizer

import (
	"context"

	"github.com/ehrlich-b/cubefold/internal/algebra"
	"golang.org/x/sync/errgroup"
)

// Solve finds a minimum-cost rewrite of alg. The returned program is
// equivalent to alg up to a single trailing whole-cube reorientation.
func Solve(ctx context.Context, alg []algebra.Move) ([]Entry, error) {
	n := len(alg)
	arr := newDPArray(n)

	for width := 0; width <= n; width++ {
		if err := fillWidth(ctx, alg, arr, width); err != nil {
			return nil, err
		}
	}

	root := idx{l: 0, r: n, rot: algebra.IdentityRotation, ax: algebra.IdentityAxialMove}
	entries, ok := reconstruct(alg, arr, root)
	if !ok {
		return nil, ErrNoSolution
	}
	return entries, nil
}

// fillWidth computes every dpCell whose interval has the given width,
// reading only cells of strictly smaller width that earlier calls already
// finalized. Work is split one goroutine per (l, rotation) pair; each
// goroutine owns a disjoint slice of the table so no synchronization is
// needed beyond the join at the end of the width.
func fillWidth(ctx context.Context, alg []algebra.Move, arr *dpArray, width int) error {
	g, gctx := errgroup.WithContext(ctx)

	for l := 0; l+width <= arr.n; l++ {
		l := l
		for _, rot := range algebra.AllRotations {
			rot := rot
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				r := l + width
				for _, axis := range algebra.AllAxes {
					for _, pos := range algebra.AllZ4 {
						for _, neg := range algebra.AllZ4 {
							if axis != algebra.AxisX && pos == algebra.Z4Zero && neg == algebra.Z4Zero {
								continue
							}
							ax := algebra.NewAxialMove(axis, pos, neg)
							i := idx{l: l, r: r, rot: rot, ax: ax}
							arr.set(i, computeCell(alg, arr, i))
						}
					}
				}
				return nil
			})
		}
	}

	return g.Wait()
}

type baseCaseKind uint8

const (
	baseCaseNone baseCaseKind = iota
	baseCaseImpossible
	baseCaseJust
)

// baseCase handles the situations compute doesn't need to search for: an
// empty or inverted interval, and a pending axial move whose axis cannot
// match the interval's first move under rot.
func baseCase(alg []algebra.Move, i idx) baseCaseKind {
	if i.l > i.r {
		return baseCaseImpossible
	}
	if i.l == i.r {
		if i.ax.IsIdentity() {
			return baseCaseJust
		}
		return baseCaseImpossible
	}
	if !i.ax.IsIdentity() && alg[i.l].Face().Axis().Rotate(i.rot) != i.ax.Axis() {
		return baseCaseImpossible
	}
	return baseCaseNone
}

func computeCell(alg []algebra.Move, arr *dpArray, i idx) dpCell {
	switch baseCase(alg, i) {
	case baseCaseImpossible:
		return dpCell{state: cellInfeasible}
	case baseCaseJust:
		cost := 0
		if i.rot != algebra.IdentityRotation {
			cost = 1
		}
		return dpCell{state: cellFeasible, cost: cost}
	}

	best := dpCell{state: cellInfeasible}
	found := false

	for k := i.l + 1; k <= i.r; k++ {
		for _, r1 := range algebra.AllRotations {
			for _, t1p := range algebra.AllZ4 {
				for _, t1n := range algebra.AllZ4 {
					movedFace := r1.Apply(alg[i.l].Face())
					t1 := algebra.NewAxialMove(movedFace.Axis(), t1p, t1n)
					choice := dpChoice{k: k, r1: r1, t1: t1}

					f1, sub1, sub2 := applyChoice(alg, i, choice)
					cost1, ok1 := arr.lookup(sub1)
					if !ok1 {
						continue
					}
					cost2, ok2 := arr.lookup(sub2)
					if !ok2 {
						continue
					}

					total := cost1 + cost2
					if f1.By() != algebra.Z4Zero {
						total++
					}

					if !found || total < best.cost {
						found = true
						best = dpCell{state: cellFeasible, cost: total, choice: choice, hasChoice: true}
					}
				}
			}
		}
	}

	if !found {
		return dpCell{state: cellInfeasible}
	}
	return best
}

// applyChoice expands a transition choice into the move it contributes and
// the two subproblems it splits the interval into.
func applyChoice(alg []algebra.Move, i idx, c dpChoice) (algebra.Move, idx, idx) {
	r0, t0 := i.rot, i.ax

	f1 := alg[i.l]
	rotated := f1.Rotate(c.r1)
	t2 := algebra.FromMove(rotated).Inv().Add(algebra.FromMove(rotated)).Add(c.t1)

	sub1 := idx{l: i.l + 1, r: c.k, rot: c.r1, ax: t2}

	negR1R0 := c.r1.Inv().Mul(r0)
	pending := algebra.FromMove(rotated).Add(c.t1)
	sub2 := idx{l: c.k, r: i.r, rot: negR1R0, ax: t0.Sub(pending.Rotate(negR1R0))}

	return f1, sub1, sub2
}

// reconstruct walks the filled table from idx down to the base cases,
// emitting the program the best choice at each node records.
func reconstruct(alg []algebra.Move, arr *dpArray, i idx) ([]Entry, bool) {
	switch baseCase(alg, i) {
	case baseCaseImpossible:
		return nil, false
	case baseCaseJust:
		if i.rot == algebra.IdentityRotation {
			return nil, true
		}
		return []Entry{rotationEntry(i.rot)}, true
	}

	cell := arr.get(i)
	if cell.state != cellFeasible || !cell.hasChoice {
		return nil, false
	}

	f1, sub1, sub2 := applyChoice(alg, i, cell.choice)
	entries1, ok1 := reconstruct(alg, arr, sub1)
	if !ok1 {
		panic("optimizer: recorded choice has an infeasible first half")
	}
	entries2, ok2 := reconstruct(alg, arr, sub2)
	if !ok2 {
		panic("optimizer: recorded choice has an infeasible second half")
	}

	result := make([]Entry, 0, 1+len(entries1)+len(entries2))
	if f1.By() != algebra.Z4Zero {
		result = append(result, moveEntry(f1))
	}
	result = append(result, entries1...)
	result = append(result, entries2...)
	return result, true
}
