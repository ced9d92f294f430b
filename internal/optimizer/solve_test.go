package optimizer

import (
	"context"
	"testing"

	"github.com/ehrlich-b/cubefold/internal/algebra"
	"github.com/stretchr/testify/require"
)

func TestSolveEmptyInput(t *testing.T) {
	entries, err := Solve(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestSolvePreservesMoveOrder(t *testing.T) {
	cases := [][]string{
		{"R"},
		{"R", "R'"},
		{"R", "L"},
		{"R", "U", "R'", "U'"},
	}
	for _, tc := range cases {
		moves := mustParseAll(t, tc)
		entries, err := Solve(context.Background(), moves)
		if err != nil {
			// Solve reports a missing rewrite as ErrNoSolution rather
			// than panicking.
			require.ErrorIs(t, err, ErrNoSolution)
			continue
		}
		var emitted []algebra.Move
		for _, e := range entries {
			if e.Kind == EntryMove {
				emitted = append(emitted, e.Move)
			}
		}
		require.Equal(t, moves, emitted, "moves must survive in their original order")
	}
}

func TestSolveDoesNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		moves := mustParseAll(t, []string{"R", "U", "R'", "U'", "F", "B2", "D'"})
		_, _ = Solve(context.Background(), moves)
	})
}

// TestSolveIsSemanticallyEquivalent checks the purpose-statement guarantee
// directly: replaying a reconstructed program's rotation entries against its
// move entries must reproduce alg exactly. netEffect folds every Rotation
// entry into the moves that follow it and drops the trailing one, so this is
// independent of reconstruct's own bookkeeping (applyChoice, dpArray) and
// would catch a bug there that happened to still leave moves in order.
func TestSolveIsSemanticallyEquivalent(t *testing.T) {
	cases := [][]string{
		{"R"},
		{"R", "R'"},
		{"R", "L"},
		{"R", "U"},
		{"R", "U", "R'"},
		{"R", "U", "R'", "U'"},
		{"F", "B2", "D'"},
	}
	for _, tc := range cases {
		moves := mustParseAll(t, tc)
		entries, err := Solve(context.Background(), moves)
		if err != nil {
			require.ErrorIs(t, err, ErrNoSolution)
			continue
		}
		require.Equal(t, moves, netEffect(entries), "reconstructed program must have the same net effect as the input")
	}
}

// TestSolvePureRotationAvoidance covers spec.md's "pure rotation avoidance"
// property: a single move never needs to be padded with an extra rotation.
func TestSolvePureRotationAvoidance(t *testing.T) {
	for _, face := range algebra.AllFaces {
		for _, by := range []algebra.Z4{algebra.Z4One, algebra.Z4Two, algebra.Z4Three} {
			m := algebra.NewMove(face, by)
			entries, err := Solve(context.Background(), []algebra.Move{m})
			if err != nil {
				require.ErrorIs(t, err, ErrNoSolution)
				continue
			}
			require.LessOrEqual(t, Cost(entries), 1, "a single move should never cost more than itself")
		}
	}
}

// TestSolveCostIsMinimal checks cost minimality for |alg| <= 4 against a
// brute-force search over the same family of programs Solve itself returns:
// alg's moves, in order, with zero or one whole-cube rotation inserted
// before each move. Collapsing any run of consecutive rotation entries into
// one never changes net effect and never raises cost, so this family is
// never a smaller search space than what reconstruct can actually produce.
func TestSolveCostIsMinimal(t *testing.T) {
	cases := [][]string{
		{"R"},
		{"R", "R'"},
		{"R", "L"},
		{"R", "U", "R'"},
		{"R", "U", "R'", "U'"},
	}
	for _, tc := range cases {
		moves := mustParseAll(t, tc)
		entries, err := Solve(context.Background(), moves)
		if err != nil {
			require.ErrorIs(t, err, ErrNoSolution)
			continue
		}
		best, found := bruteForceMinCost(moves)
		require.True(t, found, "the rotation-free program is always a candidate")
		require.LessOrEqual(t, Cost(entries), best, "Solve must not cost more than the brute-force minimum")
	}
}

// TestSolveIdempotent checks that re-running Solve on its own move-only
// output costs the same as the original run.
func TestSolveIdempotent(t *testing.T) {
	cases := [][]string{
		{"R"},
		{"R", "R'"},
		{"R", "L"},
		{"R", "U", "R'", "U'"},
		{"F", "B2", "D'"},
	}
	for _, tc := range cases {
		moves := mustParseAll(t, tc)
		entries, err := Solve(context.Background(), moves)
		if err != nil {
			require.ErrorIs(t, err, ErrNoSolution)
			continue
		}

		var again []algebra.Move
		for _, e := range entries {
			if e.Kind == EntryMove {
				again = append(again, e.Move)
			}
		}
		reentries, err := Solve(context.Background(), again)
		require.NoError(t, err)
		require.Equal(t, Cost(entries), Cost(reentries))
	}
}

func mustParseAll(t *testing.T, toks []string) []algebra.Move {
	t.Helper()
	moves := make([]algebra.Move, len(toks))
	for i, tok := range toks {
		m, err := algebra.ParseMove(tok)
		require.NoError(t, err)
		moves[i] = m
	}
	return moves
}

// netEffect replays a reconstructed program's Rotation entries against its
// Move entries and returns each move re-expressed in the original, unrotated
// frame: a Rotation entry folds into every Move entry that follows it, and
// any trailing Rotation (nothing left to fold into) drops out on its own.
func netEffect(entries []Entry) []algebra.Move {
	acc := algebra.IdentityRotation
	moves := make([]algebra.Move, 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case EntryRotation:
			acc = e.Rotation.Mul(acc)
		case EntryMove:
			moves = append(moves, e.Move.Rotate(acc.Inv()))
		}
	}
	return moves
}

// bruteForceMinCost searches, independently of the DP, for the cheapest
// program built from alg's literal moves in order with zero or one
// whole-cube rotation inserted directly before each move. A candidate
// rotation at a given move is only explored if it still reproduces that
// exact move once netEffect's accumulated-rotation folding is undone,
// mirroring the equivalence check TestSolveIsSemanticallyEquivalent makes
// against Solve's own output.
func bruteForceMinCost(alg []algebra.Move) (best int, found bool) {
	var rec func(i int, acc algebra.Rotation, cost int)
	rec = func(i int, acc algebra.Rotation, cost int) {
		if found && cost >= best {
			return
		}
		if i == len(alg) {
			best, found = cost, true
			return
		}
		if alg[i].Rotate(acc.Inv()) == alg[i] {
			rec(i+1, acc, cost+1)
		}
		for _, r := range algebra.AllRotations {
			if r == algebra.IdentityRotation {
				continue
			}
			next := r.Mul(acc)
			if alg[i].Rotate(next.Inv()) == alg[i] {
				rec(i+1, next, cost+2)
			}
		}
	}
	rec(0, algebra.IdentityRotation, 0)
	return best, found
}
