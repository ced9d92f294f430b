package dpindex

import (
	"testing"

	"github.com/ehrlich-b/cubefold/internal/algebra"
	"github.com/stretchr/testify/require"
)

func TestComposeIsInjective(t *testing.T) {
	seen := map[int]bool{}
	for _, axis := range algebra.AllAxes {
		for _, pos := range algebra.AllZ4 {
			for _, neg := range algebra.AllZ4 {
				idx := Compose(AxisKey(axis), Z4Key(pos), Z4Key(neg))
				require.False(t, seen[idx], "collision at axis=%v pos=%v neg=%v", axis, pos, neg)
				seen[idx] = true
				require.Less(t, idx, Size(AxisKey(axis), Z4Key(pos), Z4Key(neg)))
			}
		}
	}
}

func TestRotationKeyCoversAllIndices(t *testing.T) {
	seen := map[int]bool{}
	for _, r := range algebra.AllRotations {
		k := RotationKey{R: r}
		require.GreaterOrEqual(t, k.Index(), 0)
		require.Less(t, k.Index(), k.Size())
		seen[k.Index()] = true
	}
	require.Len(t, seen, 24)
}

func TestAxialMoveKeyRoundTripsThroughNormalization(t *testing.T) {
	identity := algebra.NewAxialMove(algebra.AxisY, algebra.Z4Zero, algebra.Z4Zero)
	require.Equal(t, algebra.AxisX, identity.Axis())
	k := AxialMoveKey{M: identity}
	require.Less(t, k.Index(), k.Size())
}

func TestArrayGetSet(t *testing.T) {
	arr := NewArray[int](10)
	arr.Set(3, 42)
	require.Equal(t, 42, arr.Get(3))
	require.Equal(t, 10, arr.Len())
}
