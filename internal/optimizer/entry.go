package optimizer

import "github.com/ehrlich-b/cubefold/internal/algebra"

// EntryKind distinguishes the two things a rewritten program can contain.
type EntryKind int

const (
	EntryMove EntryKind = iota
	EntryRotation
)

// Entry is one step of a rewritten program: either a face turn or a
// whole-cube reorientation.
type Entry struct {
	Kind     EntryKind
	Move     algebra.Move
	Rotation algebra.Rotation
}

func moveEntry(m algebra.Move) Entry {
	return Entry{Kind: EntryMove, Move: m}
}

func rotationEntry(r algebra.Rotation) Entry {
	return Entry{Kind: EntryRotation, Rotation: r}
}
