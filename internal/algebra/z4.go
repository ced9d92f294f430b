// Package algebra implements the group-theoretic model of a 3x3x3 cube:
// quarter turns, faces, moves, axial moves and the 24-element rotation
// group, together with their actions on one another.
package algebra

import "fmt"

// Z4 is an element of the cyclic group of order 4, used to count quarter
// turns in the positive (clockwise looking at the face) direction.
type Z4 uint8

const (
	Z4Zero Z4 = iota
	Z4One
	Z4Two
	Z4Three
)

// AllZ4 enumerates the group in ascending order.
var AllZ4 = [4]Z4{Z4Zero, Z4One, Z4Two, Z4Three}

// Val returns the element as an int in [0,4).
func (z Z4) Val() int { return int(z) }

// Add returns z+other mod 4.
func (z Z4) Add(other Z4) Z4 {
	return Z4((int(z) + int(other)) % 4)
}

// Neg returns -z mod 4.
func (z Z4) Neg() Z4 {
	return Z4((4 - int(z)%4) % 4)
}

// Sub returns z-other mod 4.
func (z Z4) Sub(other Z4) Z4 {
	return z.Add(other.Neg())
}

func (z Z4) String() string {
	switch z {
	case Z4Zero:
		return "0"
	case Z4One:
		return ""
	case Z4Two:
		return "2"
	case Z4Three:
		return "'"
	default:
		return fmt.Sprintf("Z4(%d)", uint8(z))
	}
}
