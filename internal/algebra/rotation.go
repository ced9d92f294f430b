package algebra

import "fmt"

// diagonal names one of the cube's four body diagonals. A Rotation is
// represented as where the four diagonals, starting from UFR, end up -
// packed two bits apiece into a single byte.
type diagonal uint8

const (
	diagUFR diagonal = iota
	diagUFL
	diagDFR
	diagUBR
)

// Rotation is one of the 24 elements of the cube's rotation group: the
// ways to pick the whole cube up and set it back down.
type Rotation struct {
	packed uint8
}

// data lists, for each face, the four diagonals in the order they appear
// going around that face starting from the one nearest it; it's the
// generating table every Rotation operation is built from.
var data = [6][4]diagonal{
	{diagUFR, diagUBR, diagUFL, diagDFR}, // R
	{diagUFR, diagUFL, diagDFR, diagUBR}, // U
	{diagUFR, diagDFR, diagUBR, diagUFL}, // F
	{diagUFR, diagDFR, diagUFL, diagUBR}, // L
	{diagUFR, diagUBR, diagDFR, diagUFL}, // D
	{diagUFR, diagUFL, diagUBR, diagDFR}, // B
}

func toArray(p uint8) [4]diagonal {
	var res [4]diagonal
	for i := range res {
		res[i] = diagonal((p >> (2 * uint(i))) & 0b11)
	}
	return res
}

func fromArray(arr [4]diagonal) uint8 {
	var res uint8
	for i, d := range arr {
		res |= uint8(d) << (2 * uint(i))
	}
	return res
}

func rotateRight(arr [4]diagonal, j int) [4]diagonal {
	var out [4]diagonal
	for i := range out {
		out[i] = arr[(i-j+4*len(arr))%len(arr)]
	}
	return out
}

func rotateLeft(arr [4]diagonal, j int) [4]diagonal {
	return rotateRight(arr, -j)
}

func getDirect(r uint8, face Face) Face {
	this := toArray(r)
	lookup := data[face]
	var lookedUp [4]diagonal
	pos := 0
	for i, d := range lookup {
		lookedUp[i] = this[d]
		if lookedUp[i] == diagUFR {
			pos = i
		}
	}
	lookedUp = rotateLeft(lookedUp, pos)
	for i, row := range data {
		if row[1] == lookedUp[1] && row[2] == lookedUp[2] && row[3] == lookedUp[3] {
			return AllFaces[i]
		}
	}
	panic("algebra: rotation table is not a bijection")
}

func mulDirect(lhs, rhs uint8) uint8 {
	l := toArray(lhs)
	r := toArray(rhs)
	var out [4]diagonal
	for i := range out {
		out[i] = l[r[i]]
	}
	return fromArray(out)
}

func invDirect(r uint8) uint8 {
	this := toArray(r)
	var out [4]diagonal
	for i, d := range this {
		out[d] = diagonal(i)
	}
	return fromArray(out)
}

// IdentityRotation is the rotation that leaves the cube as it is.
var IdentityRotation = Rotation{packed: fromArray([4]diagonal{diagUFR, diagUFL, diagDFR, diagUBR})}

// AllRotations enumerates all 24 elements of the rotation group.
var AllRotations [24]Rotation

var (
	getLUT   [256][6]Face
	applyLUT [256][6]Face
	invLUT   [256]uint8
	mulLUT   [24][24]uint8
	indexLUT [256]int
)

func init() {
	for idx := 0; idx < 24; idx++ {
		j := idx / 6
		i := idx % 6
		AllRotations[idx] = Rotation{packed: fromArray(rotateRight(data[i], j))}
	}

	for i := range indexLUT {
		indexLUT[i] = -1
	}
	for idx, r := range AllRotations {
		indexLUT[r.packed] = idx
	}

	for _, r := range AllRotations {
		for _, f := range AllFaces {
			getLUT[r.packed][f] = getDirect(r.packed, f)
		}
	}
	for _, r := range AllRotations {
		inv := invDirect(r.packed)
		invLUT[r.packed] = inv
		for _, f := range AllFaces {
			applyLUT[r.packed][f] = getDirect(inv, f)
		}
	}
	for _, lhs := range AllRotations {
		for _, rhs := range AllRotations {
			mulLUT[lhs.Index()][rhs.Index()] = mulDirect(lhs.packed, rhs.packed)
		}
	}
}

// Index returns this rotation's position in AllRotations, 0..23.
func (r Rotation) Index() int {
	idx := indexLUT[r.packed]
	if idx < 0 {
		panic("algebra: not a valid rotation")
	}
	return idx
}

// Get returns the face that was originally at face before this rotation
// was applied, i.e. Get is Apply's inverse lookup.
func (r Rotation) Get(face Face) Face {
	return getLUT[r.packed][face]
}

// Apply returns where face ends up after this rotation is applied to the
// whole cube.
func (r Rotation) Apply(face Face) Face {
	return applyLUT[r.packed][face]
}

// Inv returns the inverse rotation.
func (r Rotation) Inv() Rotation {
	return Rotation{packed: invLUT[r.packed]}
}

// Mul composes rotations, applying r first and then other:
// (r.Mul(other)).Apply(f) == other.Apply(r.Apply(f)).
func (r Rotation) Mul(other Rotation) Rotation {
	return Rotation{packed: mulLUT[r.Index()][other.Index()]}
}

// Axial builds the rotation that turns the whole cube by of quarter turns
// around the given axis.
func Axial(axis Axis, by Z4) Rotation {
	d := data[NewFace(axis, false)]
	var out [4]diagonal
	for _, i := range AllZ4 {
		out[d[i]] = d[i.Sub(by)]
	}
	return Rotation{packed: fromArray(out)}
}

func (r Rotation) String() string {
	arr := toArray(r.packed)
	return fmt.Sprintf("@%v", arr)
}

// Decompose flattens a whole-cube rotation into at most two AxialRotations
// that compose (in order) to the same effect.
func (r Rotation) Decompose() []AxialRotation {
	rID := r.Apply(FaceR) == FaceR
	uID := r.Apply(FaceU) == FaceU
	fID := r.Apply(FaceF) == FaceF

	switch {
	case rID && uID && fID:
		return nil
	case rID || uID || fID:
		var id Face
		switch {
		case rID:
			id = FaceR
		case uID:
			id = FaceU
		default:
			id = FaceF
		}
		axis := id.Axis()
		applied := r.Apply(NewFace(axis.Next(), false))
		var by Z4
		switch {
		case applied.Axis() == axis.Next() && !applied.Neg():
			by = Z4Zero
		case applied.Axis() != axis.Next() && applied.Neg():
			by = Z4One
		case applied.Axis() == axis.Next() && applied.Neg():
			by = Z4Two
		default:
			by = Z4Three
		}
		return []AxialRotation{NewAxialRotation(axis, by)}
	default:
		var axis Axis
		var by Z4
		switch r.Apply(FaceR) {
		case FaceU:
			axis, by = AxisZ, Z4Three
		case FaceF:
			axis, by = AxisY, Z4One
		case FaceL:
			axis, by = AxisY, Z4Two
		case FaceD:
			axis, by = AxisZ, Z4One
		case FaceB:
			axis, by = AxisY, Z4Three
		default:
			panic("algebra: Decompose reached an unreachable branch")
		}
		first := NewAxialRotation(axis, by)
		rest := Axial(axis, by).Inv().Mul(r)
		return append([]AxialRotation{first}, rest.Decompose()...)
	}
}
