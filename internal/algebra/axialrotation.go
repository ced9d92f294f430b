package algebra

// AxialRotation is a whole-cube rotation expressed as quarter turns around
// a single axis (x, y or z), the form the CLI and renderer emit instead of
// the opaque 24-element Rotation.
type AxialRotation struct {
	axis Axis
	by   Z4
}

// NewAxialRotation builds an axial rotation.
func NewAxialRotation(axis Axis, by Z4) AxialRotation {
	return AxialRotation{axis: axis, by: by}
}

func (a AxialRotation) Axis() Axis { return a.axis }
func (a AxialRotation) By() Z4     { return a.by }

// Rotation expands this axial rotation into the full group element.
func (a AxialRotation) Rotation() Rotation {
	return Axial(a.axis, a.by)
}

func (a AxialRotation) String() string {
	return a.axis.String() + a.by.String()
}
