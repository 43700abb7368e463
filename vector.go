package rotation3d

import (
	"strconv"

	"github.com/chewxy/math32"
)

// VecX represents a unit vector in the global direction of +X on the right-handed coordinate system.
var VecX = NewVector3(1, 0, 0)

// VecY represents a unit vector in the global direction of +Y on the right-handed coordinate system.
var VecY = NewVector3(0, 1, 0)

// VecZ represents a unit vector in the global direction of +Z on the right-handed coordinate system.
var VecZ = NewVector3(0, 0, 1)

// Vector3 represents a 3D Vector (a position, a direction, or a rotation axis).
// Any Vector3 functions that would modify the calling Vector3 return copies of the modified Vector3 instead,
// meaning you can do method-chaining easily.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector3
	Y float32 // The Y (2nd) component of the Vector3
	Z float32 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector3, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Invert returns a copy of the Vector3 pointing the opposite way.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns a new Vector3, indicating the (right-handed) cross product of the calling Vector3 and the provided other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Length returns the length of the Vector3. Components are scaled by the largest of them before squaring, so tiny
// (or huge) vectors don't underflow to 0 (or overflow to +Inf).
func (vec Vector3) Length() float32 {
	scale := math32.Max(math32.Abs(vec.X), math32.Max(math32.Abs(vec.Y), math32.Abs(vec.Z)))
	if scale == 0 {
		return 0
	}
	x, y, z := vec.X/scale, vec.Y/scale, vec.Z/scale
	return scale * math32.Sqrt(x*x+y*y+z*z)
}

// Normalize returns a copy of the Vector3 set to be of unit length.
// Normalizing a zero-length Vector3 is a programming error and panics with ErrZeroLength.
func (vec Vector3) Normalize() Vector3 {
	l := vec.Length()
	if l == 0 {
		fault("Vector3.Normalize", ErrZeroLength)
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vector3s are close enough in all values.
func (vec Vector3) Equals(other Vector3) bool {
	return approx(vec.X, other.X) && approx(vec.Y, other.Y) && approx(vec.Z, other.Z)
}

// IsZero returns true if the values in the Vector3 are extremely close to 0.
func (vec Vector3) IsZero() bool {
	return vec.Equals(Vector3{})
}

// Floats returns a [3]float32 array consisting of the Vector3's contents.
func (vec Vector3) Floats() [3]float32 {
	return [3]float32{vec.X, vec.Y, vec.Z}
}

func (vec Vector3) String() string {
	return "{" + formatFloat(vec.X) + ", " + formatFloat(vec.Y) + ", " + formatFloat(vec.Z) + "}"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
