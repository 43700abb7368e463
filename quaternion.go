package rotation3d

import "github.com/chewxy/math32"

// Quaternion represents a 4D hypercomplex number (x, y, z, w; w being the real part). A unit-length
// Quaternion represents a rotation; Quaternion and its negation represent the same rotation.
type Quaternion struct {
	X, Y, Z, W float32
}

func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// IdentityQuaternion returns the Quaternion for "no rotation": {0, 0, 0, 1}.
func IdentityQuaternion() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// Conjugate returns the Quaternion with its imaginary (x, y, z) components negated.
func (quat Quaternion) Conjugate() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, quat.W}
}

// Norm returns the length of the Quaternion treated as a 4D vector, scaled the same way as Vector3.Length.
func (quat Quaternion) Norm() float32 {
	scale := math32.Max(math32.Max(math32.Abs(quat.X), math32.Abs(quat.Y)), math32.Max(math32.Abs(quat.Z), math32.Abs(quat.W)))
	if scale == 0 {
		return 0
	}
	x, y, z, w := quat.X/scale, quat.Y/scale, quat.Z/scale, quat.W/scale
	return scale * math32.Sqrt(x*x+y*y+z*z+w*w)
}

// Normalize returns a copy of the Quaternion scaled to unit length. A zero Quaternion panics with ErrZeroNorm.
func (quat Quaternion) Normalize() Quaternion {
	norm := quat.Norm()
	if norm == 0 {
		fault("Quaternion.Normalize", ErrZeroNorm)
	}
	return Quaternion{quat.X / norm, quat.Y / norm, quat.Z / norm, quat.W / norm}
}

// Inverse returns the multiplicative inverse of the Quaternion (the conjugate divided by the squared norm).
// For a unit Quaternion this is the same as the conjugate. A zero Quaternion panics with ErrZeroNorm, as does one
// whose squared norm underflows float32 (a norm below roughly 1e-19).
func (quat Quaternion) Inverse() Quaternion {

	normSquared := quat.Dot(quat)
	if normSquared == 0 {
		fault("Quaternion.Inverse", ErrZeroNorm)
	}

	conj := quat.Conjugate()
	return Quaternion{
		conj.X / normSquared,
		conj.Y / normSquared,
		conj.Z / normSquared,
		conj.W / normSquared,
	}

}

// Multiply returns the Hamilton product of the calling Quaternion (left) and the other (right).
// This is not commutative; quat.Multiply(other) applies other's rotation first, then quat's.
func (quat Quaternion) Multiply(other Quaternion) Quaternion {
	return Multiply(quat, other)
}

// Multiply returns the Hamilton product lhs * rhs.
func Multiply(lhs, rhs Quaternion) Quaternion {
	return Quaternion{
		X: lhs.W*rhs.X + lhs.X*rhs.W + lhs.Y*rhs.Z - lhs.Z*rhs.Y,
		Y: lhs.W*rhs.Y - lhs.X*rhs.Z + lhs.Y*rhs.W + lhs.Z*rhs.X,
		Z: lhs.W*rhs.Z + lhs.X*rhs.Y - lhs.Y*rhs.X + lhs.Z*rhs.W,
		W: lhs.W*rhs.W - lhs.X*rhs.X - lhs.Y*rhs.Y - lhs.Z*rhs.Z,
	}
}

// Dot returns the 4-component dot product of two Quaternions.
func (quat Quaternion) Dot(other Quaternion) float32 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Scale multiplies every component of the Quaternion by the scalar given.
func (quat Quaternion) Scale(scalar float32) Quaternion {
	quat.X *= scalar
	quat.Y *= scalar
	quat.Z *= scalar
	quat.W *= scalar
	return quat
}

func (quat Quaternion) Add(other Quaternion) Quaternion {
	quat.X += other.X
	quat.Y += other.Y
	quat.Z += other.Z
	quat.W += other.W
	return quat
}

// Negated returns the Quaternion with all four components negated; it represents the same rotation.
func (quat Quaternion) Negated() Quaternion {
	return quat.Scale(-1)
}

// Equals returns true if the two Quaternions are close enough in all four values.
// Note that q and q.Negated() are the same rotation, but are not Equal.
func (quat Quaternion) Equals(other Quaternion) bool {
	return approx(quat.X, other.X) && approx(quat.Y, other.Y) && approx(quat.Z, other.Z) && approx(quat.W, other.W)
}

// Vector returns the imaginary (x, y, z) part of the Quaternion.
func (quat Quaternion) Vector() Vector3 {
	return Vector3{quat.X, quat.Y, quat.Z}
}

// Floats returns the components of the Quaternion as [x, y, z, w].
func (quat Quaternion) Floats() [4]float32 {
	return [4]float32{quat.X, quat.Y, quat.Z, quat.W}
}

func (quat Quaternion) String() string {
	return "{" + formatFloat(quat.X) + ", " + formatFloat(quat.Y) + ", " + formatFloat(quat.Z) + ", " + formatFloat(quat.W) + "}"
}

// MakeRotateAxisAngleQuaternion returns the unit Quaternion rotating by angle (in radians) counter-clockwise around axis.
// The axis must already be unit-length; anything else panics with ErrAxisNotUnit.
func MakeRotateAxisAngleQuaternion(axis Vector3, angle float32) Quaternion {

	if !isUnit(axis.Length()) {
		fault("MakeRotateAxisAngleQuaternion", ErrAxisNotUnit)
	}

	s := math32.Sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math32.Cos(angle / 2),
	}

}

// RotateVector rotates vec by the unit Quaternion quat using the sandwich product quat * (vec, 0) * conjugate(quat).
// The result agrees with Transform(vec, MakeRotateMatrix(quat)).
func RotateVector(vec Vector3, quat Quaternion) Vector3 {
	pure := Quaternion{vec.X, vec.Y, vec.Z, 0}
	return Multiply(Multiply(quat, pure), quat.Conjugate()).Vector()
}

// Slerp spherically interpolates from q0 to q1 by t (0 returning q0, 1 returning q1). If the two are more than
// 90 degrees apart in 4D, q1 is negated first so the interpolation takes the shorter arc; the result at t = 1 is
// then the negated q1. t isn't clamped. When the Quaternions are (nearly) identical the result is a linear blend,
// which avoids dividing by sin(theta) ~ 0.
func Slerp(q0, q1 Quaternion, t float32) Quaternion {

	dot := q0.Dot(q1)

	if dot < 0 {
		q1 = q1.Negated()
		dot = -dot
	}

	theta := math32.Acos(math32.Min(dot, 1))
	sinTheta := math32.Sin(theta)

	if sinTheta < slerpEpsilon {
		return q0.Scale(1 - t).Add(q1.Scale(t))
	}

	scale0 := math32.Sin((1-t)*theta) / sinTheta
	scale1 := math32.Sin(t*theta) / sinTheta

	return q0.Scale(scale0).Add(q1.Scale(scale1))

}

// Slerp is the method form of Slerp(quat, other, t).
func (quat Quaternion) Slerp(other Quaternion, t float32) Quaternion {
	return Slerp(quat, other, t)
}
