package rotation3d

import "github.com/chewxy/math32"

// AxisAngle represents a rotation in radians around a given 3D axis. This being the case, an AxisAngle can easily also be
// stored in a 4-dimensional vector; it's separated here into a 3D Vector and angle for simplicity and readability.
type AxisAngle struct {
	Axis  Vector3 // Unit-length axis for rotating
	Angle float32 // Rotation in radians, counter-clockwise looking down the axis
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation. The axis is normalized
// here (a zero-length axis panics with ErrZeroLength), so the conversion functions can rely on it being unit-length.
func NewAxisAngle(axis Vector3, angle float32) AxisAngle {
	return AxisAngle{
		Axis:  axis.Normalize(),
		Angle: angle,
	}
}

// Quaternion returns the AxisAngle as a unit Quaternion.
func (aa AxisAngle) Quaternion() Quaternion {
	return MakeRotateAxisAngleQuaternion(aa.Axis, aa.Angle)
}

// Matrix4 returns the AxisAngle as a rotation Matrix4.
func (aa AxisAngle) Matrix4() Matrix4 {
	return MakeRotateAxisAngle(aa.Axis, aa.Angle)
}

// RotateVector rotates the given Vector3 by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 0, 1] (+Z) and an Angle of pi / 2, axisAngle.RotateVector(Vector3{1, 0, 0}) would return Vector3{0, 1, 0}.
func (aa AxisAngle) RotateVector(vec Vector3) Vector3 {
	return RotateVector(vec, aa.Quaternion())
}

// Inverted returns the AxisAngle rotating the opposite way.
func (aa AxisAngle) Inverted() AxisAngle {
	aa.Angle = -aa.Angle
	return aa
}

// ToAxisAngle returns the axis and angle of a unit Quaternion. The identity rotation (which has no meaningful
// axis) returns +X with an angle of 0.
func (quat Quaternion) ToAxisAngle() AxisAngle {

	if quat.W < 0 {
		quat = quat.Negated()
	}

	v := quat.Vector()
	s := v.Length()

	if s < slerpEpsilon {
		return AxisAngle{Axis: VecX, Angle: 0}
	}

	return AxisAngle{
		Axis:  v.Scale(1 / s),
		Angle: 2 * math32.Atan2(s, quat.W),
	}

}
