package rotation3d

import (
	"github.com/chewxy/math32"
)

// Matrix4 represents a 4x4 matrix for rotation (and translation). A Matrix4 is row-major, and vectors are treated as
// row vectors multiplied on the left (v' = v * M); this being the case, the X axis of a rotation Matrix4 is matrix[0]
// and the translation is matrix[3].
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// NewMatrix4Translate returns a new identity Matrix4, but with the x, y, and z translation components set as provided.
func NewMatrix4Translate(x, y, z float32) Matrix4 {
	mat := NewMatrix4()
	mat[3][0] = x
	mat[3][1] = y
	mat[3][2] = z
	return mat
}

// MakeRotateAxisAngle returns a new Matrix4 designed to rotate by the angle given (in radians) counter-clockwise around
// the axis given, built directly with Rodrigues' rotation formula. The axis must already be unit-length; anything else
// panics with ErrAxisNotUnit.
func MakeRotateAxisAngle(axis Vector3, angle float32) Matrix4 {

	if !isUnit(axis.Length()) {
		fault("MakeRotateAxisAngle", ErrAxisNotUnit)
	}

	return rotation(axis, math32.Cos(angle), math32.Sin(angle))

}

// rotation fills in a rotation Matrix4 from a unit axis and the cosine and sine of the angle around it.
func rotation(axis Vector3, c, s float32) Matrix4 {

	mat := NewMatrix4()
	m := 1 - c

	mat[0][0] = m*axis.X*axis.X + c
	mat[0][1] = m*axis.X*axis.Y + axis.Z*s
	mat[0][2] = m*axis.X*axis.Z - axis.Y*s

	mat[1][0] = m*axis.X*axis.Y - axis.Z*s
	mat[1][1] = m*axis.Y*axis.Y + c
	mat[1][2] = m*axis.Y*axis.Z + axis.X*s

	mat[2][0] = m*axis.X*axis.Z + axis.Y*s
	mat[2][1] = m*axis.Y*axis.Z - axis.X*s
	mat[2][2] = m*axis.Z*axis.Z + c

	return mat

}

// MakeRotateMatrix converts a unit Quaternion into the equivalent rotation Matrix4. The Quaternion isn't normalized first.
func MakeRotateMatrix(quat Quaternion) Matrix4 {

	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W
	mat := NewMatrix4()

	mat[0][0] = w*w + x*x - y*y - z*z
	mat[0][1] = 2 * (x*y + w*z)
	mat[0][2] = 2 * (x*z - w*y)

	mat[1][0] = 2 * (x*y - w*z)
	mat[1][1] = w*w - x*x + y*y - z*z
	mat[1][2] = 2 * (y*z + w*x)

	mat[2][0] = 2 * (x*z + w*y)
	mat[2][1] = 2 * (y*z - w*x)
	mat[2][2] = w*w - x*x - y*y + z*z

	return mat

}

// ToMatrix4 is the method form of MakeRotateMatrix.
func (quat Quaternion) ToMatrix4() Matrix4 {
	return MakeRotateMatrix(quat)
}

// Transform multiplies vec (as a row vector, with an implied W of 1) by the Matrix4, giving a vector that has been
// rotated (and translated by row 3) as the matrix describes.
func Transform(vec Vector3, matrix Matrix4) Vector3 {
	return Vector3{
		X: vec.X*matrix[0][0] + vec.Y*matrix[1][0] + vec.Z*matrix[2][0] + matrix[3][0],
		Y: vec.X*matrix[0][1] + vec.Y*matrix[1][1] + vec.Z*matrix[2][1] + matrix[3][1],
		Z: vec.X*matrix[0][2] + vec.Y*matrix[1][2] + vec.Z*matrix[2][2] + matrix[3][2],
	}
}

// MultVec is the method form of Transform.
func (matrix Matrix4) MultVec(vec Vector3) Vector3 {
	return Transform(vec, matrix)
}

// DirectionToDirection returns the smallest rotation Matrix4 that turns the from direction onto the to direction.
// Both are normalized first; a zero-length direction panics with ErrZeroLength. Opposite directions rotate by
// 180 degrees around an arbitrary axis perpendicular to from.
func DirectionToDirection(from, to Vector3) Matrix4 {

	if from.Length() == 0 || to.Length() == 0 {
		fault("DirectionToDirection", ErrZeroLength)
	}

	from = from.Normalize()
	to = to.Normalize()

	c := from.Dot(to)

	if math32.Abs(c+1) < antiparallelEpsilon {

		var axis Vector3
		if math32.Abs(from.X) > antiparallelEpsilon || math32.Abs(from.Y) > antiparallelEpsilon {
			axis = Vector3{-from.Y, from.X, 0}
		} else {
			axis = Vector3{-from.Z, 0, from.X}
		}

		return rotation(axis.Normalize(), -1, 0)

	}

	cross := from.Cross(to)
	s := cross.Length()

	// Same direction; the formula converges to identity, but the axis can't be normalized.
	if s < antiparallelEpsilon {
		return NewMatrix4()
	}

	return rotation(cross.Scale(1/s), c, s)

}

// ToQuaternion returns a unit Quaternion representative of the Matrix4's rotation (assuming it is just a purely rotational Matrix4).
func (matrix Matrix4) ToQuaternion() Quaternion {

	trace := matrix[0][0] + matrix[1][1] + matrix[2][2]

	// Pick the largest of w, x, y, z to divide by, so the result stays precise for any angle.
	switch {

	case trace > 0:
		s := math32.Sqrt(trace+1) * 2
		return Quaternion{
			X: (matrix[1][2] - matrix[2][1]) / s,
			Y: (matrix[2][0] - matrix[0][2]) / s,
			Z: (matrix[0][1] - matrix[1][0]) / s,
			W: s / 4,
		}

	case matrix[0][0] > matrix[1][1] && matrix[0][0] > matrix[2][2]:
		s := math32.Sqrt(1+matrix[0][0]-matrix[1][1]-matrix[2][2]) * 2
		return Quaternion{
			X: s / 4,
			Y: (matrix[0][1] + matrix[1][0]) / s,
			Z: (matrix[2][0] + matrix[0][2]) / s,
			W: (matrix[1][2] - matrix[2][1]) / s,
		}

	case matrix[1][1] > matrix[2][2]:
		s := math32.Sqrt(1+matrix[1][1]-matrix[0][0]-matrix[2][2]) * 2
		return Quaternion{
			X: (matrix[0][1] + matrix[1][0]) / s,
			Y: s / 4,
			Z: (matrix[1][2] + matrix[2][1]) / s,
			W: (matrix[2][0] - matrix[0][2]) / s,
		}

	default:
		s := math32.Sqrt(1+matrix[2][2]-matrix[0][0]-matrix[1][1]) * 2
		return Quaternion{
			X: (matrix[2][0] + matrix[0][2]) / s,
			Y: (matrix[1][2] + matrix[2][1]) / s,
			Z: s / 4,
			W: (matrix[0][1] - matrix[1][0]) / s,
		}

	}

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them, with the calling
// Matrix4 applied first.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	var newMat Matrix4

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			newMat[i][j] = matrix[i][0]*other[0][j] + matrix[i][1]*other[1][j] + matrix[i][2]*other[2][j] + matrix[i][3]*other[3][j]
		}
	}

	return newMat

}

// Transposed transposes a Matrix4. For rotation matrices this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	var new Matrix4

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			new[i][j] = matrix[j][i]
		}
	}

	return new

}

// Row returns the indiced row of the Matrix4's rotation block as a Vector3.
func (matrix Matrix4) Row(rowIndex int) Vector3 {
	return Vector3{
		X: matrix[rowIndex][0],
		Y: matrix[rowIndex][1],
		Z: matrix[rowIndex][2],
	}
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if !approx(matrix[i][j], other[i][j]) {
				return false
			}
		}
	}
	return true
}

var identityMatrix = NewMatrix4()

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(identityMatrix)
}

// IsOrthonormal returns true if the rows of the rotation block are unit-length and perpendicular to each other,
// and row / column 3 are the homogeneous identity.
func (matrix Matrix4) IsOrthonormal() bool {

	for i := 0; i < 3; i++ {
		if !approx(matrix[i][3], 0) || !approx(matrix[3][i], 0) {
			return false
		}
		for j := 0; j < 3; j++ {
			expected := float32(0)
			if i == j {
				expected = 1
			}
			if !approx(matrix.Row(i).Dot(matrix.Row(j)), expected) {
				return false
			}
		}
	}

	return approx(matrix[3][3], 1)

}

// ToFloats returns the Matrix4's values in row-major order.
func (matrix Matrix4) ToFloats() [16]float32 {
	var floats [16]float32
	for i := 0; i < 16; i++ {
		floats[i] = matrix[i/4][i%4]
	}
	return floats
}

func (matrix Matrix4) String() string {
	s := "{"
	for i, y := range matrix {
		for _, x := range y {
			s += formatFloat(x) + ", "
		}
		if i < len(matrix)-1 {
			s += "\n"
		}
	}
	s += "}"
	return s
}
