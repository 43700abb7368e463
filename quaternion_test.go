package rotation3d

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertQuaternion(t *testing.T, expected, actual Quaternion, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.W, actual.W, tolerance, msgAndArgs...)
}

var testQuaternions = []Quaternion{
	{2, 3, 4, 1},
	{1, 3, 5, 2},
	{0, 0, 0, 1},
	{-0.5, 0.5, -0.5, 0.5},
	{0.1, -7, 0.25, -3},
}

func TestQuaternionBasics(t *testing.T) {

	q1 := NewQuaternion(2, 3, 4, 1)

	assert.Equal(t, Quaternion{0, 0, 0, 1}, IdentityQuaternion())
	assert.Equal(t, Quaternion{-2, -3, -4, 1}, q1.Conjugate())
	assert.InDelta(t, math32.Sqrt(30), q1.Norm(), tolerance)
	assert.InDelta(t, 5.477, q1.Norm(), 1e-3)
	assertQuaternion(t, Quaternion{-2.0 / 30, -3.0 / 30, -4.0 / 30, 1.0 / 30}, q1.Inverse())

	n := q1.Normalize()
	assertQuaternion(t, Quaternion{2 / math32.Sqrt(30), 3 / math32.Sqrt(30), 4 / math32.Sqrt(30), 1 / math32.Sqrt(30)}, n)

}

func TestQuaternionIdentityLaws(t *testing.T) {
	for _, q := range testQuaternions {
		assertQuaternion(t, q, Multiply(q, IdentityQuaternion()), "%s * identity", q)
		assertQuaternion(t, q, Multiply(IdentityQuaternion(), q), "identity * %s", q)
	}
}

func TestQuaternionInverseLaw(t *testing.T) {
	for _, q := range testQuaternions {
		assertQuaternion(t, IdentityQuaternion(), Multiply(q, q.Inverse()), "%s * inverse", q)
		assertQuaternion(t, IdentityQuaternion(), Multiply(q.Inverse(), q), "inverse * %s", q)
	}
}

func TestQuaternionNormExtremes(t *testing.T) {
	tiny := NewQuaternion(1e-30, 0, 0, 1e-30)
	assert.InDelta(t, math32.Sqrt(2), tiny.Norm()/1e-30, tolerance)
	assertQuaternion(t, NewQuaternion(math32.Sqrt(0.5), 0, 0, math32.Sqrt(0.5)), tiny.Normalize())
	assert.InDelta(t, 2, NewQuaternion(0, 0, 2e30, 0).Norm()/1e30, tolerance)
}

func TestQuaternionInverseOfUnitIsConjugate(t *testing.T) {
	q := MakeRotateAxisAngleQuaternion(NewVector3(1, 2, 2).Normalize(), 1.3)
	assertQuaternion(t, q.Conjugate(), q.Inverse())
}

func TestQuaternionNormalize(t *testing.T) {
	for _, q := range testQuaternions {
		assert.InDelta(t, 1, q.Normalize().Norm(), tolerance, "normalizing %s", q)
	}
}

func TestQuaternionZeroFaults(t *testing.T) {

	err := Try(func() { Quaternion{}.Normalize() })
	require.ErrorIs(t, err, ErrZeroNorm)

	err = Try(func() { Quaternion{}.Inverse() })
	require.ErrorIs(t, err, ErrZeroNorm)
	assert.EqualError(t, err, "Quaternion.Inverse: zero-norm quaternion")

}

func TestQuaternionMultiplyIsNotCommutative(t *testing.T) {

	q1 := Quaternion{2, 3, 4, 1}
	q2 := Quaternion{1, 3, 5, 2}

	assert.Equal(t, Quaternion{8, 3, 16, -29}, Multiply(q1, q2))
	assert.Equal(t, Quaternion{2, 15, 10, -29}, Multiply(q2, q1))
	assert.Equal(t, Multiply(q1, q2), q1.Multiply(q2))

}

func TestQuaternionMultiplyComposesRotations(t *testing.T) {

	// Multiply(second, first) rotates by first, then by second.
	first := MakeRotateAxisAngleQuaternion(VecZ, math32.Pi/2)
	second := MakeRotateAxisAngleQuaternion(VecX, math32.Pi/2)

	v := NewVector3(1, 0, 0)
	assertVector(t, NewVector3(0, 0, 1), RotateVector(v, Multiply(second, first)))
	assertVector(t, RotateVector(RotateVector(v, first), second), RotateVector(v, Multiply(second, first)))

}

func TestMakeRotateAxisAngleQuaternion(t *testing.T) {

	q := MakeRotateAxisAngleQuaternion(VecY, math32.Pi)
	assertQuaternion(t, Quaternion{0, 1, 0, 0}, q)

	axis := NewVector3(1, 0.4, -2).Normalize()
	q = MakeRotateAxisAngleQuaternion(axis, 0.45)
	assert.InDelta(t, 1, q.Norm(), tolerance)
	assertVector(t, axis.Scale(math32.Sin(0.225)), q.Vector())

	err := Try(func() { MakeRotateAxisAngleQuaternion(NewVector3(1, 1, 0), 1) })
	require.ErrorIs(t, err, ErrAxisNotUnit)

}

func TestRotateVector(t *testing.T) {

	cases := []struct {
		axis     Vector3
		angle    float32
		vec      Vector3
		expected Vector3
	}{
		{VecZ, math32.Pi / 2, VecX, VecY},
		{VecY, math32.Pi / 2, VecX, NewVector3(0, 0, -1)},
		{VecX, math32.Pi, NewVector3(0, 1, 1), NewVector3(0, -1, -1)},
		{NewVector3(1, 1, 1).Normalize(), 2 * math32.Pi / 3, VecX, VecY},
		{VecZ, 0, NewVector3(2.1, -1, 0.5), NewVector3(2.1, -1, 0.5)},
	}

	for _, c := range cases {
		q := MakeRotateAxisAngleQuaternion(c.axis, c.angle)
		assertVector(t, c.expected, RotateVector(c.vec, q), "rotating %s around %s by %f", c.vec, c.axis, c.angle)
	}

}

func TestSlerpBoundaries(t *testing.T) {

	q0 := IdentityQuaternion()
	q1 := MakeRotateAxisAngleQuaternion(VecZ, math32.Pi/2)

	assertQuaternion(t, q0, Slerp(q0, q1, 0))
	assertQuaternion(t, q1, Slerp(q0, q1, 1))

	half := Slerp(q0, q1, 0.5)
	assertQuaternion(t, MakeRotateAxisAngleQuaternion(VecZ, math32.Pi/4), half)
	assert.InDelta(t, 1, half.Norm(), tolerance)

	assertQuaternion(t, Slerp(q0, q1, 0.3), q0.Slerp(q1, 0.3))

}

func TestSlerpTakesTheShorterArc(t *testing.T) {

	q0 := IdentityQuaternion()
	q1 := MakeRotateAxisAngleQuaternion(VecZ, math32.Pi/2).Negated()

	require.Less(t, q0.Dot(q1), float32(0))

	// The end result is the flipped q1, and the middle is a 45 degree rotation rather than a 225 degree one.
	assertQuaternion(t, q1.Negated(), Slerp(q0, q1, 1))
	assertQuaternion(t, MakeRotateAxisAngleQuaternion(VecZ, math32.Pi/4), Slerp(q0, q1, 0.5))

}

func TestSlerpOfIdenticalQuaternions(t *testing.T) {

	q := MakeRotateAxisAngleQuaternion(NewVector3(0, 3, 4).Normalize(), 0.7)

	for _, tv := range []float32{0, 0.25, 0.5, 0.75, 1} {
		result := Slerp(q, q, tv)
		assertQuaternion(t, q, result, "t = %f", tv)
		assert.False(t, math32.IsNaN(result.W))
	}

	// q and -q are the same rotation; after the sign flip this is the same degenerate case.
	assertQuaternion(t, q, Slerp(q, q.Negated(), 0.5))

}

func TestSlerpInterpolatesAtConstantSpeed(t *testing.T) {

	axis := NewVector3(1, -1, 2).Normalize()
	q0 := MakeRotateAxisAngleQuaternion(axis, 0.2)
	q1 := MakeRotateAxisAngleQuaternion(axis, 1.4)

	for _, tv := range []float32{0.1, 0.4, 0.9} {
		assertQuaternion(t, MakeRotateAxisAngleQuaternion(axis, 0.2+1.2*tv), Slerp(q0, q1, tv), "t = %f", tv)
	}

}

func BenchmarkSlerp(b *testing.B) {

	b.ReportAllocs()

	q0 := MakeRotateAxisAngleQuaternion(VecY, 0.2)
	q1 := MakeRotateAxisAngleQuaternion(VecX, 2.4)

	for i := 0; i < b.N; i++ {
		Slerp(q0, q1, 0.5)
	}

}
