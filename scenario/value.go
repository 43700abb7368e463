package scenario

import (
	"github.com/solarlune/rotation3d"
)

// Kind is the type of a Value.
type Kind int

const (
	KindScalar Kind = iota
	KindVector
	KindQuaternion
	KindMatrix
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindQuaternion:
		return "quaternion"
	case KindMatrix:
		return "matrix"
	}
	return "unknown"
}

// Value is one input or result of a Scenario; only the field matching Kind is meaningful.
type Value struct {
	Kind       Kind
	Scalar     float32
	Vector     rotation3d.Vector3
	Quaternion rotation3d.Quaternion
	Matrix     rotation3d.Matrix4
}

func Scalar(s float32) Value {
	return Value{Kind: KindScalar, Scalar: s}
}

func VectorValue(x, y, z float32) Value {
	return Value{Kind: KindVector, Vector: rotation3d.NewVector3(x, y, z)}
}

func QuaternionValue(x, y, z, w float32) Value {
	return Value{Kind: KindQuaternion, Quaternion: rotation3d.NewQuaternion(x, y, z, w)}
}

func MatrixValue(m rotation3d.Matrix4) Value {
	return Value{Kind: KindMatrix, Matrix: m}
}

// Lines returns the Value's numbers the way they're laid out on screen: one line for scalars, vectors, and
// quaternions (x, y, z, w order), four for matrices.
func (v Value) Lines() [][]float32 {
	switch v.Kind {
	case KindVector:
		f := v.Vector.Floats()
		return [][]float32{f[:]}
	case KindQuaternion:
		f := v.Quaternion.Floats()
		return [][]float32{f[:]}
	case KindMatrix:
		lines := make([][]float32, 4)
		for i := range v.Matrix {
			row := v.Matrix[i]
			lines[i] = row[:]
		}
		return lines
	}
	return [][]float32{{v.Scalar}}
}
