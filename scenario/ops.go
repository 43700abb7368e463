package scenario

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/solarlune/rotation3d"
)

// ErrArgumentKind is returned when a Step's arguments are of the wrong kinds for its operation.
var ErrArgumentKind = errors.New("wrong argument kinds")

type operation struct {
	arity int
	apply func(args []Value) (Value, bool)
}

func kinds(args []Value, want ...Kind) bool {
	for i := range want {
		if args[i].Kind != want[i] {
			return false
		}
	}
	return true
}

// operations maps Step.Op to the rotation3d function it runs. apply returns false when the argument kinds don't fit.
var operations = map[string]operation{

	"identity": {0, func(args []Value) (Value, bool) {
		return Value{Kind: KindQuaternion, Quaternion: rotation3d.IdentityQuaternion()}, true
	}},

	"conjugate": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindQuaternion) {
			return Value{}, false
		}
		return Value{Kind: KindQuaternion, Quaternion: args[0].Quaternion.Conjugate()}, true
	}},

	"inverse": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindQuaternion) {
			return Value{}, false
		}
		return Value{Kind: KindQuaternion, Quaternion: args[0].Quaternion.Inverse()}, true
	}},

	"normalize": {1, func(args []Value) (Value, bool) {
		switch args[0].Kind {
		case KindVector:
			return Value{Kind: KindVector, Vector: args[0].Vector.Normalize()}, true
		case KindQuaternion:
			return Value{Kind: KindQuaternion, Quaternion: args[0].Quaternion.Normalize()}, true
		}
		return Value{}, false
	}},

	"negate": {1, func(args []Value) (Value, bool) {
		switch args[0].Kind {
		case KindScalar:
			return Scalar(-args[0].Scalar), true
		case KindVector:
			return Value{Kind: KindVector, Vector: args[0].Vector.Invert()}, true
		case KindQuaternion:
			return Value{Kind: KindQuaternion, Quaternion: args[0].Quaternion.Negated()}, true
		}
		return Value{}, false
	}},

	"norm": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindQuaternion) {
			return Value{}, false
		}
		return Scalar(args[0].Quaternion.Norm()), true
	}},

	"length": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector) {
			return Value{}, false
		}
		return Scalar(args[0].Vector.Length()), true
	}},

	"dot": {2, func(args []Value) (Value, bool) {
		switch {
		case kinds(args, KindVector, KindVector):
			return Scalar(args[0].Vector.Dot(args[1].Vector)), true
		case kinds(args, KindQuaternion, KindQuaternion):
			return Scalar(args[0].Quaternion.Dot(args[1].Quaternion)), true
		}
		return Value{}, false
	}},

	"cross": {2, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector, KindVector) {
			return Value{}, false
		}
		return Value{Kind: KindVector, Vector: args[0].Vector.Cross(args[1].Vector)}, true
	}},

	"multiply": {2, func(args []Value) (Value, bool) {
		switch {
		case kinds(args, KindQuaternion, KindQuaternion):
			return Value{Kind: KindQuaternion, Quaternion: rotation3d.Multiply(args[0].Quaternion, args[1].Quaternion)}, true
		case kinds(args, KindMatrix, KindMatrix):
			return MatrixValue(args[0].Matrix.Mult(args[1].Matrix)), true
		}
		return Value{}, false
	}},

	"axis_angle_quaternion": {2, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector, KindScalar) {
			return Value{}, false
		}
		return Value{Kind: KindQuaternion, Quaternion: rotation3d.MakeRotateAxisAngleQuaternion(args[0].Vector, args[1].Scalar)}, true
	}},

	"axis_angle_matrix": {2, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector, KindScalar) {
			return Value{}, false
		}
		return MatrixValue(rotation3d.MakeRotateAxisAngle(args[0].Vector, args[1].Scalar)), true
	}},

	"rotate_matrix": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindQuaternion) {
			return Value{}, false
		}
		return MatrixValue(rotation3d.MakeRotateMatrix(args[0].Quaternion)), true
	}},

	"to_quaternion": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindMatrix) {
			return Value{}, false
		}
		return Value{Kind: KindQuaternion, Quaternion: args[0].Matrix.ToQuaternion()}, true
	}},

	"transform": {2, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector, KindMatrix) {
			return Value{}, false
		}
		return Value{Kind: KindVector, Vector: rotation3d.Transform(args[0].Vector, args[1].Matrix)}, true
	}},

	"rotate_vector": {2, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector, KindQuaternion) {
			return Value{}, false
		}
		return Value{Kind: KindVector, Vector: rotation3d.RotateVector(args[0].Vector, args[1].Quaternion)}, true
	}},

	"direction_to_direction": {2, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector, KindVector) {
			return Value{}, false
		}
		return MatrixValue(rotation3d.DirectionToDirection(args[0].Vector, args[1].Vector)), true
	}},

	"slerp": {3, func(args []Value) (Value, bool) {
		if !kinds(args, KindQuaternion, KindQuaternion, KindScalar) {
			return Value{}, false
		}
		return Value{Kind: KindQuaternion, Quaternion: rotation3d.Slerp(args[0].Quaternion, args[1].Quaternion, args[2].Scalar)}, true
	}},

	"rotation_axis": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindQuaternion) {
			return Value{}, false
		}
		return Value{Kind: KindVector, Vector: args[0].Quaternion.ToAxisAngle().Axis}, true
	}},

	"rotation_angle": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindQuaternion) {
			return Value{}, false
		}
		return Scalar(args[0].Quaternion.ToAxisAngle().Angle), true
	}},

	// The axis-angle rotations take any non-zero axis; it's normalized first.
	"rotate_axis_angle": {3, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector, KindVector, KindScalar) {
			return Value{}, false
		}
		aa := rotation3d.NewAxisAngle(args[1].Vector, args[2].Scalar)
		return Value{Kind: KindVector, Vector: aa.RotateVector(args[0].Vector)}, true
	}},

	"unrotate_axis_angle": {3, func(args []Value) (Value, bool) {
		if !kinds(args, KindVector, KindVector, KindScalar) {
			return Value{}, false
		}
		aa := rotation3d.NewAxisAngle(args[1].Vector, args[2].Scalar).Inverted()
		return Value{Kind: KindVector, Vector: aa.RotateVector(args[0].Vector)}, true
	}},

	"radians": {1, func(args []Value) (Value, bool) {
		if !kinds(args, KindScalar) {
			return Value{}, false
		}
		return Scalar(rotation3d.ToRadians(args[0].Scalar)), true
	}},
}

// Operations returns the names of every operation a Step can use, sorted.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// apply runs the named operation, turning rotation3d faults and kind mismatches into errors.
func apply(name string, args []Value) (Value, error) {

	var result Value
	var ok bool

	if err := rotation3d.Try(func() { result, ok = operations[name].apply(args) }); err != nil {
		return Value{}, err
	}

	if !ok {
		argKinds := make([]string, len(args))
		for i, a := range args {
			argKinds[i] = a.Kind.String()
		}
		return Value{}, fmt.Errorf("%s(%s): %w", name, strings.Join(argKinds, ", "), ErrArgumentKind)
	}

	return result, nil

}
