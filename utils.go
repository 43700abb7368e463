package rotation3d

import "github.com/chewxy/math32"

const (
	// Epsilon is the tolerance used by the Equals functions of Vector3, Quaternion, and Matrix4.
	Epsilon = 1e-4
	// UnitTolerance is how far from 1 the length of an axis may be before it's no longer considered unit-length.
	UnitTolerance = 1e-3
	// antiparallelEpsilon is compared against |cos + 1| to detect opposite directions in DirectionToDirection.
	antiparallelEpsilon = 1e-6
	// slerpEpsilon is the smallest sin(theta) Slerp will divide by.
	slerpEpsilon = 1e-6
)

// ToRadians is a helper function to easily convert degrees to radians (which is what the rotation-oriented functions use).
func ToRadians(degrees float32) float32 {
	return math32.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / math32.Pi * 180
}

func approx(a, b float32) bool {
	return math32.Abs(a-b) <= Epsilon
}

func isUnit(length float32) bool {
	return math32.Abs(length-1) <= UnitTolerance
}
