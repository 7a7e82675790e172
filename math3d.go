package deckmorph

import "math"

// Vec3 is a 3D vector used for positions, rotations (per-axis radians), and
// box sizes throughout the API.
type Vec3 struct {
	X, Y, Z float64
}

// add returns v + o.
func (v Vec3) add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// scale returns v with every component multiplied by s.
func (v Vec3) scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// lerpVec3 interpolates each component independently.
func lerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
		Z: lerp(a.Z, b.Z, t),
	}
}

// distXZ returns the planar distance between a and b ignoring Y.
func distXZ(a, b Vec3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// rotateX rotates v about the X axis by angle radians.
func rotateX(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// rotateY rotates v about the Y axis by angle radians.
func rotateY(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// rotateZ rotates v about the Z axis by angle radians.
func rotateZ(v Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// rotateXYZ applies the per-axis rotation in X, Y, Z order. This is the
// composition order used for both card orientation and the camera view.
func rotateXYZ(v Vec3, rot Vec3) Vec3 {
	v = rotateX(v, rot.X)
	v = rotateY(v, rot.Y)
	v = rotateZ(v, rot.Z)
	return v
}

// rotateXYZInverse undoes rotateXYZ: negated angles applied in reverse
// axis order Z, Y, X.
func rotateXYZInverse(v Vec3, rot Vec3) Vec3 {
	v = rotateZ(v, -rot.Z)
	v = rotateY(v, -rot.Y)
	v = rotateX(v, -rot.X)
	return v
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
