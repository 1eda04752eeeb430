// Package spatial provides planar and spatial vectors whose components are
// dimensioned quantities, and robot poses built on them.
//
// A Vector2D[T] holds two components of one dimension, so a position vector
// cannot be added to a velocity vector. Products of vectors (Dot, Cross)
// follow the runtime-checked algebra of package units and take the result
// tag as a type argument.
package spatial
