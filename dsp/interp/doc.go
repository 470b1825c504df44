// Package interp provides the interpolation primitives used to move signals
// between grids.
//
// Available methods, from cheapest to highest quality:
//
//   - [Linear]:          piecewise-linear interpolation on arbitrary increasing grids
//   - [Uniform.Linear]:  the same on a uniform grid without a search
//   - [Hermite4]:        4-point cubic Hermite kernel
//   - [Uniform.Hermite]: cubic Hermite interpolation on a uniform grid
//
// All grid interpolators hold the first and last value for points outside
// the sampled range.
package interp
