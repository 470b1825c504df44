// Package lineshape evaluates spectroscopic lineshapes for curve fitting.
//
// Base shapes ([Lorentzian], [AntisymmetrizedLorentzian], [BoseFactor]) are
// closed-form and evaluated pointwise on whatever grid they are given.
//
// Composite shapes ([Magnon], [ZeroToLinear], [ZeroToQuadratic]) model a
// measurement: the ideal response is built on a dense internal grid planned
// by package grid, convolved with a Gaussian resolution kernel and
// interpolated back onto the caller's grid. [Broaden] exposes that pipeline
// for custom shapes.
//
// All functions are pure and safe for concurrent use. Composite functions
// validate their parameters and grid on entry and never return partial
// results.
package lineshape
