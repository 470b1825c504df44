// Package model describes the composite lineshapes as named models with
// parameter hints, so that a fitting framework can bind, bound and seed
// their parameters without knowing the Go signatures.
//
// Models are looked up by name:
//
//	m, err := model.Lookup("magnon")
//	p, err := m.Guess(x, y, false)
//	y, err := m.Eval(x, p)
//
// The package does no optimization; it only maps named parameters onto the
// functions in package lineshape.
package model
