// Package anim defines the core animation primitives shared by every
// simulation and by the pacing loop:
//
//   - [Frame]: one rendered animation frame, one string per row
//   - [Provider]: a simulation that advances in time and renders frames
//   - [Populated]: optional capability exposing the live entity count
//
// # Example
//
//	p, _ := providers.New(providers.Snowy, opts)
//	p.Advance(1.0 / 30)
//	frame := p.Frame()
//
// # Thread Safety
//
// Providers are NOT thread-safe. A provider is owned by exactly one loop.
package anim
