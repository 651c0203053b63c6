// Package starfield implements the twinkling star field animation.
//
// Stars spawn at random cells, drift between three brightness levels and
// fade out. Two implementations share one behavioral contract:
//
//   - [Field]: record based, one [Star] value per star
//   - [Packed]: struct of arrays, fewer allocations per tick
//
// Both consume random numbers in the same order, so for equal seeds they
// render identical frames. [New] selects one by [Backend]:
//
//	sf, _ := starfield.New(starfield.BackendAuto, 50, 12, starfield.DefaultParams(), rng)
//	sf.Advance(1.0 / 30)
//	lines := sf.Frame()
package starfield
