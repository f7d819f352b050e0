// Package crack recovers a password from a parsed shadow entry by exhaustive
// enumeration.
//
// # Enumeration
//
// [Candidates] yields every string of one length over an [Alphabet] in
// lexicographic alphabet order (aa, ab, …, az, ba, …). An [Engine] hashes each
// candidate with the entry's salt spec and stops at the first one that
// reproduces the stored hash. A [Coordinator] runs the engine for each length
// from the minimum to the maximum and reports an [Outcome].
//
// # Cost
//
// A length-n search over an alphabet of size A evaluates up to A^n
// candidates, and every evaluation runs the full hash function. With the
// default a–z alphabet and a maximum of 7 that is 26^7 ≈ 8·10⁹ sha512crypt
// calls for the last length alone. The maximum length is the only bound on a
// run; use [SpaceSize] to size a search before starting it.
//
// # Parallelism
//
// [WithWorkers] splits each length by first character. The reported
// candidate is the same one a single worker would find: a worker that
// matches in a later partition never overrides a match in an earlier one.
//
//	c, err := crack.NewCoordinator(manager, crack.DefaultConfig(),
//		crack.WithWorkers(runtime.NumCPU()))
//	if err != nil { ... }
//	out, err := c.Run(ctx, desc)
package crack
