// Package crypto contains the fixed-size digest every other package
// of porep-go is built on, together with a few helpers to:
// - parse and print digests in their hex text form
// - compare, subtract and XOR digests byte by byte
// - draw random challenges.
// The compression functions that produce digests live in the
// hashers subpackages.
package crypto
