/*
Package prng implements Xorshift32 pseudo-random generator with saveable state.

Generator holds single uint32 state. Every draw advances it with the
13/17/5 xor-shift triple, where the middle shift is arithmetic (sign-extending),
so streams match other implementations of this variant bit for bit.
Same seed always gives same stream, and the state can be saved and restored
at any moment to replay a stream from a checkpoint.

Zero state is a fixed point of the transform. Generator may be seeded or
restored with 0, but every draw from it fails with ErrInvalidState until
a nonzero state is restored.

Generator is not a cryptographic generator, and it is not safe for concurrent use.
Give each goroutine its own Generator, or wrap shared one into Locked.

Source adapts Generator to math/rand.Source64.
*/
package prng
