/*
Package xorshift32 - deterministic Xorshift32 pseudo-random generator with checkpointing.

It is meant for simulations and seeded tests, where the same seed must give
the same stream everywhere, and where a run should be resumable from a saved state.
It is not suitable for cryptography: output is predictable.

Capabilities

- exact Xorshift32 (13/17/5, arithmetic middle shift) stream,

- integers in half-open range [min, max),

- floats in [0, 1],

- save and restore of state as a single uint32,

- math/rand.Source64 adapter,

- hook for custom logging.

Structure

- root package is empty

- generator and helpers are in prng subpackage

Errors

Draws from zero state fail with prng.ErrInvalidState, empty ranges fail with
prng.ErrInvalidRange. Both are *errorx.Error and carry properties
(prng.EKState, prng.EKMin, prng.EKMax) describing the failed call.
Nothing is retried, and failed call never changes state.
*/
package xorshift32
