package mlkem

import "errors"

// Sentinel errors surfaced synchronously at the core's boundary, per
// spec.md §7: a single typed failure mode distinguishes parameter
// misuse from infrastructure failure, and parsing failures for the
// (now-implemented) encoding layer get their own sentinel. Nothing is
// logged or retried inside the core.
var (
	// ErrConfig reports an invalid parameter profile (k, eta1, eta2, du,
	// or dv outside the set FIPS 203 defines) or an eta value outside
	// {2, 3} requested of the CBD sampler.
	ErrConfig = errors.New("mlkem: invalid parameter configuration")

	// ErrHashLayer reports a failure reading from the underlying XOF/PRF.
	// crypto/sha3's SHAKE readers are infallible in practice; this
	// sentinel exists so the contract holds if a future build swaps in
	// a hash backend that can fail.
	ErrHashLayer = errors.New("mlkem: hash layer failure")

	// ErrEncoding reports malformed wire-format input to a Parse/Decode
	// function: wrong length, or (for ByteEncode_12 encodings) a
	// coefficient that is not below q.
	ErrEncoding = errors.New("mlkem: invalid encoding")
)
