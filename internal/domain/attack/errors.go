package attack

import "errors"

// ErrMalformedPlaintext indicates a PKCS#1 v1.5 decode failure: the 0x00 0x02
// prefix is missing or no separator byte follows the padding.
var ErrMalformedPlaintext = errors.New("malformed PKCS#1 v1.5 plaintext")

// ErrOracleExhausted indicates a multiplier search ran out of its query or
// retry budget without the oracle accepting any candidate.
var ErrOracleExhausted = errors.New("oracle search budget exhausted")

// ErrNonConvergence indicates the outer attack loop hit its iteration cap
// before the interval set degenerated to a single value.
var ErrNonConvergence = errors.New("attack did not converge")
