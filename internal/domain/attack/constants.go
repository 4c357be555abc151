package attack

// AlgorithmRSA is the only algorithm the attack targets.
const AlgorithmRSA = "RSA"

// PaddingOverhead is the minimum PKCS#1 v1.5 encryption framing in bytes:
// the 0x00 0x02 prefix, at least eight non-zero padding bytes and the 0x00
// separator. Messages longer than k-11 bytes do not fit a k-byte modulus.
const PaddingOverhead = 11
