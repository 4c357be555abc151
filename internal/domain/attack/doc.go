// Package attack defines the domain model for Bleichenbacher's adaptive
// chosen-ciphertext attack against RSA with PKCS#1 v1.5 encryption padding:
// the interval arithmetic driving the plaintext search, the contracts for the
// padding oracle and the recovery service, and the attack's error kinds.
package attack
