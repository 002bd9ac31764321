// Package hash provides keyed hashing and verification of secrets.
//
// Two implementations live behind the Hash interface: bcrypt for verifying
// stored passwords, and HMAC-SHA256 for deterministic digests such as the
// OTP code component of a cache key. Determinism matters for the latter: the
// same input must always produce the same digest or key lookups will never
// match the key written at issuance time.
package hash

// Hash hashes a plaintext and verifies a plaintext against a stored hash.
type Hash interface {
	// Hash returns the hashed form of str.
	Hash(str string) ([]byte, error)
	// Verify reports whether str matches hashed.
	Verify(hashed, str string) bool
}
