package security

import "crypto/md5" //nolint:gosec // MD5 required by PDF Standard Security Handler

// md5Hasher is the incremental MD5 primitive used throughout key
// derivation: init, repeated update, and finalize to a 16-byte digest.
//
// It wraps crypto/md5's hash.Hash, which already provides exactly this
// Write/Sum/Reset incremental contract (no third-party MD5 implementation
// appears anywhere in the reference corpus, and the PDF spec calls for
// plain MD5, not a vendor variant — see DESIGN.md).
type md5Hasher struct {
	h md5HashState
}

// md5HashState is the subset of hash.Hash the hasher needs; kept as an
// interface so tests can substitute a fake without depending on
// crypto/md5 internals.
type md5HashState interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
	Reset()
}

// newMD5Hasher starts a fresh MD5 hash.
func newMD5Hasher() *md5Hasher {
	return &md5Hasher{h: md5.New()}
}

// Update feeds another block of bytes into the hash. Blocks may be
// arbitrarily segmented; the digest only depends on their concatenation.
func (m *md5Hasher) Update(p []byte) *md5Hasher {
	m.h.Write(p) //nolint:errcheck // hash.Hash.Write never fails
	return m
}

// Finalize returns the 16-byte MD5 digest of everything written so far
// without resetting the hasher.
func (m *md5Hasher) Finalize() [16]byte {
	var digest [16]byte
	copy(digest[:], m.h.Sum(nil))
	return digest
}

// Reset clears the hasher for reuse, equivalent to starting a new hash.
func (m *md5Hasher) Reset() {
	m.h.Reset()
}

// md5Sum is the one-shot form: hash a single byte slice to a digest.
func md5Sum(p []byte) [16]byte {
	return md5.Sum(p) //nolint:gosec // MD5 required by PDF Standard Security Handler
}
