package security

// objectKeyExtra is the 4-byte "sAlT" suffix Algorithm 1 mixes in for
// AES-based crypt filters (ISO 32000-1 §7.6.2, Algorithm 1.A, step d).
var objectKeyExtra = []byte{0x73, 0x41, 0x6C, 0x54}

// deriveObjectKey computes the per-object encryption key (Algorithm 1,
// ISO 32000-1 §7.6.2) from the file key and an indirect object's number
// and generation.
//
//	a. start from the file key
//	b. append the low-order 3 bytes of the object number, little-endian
//	c. append the low-order 2 bytes of the generation number, little-endian
//	d. if useAES, append the 4-byte "sAlT" extra
//	e. MD5 the result
//	f. truncate to min(len(fileKey)+5, 16) bytes
//
// Grounded on the teacher's AESEncryptor, which derives a key from the
// password on every call rather than from the file key and object
// identity; that is the central bug this rewrite corrects, since it made
// every object share the same key instead of each indirect object getting
// its own per-SPEC_FULL.md §4.5.
func deriveObjectKey(fileKey []byte, objNum, gen int, useAES bool) []byte {
	h := newMD5Hasher()
	h.Update(fileKey)
	h.Update([]byte{
		byte(objNum),
		byte(objNum >> 8),
		byte(objNum >> 16),
	})
	h.Update([]byte{
		byte(gen),
		byte(gen >> 8),
	})
	if useAES {
		h.Update(objectKeyExtra)
	}

	digest := h.Finalize()

	keyLen := len(fileKey) + 5
	if keyLen > 16 {
		keyLen = 16
	}

	key := make([]byte, keyLen)
	copy(key, digest[:keyLen])
	return key
}
