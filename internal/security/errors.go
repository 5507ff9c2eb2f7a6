// Package security implements the PDF Standard Security Handler
// (ISO 32000-1 §7.6) at algorithm revisions R2, R3, and R4: 40-bit RC4,
// 128-bit RC4, and 128-bit AES-v2.
//
// The package handles:
//   - Key derivation from user/owner passwords, permissions, and the
//     document identifier.
//   - Password validation, classifying a password as owner, user, or
//     invalid.
//   - Per-object key derivation and the RC4/AES ciphers used to
//     encrypt or decrypt string and stream payloads.
//   - Building the /Encrypt dictionary for a chosen security level.
package security

import "errors"

var (
	// ErrUnknownEncryption is returned when /Filter is not /Standard or
	// /V is outside {1,2,3,4}.
	ErrUnknownEncryption = errors.New("security: unknown encryption filter or version")

	// ErrUnsupportedRevision is returned when /R is outside {2,3,4}.
	ErrUnsupportedRevision = errors.New("security: unsupported standard security handler revision")

	// ErrUnsupportedCryptFilter is returned for R=4 documents whose
	// /StdCF crypt filter method is not V2 or AESV2, or whose AuthEvent
	// is not DocOpen.
	ErrUnsupportedCryptFilter = errors.New("security: unsupported crypt filter")

	// ErrMalformedCiphertext is returned when AES ciphertext is too
	// short, not a block multiple, or carries invalid PKCS#7 padding.
	ErrMalformedCiphertext = errors.New("security: malformed ciphertext")

	// ErrMissingDocumentID is returned when key derivation is attempted
	// without a trailer /ID to bind the keys to.
	ErrMissingDocumentID = errors.New("security: document ID is required")

	// ErrNoPerObjectKey is returned when EncryptBytes/DecryptBytes is
	// called before SetHashKey. Per Design Note in SPEC_FULL.md, this is
	// treated as a programming error in the caller, not a data error.
	ErrNoPerObjectKey = errors.New("security: no per-object key set; call SetHashKey first")
)
