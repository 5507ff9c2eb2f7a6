package security

import "fmt"

// SecurityLevel selects the target revision and cipher for a new
// encryption session (spec.md §3's SecurityLevel tagged variant).
type SecurityLevel int

const (
	// None performs no encryption; documents are left in the clear.
	None SecurityLevel = iota
	// Rc4_40 is V1/R2, 40-bit RC4.
	Rc4_40
	// Rc4_128 is V2/R3, 128-bit RC4.
	Rc4_128
	// Aes_128 is V4/R4, 128-bit AES-CBC via the /StdCF crypt filter.
	Aes_128
)

func (l SecurityLevel) String() string {
	switch l {
	case None:
		return "None"
	case Rc4_40:
		return "Rc4_40"
	case Rc4_128:
		return "Rc4_128"
	case Aes_128:
		return "Aes_128"
	default:
		return fmt.Sprintf("SecurityLevel(%d)", int(l))
	}
}

// Passwords holds the user and owner password pair used to arm or open a
// session. Either may be empty.
type Passwords struct {
	User  string
	Owner string
}

// Classification is the three-valued result of validating a password
// against a document (Algorithm 6/7, spec.md §4.4.4).
type Classification int

const (
	// Invalid means the supplied password matched neither owner nor user.
	Invalid Classification = iota
	// UserPassword means the password matched the user password.
	UserPassword
	// OwnerPassword means the password matched the owner password.
	OwnerPassword
)

func (c Classification) String() string {
	switch c {
	case Invalid:
		return "Invalid"
	case UserPassword:
		return "UserPassword"
	case OwnerPassword:
		return "OwnerPassword"
	default:
		return fmt.Sprintf("Classification(%d)", int(c))
	}
}

// Session is the armed Standard Security Handler state for one document:
// the derived file key, the cipher in use, and the current per-object
// key installed by SetHashKey. It is not safe for concurrent use (spec.md
// §5): construct one Session per document and confine it to one
// goroutine.
type Session struct {
	fileKey []byte
	useAES  bool

	hasOwnerPermissions bool

	objectKey []byte
	haveKey   bool
}

// NewSession arms a session directly from a file key already derived by
// PrepareEncryption, for the write path where the key is computed once
// and handed off immediately.
func NewSession(fileKey []byte, useAES bool, hasOwnerPermissions bool) *Session {
	key := make([]byte, len(fileKey))
	copy(key, fileKey)
	return &Session{fileKey: key, useAES: useAES, hasOwnerPermissions: hasOwnerPermissions}
}

// OpenSession validates a candidate password against a parsed
// EncryptionDictionary (Algorithm 6/7) and, on success, returns an armed
// Session ready to decrypt the document.
//
// Per spec.md §4.7, structural problems (unknown filter, unsupported
// revision or crypt filter) are reported as errors; a password that
// simply does not match is reported as Classification Invalid, not an
// error.
func OpenSession(dict *EncryptionDictionary, fileID []byte, input string) (*Session, Classification, error) {
	keyLenBytes, strong, useAES, err := revisionInfo(dict)
	if err != nil {
		return nil, Invalid, err
	}
	if len(fileID) == 0 {
		return nil, Invalid, ErrMissingDocumentID
	}

	candidate := []byte(input)

	// Try as owner password: recover the user password Algorithm 3 would
	// have encrypted, then derive the file key from it.
	recoveredUser := recoverUserPasswordFromOwner(candidate, dict.O, dict.R, keyLenBytes, strong)
	if fileKey, ok := tryFileKey(recoveredUser, dict, keyLenBytes, strong, fileID); ok {
		return NewSession(fileKey, useAES, true), OwnerPassword, nil
	}

	// Try as user password directly.
	if fileKey, ok := tryFileKey(padPassword(candidate), dict, keyLenBytes, strong, fileID); ok {
		return NewSession(fileKey, useAES, false), UserPassword, nil
	}

	return nil, Invalid, nil
}

// recoverUserPasswordFromOwner inverts Algorithm 3's RC4 chain over the
// stored O using candidateOwner as a guessed owner password, recovering
// what would have been the padded user password.
func recoverUserPasswordFromOwner(candidateOwner, storedO []byte, revision, keyLenBytes int, strong bool) []byte {
	h := newMD5Hasher()
	h.Update(padPassword(candidateOwner))
	digest := h.Finalize()

	rc4Key := digest[:]
	if revision >= 3 {
		for i := 0; i < 50; i++ {
			sum := md5Sum(rc4Key[:])
			rc4Key = sum[:]
		}
	}
	key := rc4Key[:keyLenBytes]

	result := storedO
	if strong {
		for round := byte(19); ; round-- {
			result = rc4(xorKeyByte(key, round), result)
			if round == 0 {
				break
			}
		}
	} else {
		result = rc4(key, result)
	}
	return result[:32]
}

// tryFileKey derives a file key from paddedUserPassword (32 bytes) and
// reports whether the resulting computed U matches the stored U.
func tryFileKey(paddedUserPassword []byte, dict *EncryptionDictionary, keyLenBytes int, strong bool, fileID []byte) ([]byte, bool) {
	// deriveFileKey pads its password argument itself, but padPassword is
	// idempotent on an already-32-byte input, so passing the padded form
	// straight through is safe.
	fileKey := deriveFileKey(paddedUserPassword, dict.O, dict.P, fileID, dict.R, keyLenBytes)

	var computedU []byte
	if dict.R == 2 {
		computedU = deriveUserKeyR2(fileKey)
	} else {
		computedU = deriveUserKeyR34(fileKey, fileID)
	}

	compareLen := 32
	if strong {
		compareLen = 16
	}
	if len(dict.U) < compareLen || len(computedU) < compareLen {
		return nil, false
	}
	for i := 0; i < compareLen; i++ {
		if dict.U[i] != computedU[i] {
			return nil, false
		}
	}
	return fileKey, true
}

// HasOwnerPermissions reports whether this session was opened with the
// owner password (granting all permissions regardless of /P).
func (s *Session) HasOwnerPermissions() bool {
	return s.hasOwnerPermissions
}

// SetHashKey installs the per-object key for (objNum, gen), per Algorithm
// 1. It must be called before EncryptBytes or DecryptBytes for that
// object.
func (s *Session) SetHashKey(objNum, gen int) {
	s.objectKey = deriveObjectKey(s.fileKey, objNum, gen, s.useAES)
	s.haveKey = true
}

// EncryptBytes encrypts data with the currently installed per-object key.
// RC4 sessions return a buffer the same length as data; AES sessions
// return IV || ciphertext, at least 16 bytes longer after padding.
func (s *Session) EncryptBytes(data []byte) ([]byte, error) {
	if !s.haveKey {
		return nil, ErrNoPerObjectKey
	}
	if len(data) == 0 {
		return nil, nil
	}
	if s.useAES {
		return aesEncrypt(s.objectKey, data)
	}
	return rc4(s.objectKey, data), nil
}

// DecryptBytes reverses EncryptBytes using the currently installed
// per-object key.
func (s *Session) DecryptBytes(data []byte) ([]byte, error) {
	if !s.haveKey {
		return nil, ErrNoPerObjectKey
	}
	if len(data) == 0 {
		return nil, nil
	}
	if s.useAES {
		return aesDecrypt(s.objectKey, data)
	}
	return rc4(s.objectKey, data), nil
}
