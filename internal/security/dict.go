package security

import "fmt"

// CryptFilter describes a single named crypt filter entry under /CF,
// used only for V=4 (AES).
type CryptFilter struct {
	// CFM is the crypt filter method: "V2" for RC4 or "AESV2" for AES-128.
	CFM string
	// Length is the effective key length in bytes.
	Length int
	// AuthEvent is always "DocOpen" for the Standard Security Handler.
	AuthEvent string
}

// EncryptionDictionary is the in-memory form of a PDF /Encrypt dictionary
// (ISO 32000-1 §7.6.1, Table 20), independent of how it is eventually
// serialized to a pdfobj.Dictionary.
type EncryptionDictionary struct {
	Filter string
	V      int
	R      int
	Length int // bits

	O []byte
	U []byte
	P int32

	CF              map[string]CryptFilter // nil unless V == 4
	StmF            string                 // "" unless V == 4
	StrF            string                 // "" unless V == 4
	EncryptMetadata bool
}

// revisionParams bundles the V/R/Length/strong/useAES tuple a
// SecurityLevel maps onto, per spec.md §4.8's table.
type revisionParams struct {
	v       int
	r       int
	bits    int
	strong  bool
	useAES  bool
	cfmName string // "" for V1/V2
}

func paramsForLevel(level SecurityLevel) (revisionParams, error) {
	switch level {
	case Rc4_40:
		return revisionParams{v: 1, r: 2, bits: 40, strong: false, useAES: false}, nil
	case Rc4_128:
		return revisionParams{v: 2, r: 3, bits: 128, strong: true, useAES: false}, nil
	case Aes_128:
		return revisionParams{v: 4, r: 4, bits: 128, strong: true, useAES: true, cfmName: "AESV2"}, nil
	default:
		return revisionParams{}, fmt.Errorf("%w: unknown security level %v", ErrUnsupportedRevision, level)
	}
}

// PrepareEncryption implements Algorithms 2, 3 and 4/5 end to end (spec.md §4.8):
// given a target security level, a password pair, a permissions word, and
// the document's first /ID element, it normalizes the permission bits,
// derives O, the file key, and U, and returns a populated
// EncryptionDictionary plus the file key for immediate use by the caller
// (e.g. to arm a Session without re-deriving it).
//
// An empty owner password is accepted and substitutes the user password
// (step 2); an empty user password is left as the empty string, matching
// the common convention of "open password not required". If both are
// empty, both pad to the fixed padding string and the empty password opens
// the document with owner permissions, so it is only nominally protected.
func PrepareEncryption(level SecurityLevel, passwords Passwords, perms Permission, fileID []byte, encryptMetadata bool) (*EncryptionDictionary, []byte, error) {
	params, err := paramsForLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if len(fileID) == 0 {
		return nil, nil, ErrMissingDocumentID
	}

	keyLenBytes := keyLengthBytes(params.bits)

	p := perms.normalize(params.strong)

	userPassword := []byte(passwords.User)
	ownerPassword := []byte(passwords.Owner)

	ownerKey := deriveOwnerKey(ownerPassword, userPassword, params.r, keyLenBytes)
	fileKey := deriveFileKey(userPassword, ownerKey, p, fileID, params.r, keyLenBytes)

	var userKey []byte
	if params.r == 2 {
		userKey = deriveUserKeyR2(fileKey)
	} else {
		userKey = deriveUserKeyR34(fileKey, fileID)
	}

	dict := &EncryptionDictionary{
		Filter:          "Standard",
		V:               params.v,
		R:               params.r,
		Length:          params.bits,
		O:               ownerKey,
		U:               userKey,
		P:               p,
		EncryptMetadata: encryptMetadata,
	}

	if params.v == 4 {
		dict.CF = map[string]CryptFilter{
			"StdCF": {CFM: params.cfmName, Length: keyLenBytes, AuthEvent: "DocOpen"},
		}
		dict.StmF = "StdCF"
		dict.StrF = "StdCF"
	}

	return dict, fileKey, nil
}

// revisionInfo reports the key length in bytes and the "strong" flag the
// validator and permission normalizer need, derived from a parsed
// EncryptionDictionary rather than a SecurityLevel the caller chose.
func revisionInfo(dict *EncryptionDictionary) (keyLenBytes int, strong bool, useAES bool, err error) {
	if dict.Filter != "Standard" {
		return 0, false, false, fmt.Errorf("%w: filter %q", ErrUnknownEncryption, dict.Filter)
	}
	if dict.V < 1 || dict.V > 4 {
		return 0, false, false, fmt.Errorf("%w: V=%d", ErrUnknownEncryption, dict.V)
	}
	if dict.R < 2 || dict.R > 4 {
		return 0, false, false, fmt.Errorf("%w: R=%d", ErrUnsupportedRevision, dict.R)
	}

	strong = dict.R >= 3

	switch dict.R {
	case 2:
		return 5, false, false, nil
	case 3:
		return keyLengthBytes(dict.Length), true, false, nil
	case 4:
		cf, ok := dict.CF["StdCF"]
		if !ok || dict.StmF != "StdCF" || dict.StrF != "StdCF" || cf.AuthEvent != "DocOpen" {
			return 0, false, false, fmt.Errorf("%w: missing or malformed /StdCF", ErrUnsupportedCryptFilter)
		}
		switch cf.CFM {
		case "V2":
			return cf.Length, true, false, nil
		case "AESV2":
			return cf.Length, true, true, nil
		default:
			return 0, false, false, fmt.Errorf("%w: CFM=%q", ErrUnsupportedCryptFilter, cf.CFM)
		}
	default:
		return 0, false, false, fmt.Errorf("%w: R=%d", ErrUnsupportedRevision, dict.R)
	}
}
