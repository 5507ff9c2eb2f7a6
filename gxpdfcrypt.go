// Package gxpdfcrypt provides the public configuration surface over the
// Standard Security Handler core (internal/security, internal/crypt):
// Protect arms a document for encryption and writes its cipher state
// over the object graph; Open validates a password and reverses it.
//
// Grounded on the teacher's creator.EncryptionOptions /
// creator.SecurityLevel naming (the retrieval pack's creator/encryption.go
// referenced a Creator type that was never actually retrieved, so that
// package could not be kept as-is; its public configuration surface is
// re-created here against pdfdoc.Document instead of creator.Creator).
package gxpdfcrypt

import (
	"fmt"

	"github.com/coregx/gxpdfcrypt/internal/crypt"
	"github.com/coregx/gxpdfcrypt/internal/pdfdoc"
	"github.com/coregx/gxpdfcrypt/internal/security"
)

// SecurityLevel re-exports the core's revision/cipher choice so callers
// of this package never need to import internal/security directly.
type SecurityLevel = security.SecurityLevel

// Re-exported SecurityLevel values.
const (
	None    = security.None
	Rc4_40  = security.Rc4_40
	Rc4_128 = security.Rc4_128
	Aes_128 = security.Aes_128
)

// Permission re-exports the core's permission bit-flag type.
type Permission = security.Permission

// Re-exported Permission values.
const (
	PermissionPrint            = security.PermissionPrint
	PermissionModify           = security.PermissionModify
	PermissionCopy             = security.PermissionCopy
	PermissionAnnotate         = security.PermissionAnnotate
	PermissionFillForms        = security.PermissionFillForms
	PermissionExtract          = security.PermissionExtract
	PermissionAssemble         = security.PermissionAssemble
	PermissionPrintHighQuality = security.PermissionPrintHighQuality
	PermissionAll              = security.PermissionAll
	PermissionNone             = security.PermissionNone
)

// Classification re-exports the three-valued password-validation result.
type Classification = security.Classification

// Re-exported Classification values.
const (
	Invalid       = security.Invalid
	UserPassword  = security.UserPassword
	OwnerPassword = security.OwnerPassword
)

// EncryptionOptions configures a call to Protect: the target revision,
// the password pair, the permission word, and whether document metadata
// streams are marked as encrypted (informational only, per spec.md's
// Non-goals).
type EncryptionOptions struct {
	Level           SecurityLevel
	UserPassword    string
	OwnerPassword   string
	Permissions     Permission
	EncryptMetadata bool
}

// Protect arms doc for encryption: it derives the file key and
// encryption dictionary for opts, encrypts every indirect object's
// string and stream payloads in place via the crypt driver, and returns
// the populated EncryptionDictionary for the caller to serialize as the
// document's /Encrypt entry.
//
// Protect does not itself add the returned dictionary to doc's object
// graph; callers that need the traversal to exclude it must first decide
// its object number and call doc.SetEncryptObjectNumber before invoking
// a second pass, or add it to the graph only after Protect returns.
func Protect(doc *pdfdoc.Document, opts EncryptionOptions) (*security.EncryptionDictionary, error) {
	if opts.Level == None {
		return nil, nil
	}

	passwords := security.Passwords{User: opts.UserPassword, Owner: opts.OwnerPassword}
	dict, fileKey, err := security.PrepareEncryption(opts.Level, passwords, opts.Permissions, doc.FirstID(), opts.EncryptMetadata)
	if err != nil {
		return nil, fmt.Errorf("gxpdfcrypt: prepare encryption: %w", err)
	}

	session := security.NewSession(fileKey, opts.Level == Aes_128, true)
	if err := crypt.EncryptDocument(session, doc); err != nil {
		return nil, fmt.Errorf("gxpdfcrypt: encrypt document: %w", err)
	}

	return dict, nil
}

// Open validates password against dict and, if it matches either the
// user or owner password, decrypts every indirect object in doc in
// place. The returned Classification is Invalid (with a nil error) if
// password matches neither; structural problems with dict itself (wrong
// filter, unsupported revision or crypt filter) are returned as errors.
func Open(doc *pdfdoc.Document, dict *security.EncryptionDictionary, password string) (Classification, error) {
	session, classification, err := security.OpenSession(dict, doc.FirstID(), password)
	if err != nil {
		return Invalid, fmt.Errorf("gxpdfcrypt: open session: %w", err)
	}
	if classification == Invalid {
		return Invalid, nil
	}

	if err := crypt.DecryptDocument(session, doc); err != nil {
		return classification, fmt.Errorf("gxpdfcrypt: decrypt document: %w", err)
	}
	return classification, nil
}
