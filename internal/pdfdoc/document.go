// Package pdfdoc provides the minimal document aggregate the crypt
// package's object traversal walks.
//
// It is a deliberately small stand-in for a full PDF reader/writer: a
// collection of indirect objects plus the trailer's first /ID element.
// A real PDF document model (parsing bytes, cross-reference tables, page
// trees) is an external collaborator and out of scope here; see
// SPEC_FULL.md §6.
package pdfdoc

import "github.com/coregx/gxpdfcrypt/internal/pdfobj"

// Document is the aggregate root the crypt driver operates on: the
// indirect objects, kept in the order they were added, and the document
// identifier used in key derivation.
//
// Document is not safe for concurrent use; callers should build it, hand
// it to the driver, and discard or rebuild it rather than share it across
// goroutines.
type Document struct {
	objects []*pdfobj.IndirectObject
	id      []byte

	// encryptObjNum is the object number of this document's own /Encrypt
	// dictionary, if any. The object at this number is never encrypted or
	// decrypted by the traversal driver, matching the ISO 32000-1 rule
	// that the security handler's own object carries its key material in
	// the clear.
	encryptObjNum int
	hasEncryptObj bool
}

// New creates an empty document with the given trailer /ID (first
// element). The slice is copied so later mutation by the caller does not
// change the document's identity.
func New(id []byte) *Document {
	idCopy := make([]byte, len(id))
	copy(idCopy, id)
	return &Document{id: idCopy}
}

// AddObject appends an indirect object to the document.
func (d *Document) AddObject(obj *pdfobj.IndirectObject) {
	d.objects = append(d.objects, obj)
}

// Objects returns the document's indirect objects. The returned slice
// aliases internal storage; callers must not retain it across further
// mutation of the document.
func (d *Document) Objects() []*pdfobj.IndirectObject {
	return d.objects
}

// FirstID returns the first element of the trailer /ID array.
func (d *Document) FirstID() []byte {
	return d.id
}

// SetEncryptObjectNumber records which object number carries this
// document's /Encrypt dictionary, so the traversal driver can skip it.
func (d *Document) SetEncryptObjectNumber(num int) {
	d.encryptObjNum = num
	d.hasEncryptObj = true
}

// IsSecurityHandlerObject reports whether objNum is this document's own
// /Encrypt dictionary object, which the traversal driver must never
// encrypt or decrypt.
func (d *Document) IsSecurityHandlerObject(objNum int) bool {
	return d.hasEncryptObj && objNum == d.encryptObjNum
}

// IsCrossReferenceStream reports whether obj is a cross-reference stream
// (a Stream whose dictionary's /Type is /XRef). Cross-reference streams
// are exempt from encryption per ISO 32000-1 §7.5.8.2.
func IsCrossReferenceStream(obj pdfobj.PdfObject) bool {
	stream, ok := obj.(*pdfobj.Stream)
	if !ok {
		return false
	}
	typeName := stream.Dictionary().GetName("Type")
	return typeName != nil && typeName.Value() == "XRef"
}
