// Package pdfobj implements the in-memory PDF object model: the narrow
// surface the crypt package's object traversal walks to encrypt or
// decrypt indirect-object payloads.
//
// Only the object kinds the crypt driver and CLI actually exercise are
// modeled here: names, strings, arrays, dictionaries, streams, and
// indirect objects. This package does not parse PDF byte streams into
// these types or serialize a document back to bytes; that belongs to an
// external collaborator. It exists so the crypt package's traversal
// driver and tests have a concrete object graph to walk.
//
// Reference: PDF 1.7 specification, Section 7.3 "Objects"
package pdfobj

// PdfObject is the base interface for all PDF objects reachable during
// traversal. All PDF object kinds modeled by this package implement it.
type PdfObject interface {
	// String returns a string representation of the object, for
	// debugging and logging; it is not a PDF byte serialization.
	String() string
}
