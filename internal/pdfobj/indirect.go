package pdfobj

import "fmt"

// IndirectObject represents an indirect PDF object: an object number, a
// generation number, and the wrapped object.
//
// Reference: PDF 1.7 specification, Section 7.3.10 (Indirect Objects).
type IndirectObject struct {
	Number     int       // Object number
	Generation int       // Generation number
	Object     PdfObject // The actual object
}

// NewIndirectObject creates a new indirect object.
func NewIndirectObject(number, generation int, obj PdfObject) *IndirectObject {
	return &IndirectObject{
		Number:     number,
		Generation: generation,
		Object:     obj,
	}
}

// String returns a string representation of the indirect object, for
// debugging. Not a PDF byte serialization.
func (o *IndirectObject) String() string {
	return fmt.Sprintf("%d %d obj %v endobj", o.Number, o.Generation, o.Object)
}
