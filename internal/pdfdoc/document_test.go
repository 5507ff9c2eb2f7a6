package pdfdoc

import (
	"bytes"
	"testing"

	"github.com/coregx/gxpdfcrypt/internal/pdfobj"
)

func TestNew_CopiesID(t *testing.T) {
	id := []byte("0123456789abcdef")
	doc := New(id)

	id[0] = 0xFF
	if bytes.Equal(doc.FirstID(), id) {
		t.Fatal("New() did not copy the document ID; mutating the caller's slice changed it")
	}
}

func TestAddObject_Objects(t *testing.T) {
	doc := New([]byte("0123456789abcdef"))
	obj1 := pdfobj.NewIndirectObject(1, 0, pdfobj.NewString("a"))
	obj2 := pdfobj.NewIndirectObject(2, 0, pdfobj.NewString("b"))

	doc.AddObject(obj1)
	doc.AddObject(obj2)

	got := doc.Objects()
	if len(got) != 2 || got[0] != obj1 || got[1] != obj2 {
		t.Fatalf("Objects() = %v, want [obj1, obj2]", got)
	}
}

func TestIsSecurityHandlerObject(t *testing.T) {
	doc := New([]byte("0123456789abcdef"))
	if doc.IsSecurityHandlerObject(5) {
		t.Fatal("IsSecurityHandlerObject() true before SetEncryptObjectNumber was ever called")
	}

	doc.SetEncryptObjectNumber(5)
	if !doc.IsSecurityHandlerObject(5) {
		t.Fatal("IsSecurityHandlerObject(5) = false, want true")
	}
	if doc.IsSecurityHandlerObject(6) {
		t.Fatal("IsSecurityHandlerObject(6) = true, want false")
	}
}

func TestIsCrossReferenceStream(t *testing.T) {
	xrefDict := pdfobj.NewDictionary()
	xrefDict.SetName("Type", "XRef")
	xrefStream := pdfobj.NewStream(xrefDict, []byte("xref data"))

	contentDict := pdfobj.NewDictionary()
	contentStream := pdfobj.NewStream(contentDict, []byte("page content"))

	if !IsCrossReferenceStream(xrefStream) {
		t.Fatal("IsCrossReferenceStream() = false for a /Type /XRef stream, want true")
	}
	if IsCrossReferenceStream(contentStream) {
		t.Fatal("IsCrossReferenceStream() = true for a stream without /Type /XRef, want false")
	}
	if IsCrossReferenceStream(pdfobj.NewString("not a stream")) {
		t.Fatal("IsCrossReferenceStream() = true for a non-stream object, want false")
	}
}
