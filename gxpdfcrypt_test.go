package gxpdfcrypt

import (
	"testing"

	"github.com/coregx/gxpdfcrypt/internal/pdfdoc"
	"github.com/coregx/gxpdfcrypt/internal/pdfobj"
)

func buildTestDocument() *pdfdoc.Document {
	doc := pdfdoc.New([]byte("0123456789abcdef"))

	dict := pdfobj.NewDictionary()
	dict.SetString("Author", "a secret author name")
	doc.AddObject(pdfobj.NewIndirectObject(1, 0, dict))

	return doc
}

func TestProtectOpen_RoundTrip(t *testing.T) {
	levels := []SecurityLevel{Rc4_40, Rc4_128, Aes_128}

	for _, level := range levels {
		doc := buildTestDocument()

		dict, err := Protect(doc, EncryptionOptions{
			Level:           level,
			UserPassword:    "user-pw",
			OwnerPassword:   "owner-pw",
			Permissions:     PermissionAll,
			EncryptMetadata: true,
		})
		if err != nil {
			t.Fatalf("Protect(%v) error = %v", level, err)
		}

		entry := doc.Objects()[0].Object.(*pdfobj.Dictionary)
		if entry.GetString("Author") == "a secret author name" {
			t.Fatalf("Protect(%v) left payload unencrypted", level)
		}

		classification, err := Open(doc, dict, "user-pw")
		if err != nil {
			t.Fatalf("Open(%v) error = %v", level, err)
		}
		if classification != UserPassword {
			t.Fatalf("Open(%v) classification = %v, want UserPassword", level, classification)
		}
		if got := entry.GetString("Author"); got != "a secret author name" {
			t.Fatalf("Open(%v) did not recover payload: got %q", level, got)
		}
	}
}

func TestProtectOpen_InvalidPassword(t *testing.T) {
	doc := buildTestDocument()
	dict, err := Protect(doc, EncryptionOptions{
		Level:        Aes_128,
		UserPassword: "user-pw",
	})
	if err != nil {
		t.Fatalf("Protect() error = %v", err)
	}

	classification, err := Open(doc, dict, "wrong")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if classification != Invalid {
		t.Fatalf("Open() classification = %v, want Invalid", classification)
	}
}

func TestProtect_LevelNoneIsNoOp(t *testing.T) {
	doc := buildTestDocument()
	dict, err := Protect(doc, EncryptionOptions{Level: None})
	if err != nil {
		t.Fatalf("Protect(None) error = %v", err)
	}
	if dict != nil {
		t.Fatal("Protect(None) returned a non-nil dictionary")
	}

	entry := doc.Objects()[0].Object.(*pdfobj.Dictionary)
	if got := entry.GetString("Author"); got != "a secret author name" {
		t.Fatalf("Protect(None) mutated the document: got %q", got)
	}
}
