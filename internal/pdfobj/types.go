package pdfobj

import (
	"bytes"
	"fmt"
	"strings"
)

// ============================================================================
// String
// ============================================================================

// String represents a PDF literal string object: the payload the crypt
// driver encrypts or decrypts in place.
type String struct {
	value []byte
}

// NewString creates a new String object.
func NewString(value string) *String {
	return &String{value: []byte(value)}
}

// Value returns the string value as a Go string.
func (s *String) Value() string {
	return string(s.value)
}

// Bytes returns the raw bytes.
func (s *String) Bytes() []byte {
	return s.value
}

// SetBytes replaces the raw byte payload in place.
//
// Used by the crypt driver to swap a string's plaintext and
// ciphertext forms without constructing a new object graph node.
func (s *String) SetBytes(value []byte) {
	s.value = value
}

// String returns the string representation, for debugging.
// Not a PDF byte serialization.
func (s *String) String() string {
	return fmt.Sprintf("(%s)", s.escapeLiteral())
}

// escapeLiteral escapes special characters in literal strings.
func (s *String) escapeLiteral() string {
	var buf bytes.Buffer
	for _, b := range s.value {
		switch b {
		case '\\', '(', ')':
			buf.WriteByte('\\')
			buf.WriteByte(b)
		case '\n':
			buf.WriteString("\\n")
		case '\r':
			buf.WriteString("\\r")
		case '\t':
			buf.WriteString("\\t")
		default:
			buf.WriteByte(b)
		}
	}
	return buf.String()
}

// ============================================================================
// Name
// ============================================================================

// Name represents a PDF name object.
// Names are unique identifiers and always start with '/'.
type Name struct {
	value string
}

// NewName creates a new Name object.
// A leading '/' in value is stripped; String adds it back.
func NewName(value string) *Name {
	value = strings.TrimPrefix(value, "/")
	return &Name{value: value}
}

// Value returns the name without the leading '/'.
func (n *Name) Value() string {
	return n.value
}

// String returns the name with leading '/', for debugging. Not a PDF
// byte serialization.
func (n *Name) String() string {
	return "/" + n.escape()
}

// escape escapes special characters in names.
// Characters outside 33-126 (! to ~), '#', and the delimiters / ( ) < > [ ] { } %
// are written as #XX.
//
//nolint:cyclop // Multiple characters need escaping
func (n *Name) escape() string {
	var buf bytes.Buffer
	for _, r := range n.value {
		if r < 33 || r > 126 || r == '#' || r == '/' || r == '(' || r == ')' ||
			r == '<' || r == '>' || r == '[' || r == ']' || r == '{' || r == '}' ||
			r == '%' {
			fmt.Fprintf(&buf, "#%02X", r)
		} else {
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
