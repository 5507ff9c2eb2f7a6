package pdfobj

import "fmt"

// Stream represents a PDF stream object: a dictionary paired with a raw
// byte payload.
//
// Reference: PDF 1.7 specification, Section 7.3.8 (Stream Objects).
type Stream struct {
	dict    *Dictionary
	content []byte
}

// NewStream creates a new Stream with the given dictionary and content.
func NewStream(dict *Dictionary, content []byte) *Stream {
	if dict == nil {
		dict = NewDictionary()
	}
	return &Stream{dict: dict, content: content}
}

// Dictionary returns the stream's dictionary.
func (s *Stream) Dictionary() *Dictionary {
	return s.dict
}

// Content returns the raw stream content.
func (s *Stream) Content() []byte {
	return s.content
}

// SetContent replaces the stream content in place.
//
// Used by the crypt driver to swap a stream's plaintext and ciphertext
// payloads without constructing a new object graph node.
func (s *Stream) SetContent(content []byte) {
	s.content = content
}

// String returns a string representation of the stream, for debugging.
// Only shows the dictionary and length, not the full content.
func (s *Stream) String() string {
	return fmt.Sprintf("stream[dict=%s, length=%d]", s.dict.String(), len(s.content))
}
