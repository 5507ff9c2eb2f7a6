package pdfobj

import "testing"

func TestStream_NewStream_NilDictionary(t *testing.T) {
	s := NewStream(nil, []byte("payload"))
	if s.Dictionary() == nil {
		t.Fatal("NewStream(nil, ...) should install an empty Dictionary, got nil")
	}
	if string(s.Content()) != "payload" {
		t.Fatalf("Content() = %q, want %q", s.Content(), "payload")
	}
}

func TestStream_SetContent(t *testing.T) {
	s := NewStream(NewDictionary(), []byte("plaintext"))
	s.SetContent([]byte("ciphertext!!"))
	if string(s.Content()) != "ciphertext!!" {
		t.Fatalf("Content() after SetContent = %q, want %q", s.Content(), "ciphertext!!")
	}
}

func TestStream_String(t *testing.T) {
	dict := NewDictionary()
	dict.SetName("Type", "XRef")
	s := NewStream(dict, []byte("abc"))

	got := s.String()
	want := "stream[dict=<</Type /XRef>>, length=3]"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
