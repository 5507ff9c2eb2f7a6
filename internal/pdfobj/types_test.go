package pdfobj

import "testing"

func TestString_Literal(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"simple text", "Hello", "(Hello)"},
		{"with spaces", "Hello World", "(Hello World)"},
		{"empty", "", "()"},
		{"with parentheses", "Hello (World)", "(Hello \\(World\\))"},
		{"with backslash", "Hello\\World", "(Hello\\\\World)"},
		{"with newline", "Hello\nWorld", "(Hello\\nWorld)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewString(tt.value)
			if got := s.Value(); got != tt.value {
				t.Fatalf("Value() = %q, want %q", got, tt.value)
			}
			if got := s.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString_SetBytes(t *testing.T) {
	s := NewString("Hello")
	s.SetBytes([]byte("World"))
	if got := s.Value(); got != "World" {
		t.Fatalf("Value() after SetBytes = %q, want %q", got, "World")
	}
	if got := string(s.Bytes()); got != "World" {
		t.Fatalf("Bytes() after SetBytes = %q, want %q", got, "World")
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"simple name", "Type", "/Type"},
		{"with leading slash", "/Type", "/Type"},
		{"CamelCase", "MediaBox", "/MediaBox"},
		{"with number", "Font1", "/Font1"},
		{"special chars", "A#B", "/A#23B"}, // # becomes #23
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewName(tt.value)

			expectedValue := tt.value
			if expectedValue[0] == '/' {
				expectedValue = expectedValue[1:]
			}
			if got := n.Value(); got != expectedValue {
				t.Fatalf("Value() = %q, want %q", got, expectedValue)
			}
			if got := n.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
