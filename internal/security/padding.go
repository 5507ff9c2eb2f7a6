package security

// padding is the PDF Standard Security Handler's fixed 32-byte padding
// string (ISO 32000-1 §7.6.3.3, Algorithm 2, step a). Short passwords are
// padded with a prefix of this string; passwords of 32 bytes or more are
// truncated to their first 32 bytes instead.
var padding = []byte{
	0x28, 0xBF, 0x4E, 0x5E, 0x4E, 0x75, 0x8A, 0x41,
	0x64, 0x00, 0x4E, 0x56, 0xFF, 0xFA, 0x01, 0x08,
	0x2E, 0x2E, 0x00, 0xB6, 0xD0, 0x68, 0x3E, 0x80,
	0x2F, 0x0C, 0xA9, 0xFE, 0x64, 0x53, 0x69, 0x7A,
}

// padPassword returns the 32-byte padded form of a raw-encoded password.
// Passwords must already be raw bytes (ISO-8859-1 byte-per-code-unit); this
// function performs no text encoding of its own.
func padPassword(password []byte) []byte {
	padded := make([]byte, 32)
	if len(password) >= 32 {
		copy(padded, password[:32])
		return padded
	}
	copy(padded, password)
	copy(padded[len(password):], padding[:32-len(password)])
	return padded
}
