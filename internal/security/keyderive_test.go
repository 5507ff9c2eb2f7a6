package security

import "testing"

func TestKeyLengthBytes(t *testing.T) {
	if got := keyLengthBytes(40); got != 5 {
		t.Errorf("keyLengthBytes(40) = %d, want 5", got)
	}
	if got := keyLengthBytes(128); got != 16 {
		t.Errorf("keyLengthBytes(128) = %d, want 16", got)
	}
}

func TestDeriveOwnerKey_Length(t *testing.T) {
	tests := []struct {
		name        string
		revision    int
		keyLenBytes int
	}{
		{name: "R2", revision: 2, keyLenBytes: 5},
		{name: "R3", revision: 3, keyLenBytes: 16},
		{name: "R4", revision: 4, keyLenBytes: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := deriveOwnerKey([]byte("owner"), []byte("user"), tt.revision, tt.keyLenBytes)
			if len(o) != 32 {
				t.Fatalf("len(O) = %d, want 32", len(o))
			}
		})
	}
}

func TestDeriveOwnerKey_EmptyOwnerSubstitutesUser(t *testing.T) {
	withEmpty := deriveOwnerKey(nil, []byte("user"), 3, 16)
	withUserAsOwner := deriveOwnerKey([]byte("user"), []byte("user"), 3, 16)

	if string(withEmpty) != string(withUserAsOwner) {
		t.Fatal("empty owner password did not substitute the user password")
	}
}

func TestDeriveOwnerKey_Deterministic(t *testing.T) {
	a := deriveOwnerKey([]byte("owner"), []byte("user"), 3, 16)
	b := deriveOwnerKey([]byte("owner"), []byte("user"), 3, 16)
	if string(a) != string(b) {
		t.Fatal("deriveOwnerKey is not deterministic")
	}
}

func TestDeriveFileKey_Length(t *testing.T) {
	o := deriveOwnerKey([]byte("owner"), []byte("user"), 3, 16)
	fileID := []byte("0123456789abcdef")

	fileKey := deriveFileKey([]byte("user"), o, PermissionAll.normalize(true), fileID, 3, 16)
	if len(fileKey) != 16 {
		t.Fatalf("len(fileKey) = %d, want 16", len(fileKey))
	}
}

func TestDeriveFileKey_R2DoesNotIterate(t *testing.T) {
	o := deriveOwnerKey([]byte("owner"), []byte("user"), 2, 5)
	fileID := []byte("0123456789abcdef")
	p := PermissionAll.normalize(false)

	a := deriveFileKey([]byte("user"), o, p, fileID, 2, 5)
	if len(a) != 5 {
		t.Fatalf("len(fileKey) = %d, want 5", len(a))
	}

	h := newMD5Hasher()
	h.Update(padPassword([]byte("user")))
	h.Update(o)
	h.Update(encodeP(p))
	h.Update(fileID)
	single := h.Finalize()
	if string(a) != string(single[:5]) {
		t.Fatalf("fileKey = %x, want %x (first 5 bytes of a single MD5)", a, single[:5])
	}
}

func TestDeriveUserKeyR2_Length(t *testing.T) {
	fileKey := []byte{1, 2, 3, 4, 5}
	u := deriveUserKeyR2(fileKey)
	if len(u) != 32 {
		t.Fatalf("len(U) = %d, want 32", len(u))
	}
}

func TestDeriveUserKeyR34_Length(t *testing.T) {
	fileKey := make([]byte, 16)
	fileID := []byte("0123456789abcdef")
	u := deriveUserKeyR34(fileKey, fileID)
	if len(u) != 32 {
		t.Fatalf("len(U) = %d, want 32", len(u))
	}
}

func TestDeriveUserKeyR34_TailIsZeroFilled(t *testing.T) {
	fileKey := make([]byte, 16)
	fileID := []byte("0123456789abcdef")
	u := deriveUserKeyR34(fileKey, fileID)
	for i := 16; i < 32; i++ {
		if u[i] != 0 {
			t.Fatalf("U[%d] = %#x, want 0", i, u[i])
		}
	}
}
