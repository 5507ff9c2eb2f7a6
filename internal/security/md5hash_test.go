package security

import (
	"crypto/md5"
	"testing"
)

func TestMD5Hasher_MatchesOneShot(t *testing.T) {
	h := newMD5Hasher()
	h.Update([]byte("hello "))
	h.Update([]byte("world"))
	got := h.Finalize()

	want := md5.Sum([]byte("hello world"))
	if got != want {
		t.Fatalf("incremental MD5 = %x, want %x", got, want)
	}
}

func TestMD5Hasher_Reset(t *testing.T) {
	h := newMD5Hasher()
	h.Update([]byte("first"))
	h.Reset()
	h.Update([]byte("second"))

	got := h.Finalize()
	want := md5.Sum([]byte("second"))
	if got != want {
		t.Fatalf("MD5 after reset = %x, want %x", got, want)
	}
}

func TestMD5Sum(t *testing.T) {
	got := md5Sum([]byte("abc"))
	want := md5.Sum([]byte("abc"))
	if got != want {
		t.Fatalf("md5Sum() = %x, want %x", got, want)
	}
}
