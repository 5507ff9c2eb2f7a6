package security

// rc4Engine is a hand-rolled RC4 stream cipher state: the 256-byte
// permutation plus the two running indices used by the pseudo-random
// generation (PRGA) phase.
//
// crypto/rc4's Cipher is intentionally not used here: its permutation is
// unexported, and property S1 (a fixed key-schedule vector test) needs to
// inspect S directly after key scheduling. Everywhere else in this
// package RC4 is used exactly once per derived key (see Design Note in
// SPEC_FULL.md: "single-use per key schedule"), so a fresh rc4Engine is
// constructed per call rather than reused and reset.
type rc4Engine struct {
	s    [256]byte
	x, y byte
}

// newRC4Engine performs the key-scheduling algorithm (KSA) over key and
// returns an engine ready for the transform phase.
//
//	S[i] = i for i in 0..256
//	j = 0
//	for i in 0..256:
//	    j = (K[i mod L] + S[i] + j) mod 256
//	    swap(S[i], S[j])
func newRC4Engine(key []byte) *rc4Engine {
	e := &rc4Engine{}
	for i := range e.s {
		e.s[i] = byte(i)
	}

	var j byte
	l := len(key)
	for i := 0; i < 256; i++ {
		j += e.s[i] + key[i%l]
		e.s[i], e.s[j] = e.s[j], e.s[i]
	}
	return e
}

// transform runs the pseudo-random generation algorithm (PRGA), XORing
// src with the keystream into dst. dst and src may be the same slice.
//
//	x = y = 0
//	for i in 0..n:
//	    x = (x+1) mod 256
//	    y = (S[x]+y) mod 256
//	    swap(S[x], S[y])
//	    out[i] = in[i] XOR S[(S[x]+S[y]) mod 256]
//
// The permutation is consumed as bytes are produced: calling transform
// again on the same engine continues the keystream rather than restarting
// it, so encryption and decryption of a single logical payload must each
// use their own freshly key-scheduled engine.
func (e *rc4Engine) transform(dst, src []byte) {
	x, y := e.x, e.y
	for i, b := range src {
		x++
		y += e.s[x]
		e.s[x], e.s[y] = e.s[y], e.s[x]
		dst[i] = b ^ e.s[e.s[x]+e.s[y]]
	}
	e.x, e.y = x, y
}

// rc4 encrypts (or, identically, decrypts) data with key using a single
// fresh key schedule. RC4 is an involution: rc4(k, rc4(k, b)) == b.
func rc4(key, data []byte) []byte {
	out := make([]byte, len(data))
	newRC4Engine(key).transform(out, data)
	return out
}

// xorKeyByte returns a copy of key with every byte XORed against value,
// the construction used by Algorithm 3 and Algorithm 5's 20/19-round RC4
// chains (each round re-keys with key[i] ^ iteration).
func xorKeyByte(key []byte, value byte) []byte {
	out := make([]byte, len(key))
	for i, b := range key {
		out[i] = b ^ value
	}
	return out
}
