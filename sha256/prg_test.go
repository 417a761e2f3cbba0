package sha256

import (
	"testing"

	"golang.org/x/crypto/chacha20"
)

// prg returns n deterministic pseudo-random bytes derived from seed.
func prg(t testing.TB, seed byte, n int) []byte {
	t.Helper()

	key := make([]byte, chacha20.KeySize)
	for i := range key {
		key[i] = seed + byte(i)
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		t.Fatalf("chacha20: %v", err)
	}
	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out
}
