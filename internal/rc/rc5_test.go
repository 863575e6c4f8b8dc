package rc_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/sem-hub/snake-rc/internal/rc"
)

func TestRC5RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, w := range []int{8, 16, 32, 64, 128} {
		for _, r := range []int{0, 4, 12, 16, 252} {
			key := make([]byte, 16)
			rng.Read(key)
			c, err := rc.NewRC5(w, r, key)
			if err != nil {
				t.Fatalf("rc5-%d/%d: %v", w, r, err)
			}
			for n := 0; n < 20; n++ {
				pt := make([]byte, c.BlockSize())
				rng.Read(pt)
				ct := make([]byte, c.BlockSize())
				back := make([]byte, c.BlockSize())
				c.Encrypt(ct, pt)
				c.Decrypt(back, ct)
				if !bytes.Equal(back, pt) {
					t.Fatalf("rc5-%d/%d: round trip failed", w, r)
				}
			}
		}
	}
}

// With r=0 the transform is pure additive whitening: ct = pt + (S[0], S[1]).
func TestRC5ZeroRoundStructure(t *testing.T) {
	key := seq(16)
	table := make([]uint64, rc.RC5TableWords(0))
	if err := rc.Setup(table, 64, 0, 16, key); err != nil {
		t.Fatal(err)
	}
	blk := [2]uint64{0x0123456789abcdef, 0xfedcba9876543210}
	want := [2]uint64{blk[0] + table[0], blk[1] + table[1]}
	rc.EncryptRC5(table, 0, &blk)
	if blk != want {
		t.Error(
			"Expected zero-round ciphertext to be plaintext plus whitening",
			"actual", blk,
		)
	}
	rc.DecryptRC5(table, 0, &blk)
	if blk != [2]uint64{0x0123456789abcdef, 0xfedcba9876543210} {
		t.Error("Expected zero-round decrypt by simple subtraction")
	}
}

// The byte-level API must agree with the word-level API under little-endian
// packing, which is what makes ciphertext host-independent.
func TestRC5WireFormat(t *testing.T) {
	key := seq(16)
	table := make([]uint32, rc.RC5TableWords(16))
	if err := rc.Setup(table, 32, 16, 16, key); err != nil {
		t.Fatal(err)
	}
	pt := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	blk := [2]uint32{0x04030201, 0x08070605}
	rc.EncryptRC5(table, 16, &blk)
	want := []byte{
		byte(blk[0]), byte(blk[0] >> 8), byte(blk[0] >> 16), byte(blk[0] >> 24),
		byte(blk[1]), byte(blk[1] >> 8), byte(blk[1] >> 16), byte(blk[1] >> 24),
	}

	c, err := rc.NewRC5(32, 16, key)
	if err != nil {
		t.Fatal(err)
	}
	ct := make([]byte, 8)
	c.Encrypt(ct, pt)
	if !bytes.Equal(ct, want) {
		t.Error("Expected little-endian wire format", "actual", ct, "want", want)
	}
}

func TestRC5EncryptInPlace(t *testing.T) {
	c, err := rc.NewRC5(64, 16, seq(16))
	if err != nil {
		t.Fatal(err)
	}
	buf := seq(16)
	c.Encrypt(buf, buf)
	c.Decrypt(buf, buf)
	if !bytes.Equal(buf, seq(16)) {
		t.Error("Expected in-place encrypt/decrypt to round trip")
	}
}
