// Package rc implements the RC5 and RC6 block ciphers parameterized over
// word size (8, 16, 32, 64 or 128 bits), round count and key length.
//
// The word-level API (Setup, EncryptRC5, DecryptRC5, EncryptRC6, DecryptRC6
// and their 128-bit counterparts) operates on caller-owned expanded key
// tables and word blocks. The byte-level constructors NewRC5 and NewRC6
// return a crypto/cipher.Block and take care of the little-endian wire
// format, so ciphertext bytes are identical on any host.
//
// Both ciphers were patented and trademarked around the time they were
// invented. The patents are believed expired; the trademarks may not be.
package rc

import (
	"errors"
	"math/bits"
)

// ErrUnsupportedParams is the only error the package reports. It is raised
// by the setup functions when the word width does not match, when rounds or
// key length fall outside [0,255], or when rounds is not a multiple of 4.
var ErrUnsupportedParams = errors.New("rc: unsupported parameters")

// Word covers the word sizes handled by the generic code path. The 128-bit
// size has no native Go representation and is served by Word128 instead.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Expanded key table lengths, in words.
func RC5TableWords(r int) int { return 2*r + 2 }
func RC6TableWords(r int) int { return 2*r + 4 }

// Per-width magic constants. P comes from the fractional binary digits of
// Euler's number, Q from the golden ratio, both rounded to odd. They are
// fixed values, never recomputed.
func magicConsts(width uint) (p, q uint64, lgw uint, ok bool) {
	switch width {
	case 8:
		return 0xb7, 0x9f, 3, true
	case 16:
		return 0xb7e1, 0x9e37, 4, true
	case 32:
		return 0xb7e15163, 0x9e3779b9, 5, true
	case 64:
		return 0xb7e151628aed2a6b, 0x9e3779b97f4a7c15, 6, true
	}
	return 0, 0, 0, false
}

// magic resolves the constants for the instantiated word type.
func magic[W Word]() (p, q W, lgw, width uint) {
	width = uint(bits.OnesCount64(uint64(^W(0))))
	pv, qv, lgw, _ := magicConsts(width)
	return W(pv), W(qv), lgw, width
}

// rotl rotates x left by n bits within a width-bit word. n is reduced
// modulo width, matching the ciphers' data-dependent rotation amounts.
func rotl[W Word](x W, n, width uint) W {
	n %= width
	return x<<n | x>>(width-n)
}

func rotr[W Word](x W, n, width uint) W {
	n %= width
	return x>>n | x<<(width-n)
}

// loadWord reads n bytes of b as one little-endian word.
func loadWord[W Word](b []byte, n int) W {
	var x W
	for i := n - 1; i >= 0; i-- {
		x = x<<8 | W(b[i])
	}
	return x
}

// storeWord writes x into the first n bytes of b, least significant first.
func storeWord[W Word](b []byte, x W, n int) {
	for i := 0; i < n; i++ {
		b[i] = byte(x)
		x >>= 8
	}
}
