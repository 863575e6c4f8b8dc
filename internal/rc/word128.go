package rc

import (
	"encoding/binary"
	"math/bits"
)

// Word128 is an unsigned 128-bit word held as two 64-bit limbs. All
// arithmetic is modulo 2^128 with explicit carry propagation; it backs the
// only word size the generic path cannot express.
type Word128 struct {
	Lo, Hi uint64
}

const lgw128 = 7

var (
	p128 = Word128{Lo: 0xbf7158809cf4f3c7, Hi: 0xb7e151628aed2a6a}
	q128 = Word128{Lo: 0xf39cc0605cedc835, Hi: 0x9e3779b97f4a7c15}
)

func (x Word128) Add(y Word128) Word128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Word128{Lo: lo, Hi: hi}
}

func (x Word128) Sub(y Word128) Word128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Word128{Lo: lo, Hi: hi}
}

// Mul returns the low 128 bits of x*y.
func (x Word128) Mul(y Word128) Word128 {
	hi, lo := bits.Mul64(x.Lo, y.Lo)
	hi += x.Lo*y.Hi + x.Hi*y.Lo
	return Word128{Lo: lo, Hi: hi}
}

func (x Word128) Xor(y Word128) Word128 {
	return Word128{Lo: x.Lo ^ y.Lo, Hi: x.Hi ^ y.Hi}
}

// RotL rotates left by n bits, n taken modulo 128.
func (x Word128) RotL(n uint) Word128 {
	n &= 127
	switch {
	case n == 0:
		return x
	case n < 64:
		return Word128{Lo: x.Lo<<n | x.Hi>>(64-n), Hi: x.Hi<<n | x.Lo>>(64-n)}
	case n == 64:
		return Word128{Lo: x.Hi, Hi: x.Lo}
	default:
		n -= 64
		return Word128{Lo: x.Hi<<n | x.Lo>>(64-n), Hi: x.Lo<<n | x.Hi>>(64-n)}
	}
}

func (x Word128) RotR(n uint) Word128 {
	return x.RotL(128 - (n & 127))
}

// rotAmount extracts the data-dependent rotation amount: a 128-bit value
// modulo 128 is just the low 7 bits of the low limb.
func (x Word128) rotAmount() uint {
	return uint(x.Lo & 127)
}

func loadWord128(b []byte) Word128 {
	return Word128{
		Lo: binary.LittleEndian.Uint64(b),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}
}

func storeWord128(b []byte, x Word128) {
	binary.LittleEndian.PutUint64(b, x.Lo)
	binary.LittleEndian.PutUint64(b[8:], x.Hi)
}
