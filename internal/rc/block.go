package rc

import "crypto/cipher"

// NewRC5 builds a byte-oriented RC5 cipher for the given word width (8, 16,
// 32, 64 or 128 bits) and round count. The key length is taken from the key
// slice. Blocks are two words; words cross the byte boundary little-endian,
// so ciphertext bytes do not depend on the host.
func NewRC5(w, r int, key []byte) (cipher.Block, error) {
	if len(key) > 255 {
		return nil, ErrUnsupportedParams
	}
	switch w {
	case 8:
		return newRC5Block[uint8](w, r, key)
	case 16:
		return newRC5Block[uint16](w, r, key)
	case 32:
		return newRC5Block[uint32](w, r, key)
	case 64:
		return newRC5Block[uint64](w, r, key)
	case 128:
		return newRC5Block128(r, key)
	}
	return nil, ErrUnsupportedParams
}

// NewRC6 is NewRC5 for RC6; blocks are four words.
func NewRC6(w, r int, key []byte) (cipher.Block, error) {
	if len(key) > 255 {
		return nil, ErrUnsupportedParams
	}
	switch w {
	case 8:
		return newRC6Block[uint8](w, r, key)
	case 16:
		return newRC6Block[uint16](w, r, key)
	case 32:
		return newRC6Block[uint32](w, r, key)
	case 64:
		return newRC6Block[uint64](w, r, key)
	case 128:
		return newRC6Block128(r, key)
	}
	return nil, ErrUnsupportedParams
}

func validRounds(r int) bool {
	return r >= 0 && r <= 255 && r%4 == 0
}

type rc5Block[W Word] struct {
	table []W
	r     int
	wb    int
}

func newRC5Block[W Word](w, r int, key []byte) (cipher.Block, error) {
	if !validRounds(r) {
		return nil, ErrUnsupportedParams
	}
	c := &rc5Block[W]{table: make([]W, RC5TableWords(r)), r: r, wb: w / 8}
	if err := Setup(c.table, w, r, len(key), key); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *rc5Block[W]) BlockSize() int { return 2 * c.wb }

func (c *rc5Block[W]) Encrypt(dst, src []byte) {
	blk := [2]W{loadWord[W](src, c.wb), loadWord[W](src[c.wb:], c.wb)}
	EncryptRC5(c.table, c.r, &blk)
	storeWord(dst, blk[0], c.wb)
	storeWord(dst[c.wb:], blk[1], c.wb)
}

func (c *rc5Block[W]) Decrypt(dst, src []byte) {
	blk := [2]W{loadWord[W](src, c.wb), loadWord[W](src[c.wb:], c.wb)}
	DecryptRC5(c.table, c.r, &blk)
	storeWord(dst, blk[0], c.wb)
	storeWord(dst[c.wb:], blk[1], c.wb)
}

type rc6Block[W Word] struct {
	table []W
	r     int
	wb    int
}

func newRC6Block[W Word](w, r int, key []byte) (cipher.Block, error) {
	if !validRounds(r) {
		return nil, ErrUnsupportedParams
	}
	c := &rc6Block[W]{table: make([]W, RC6TableWords(r)), r: r, wb: w / 8}
	if err := Setup(c.table, w, r, len(key), key); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *rc6Block[W]) BlockSize() int { return 4 * c.wb }

func (c *rc6Block[W]) Encrypt(dst, src []byte) {
	var blk [4]W
	for i := range blk {
		blk[i] = loadWord[W](src[i*c.wb:], c.wb)
	}
	EncryptRC6(c.table, c.r, &blk)
	for i := range blk {
		storeWord(dst[i*c.wb:], blk[i], c.wb)
	}
}

func (c *rc6Block[W]) Decrypt(dst, src []byte) {
	var blk [4]W
	for i := range blk {
		blk[i] = loadWord[W](src[i*c.wb:], c.wb)
	}
	DecryptRC6(c.table, c.r, &blk)
	for i := range blk {
		storeWord(dst[i*c.wb:], blk[i], c.wb)
	}
}

type rc5Block128 struct {
	table []Word128
	r     int
}

func newRC5Block128(r int, key []byte) (cipher.Block, error) {
	if !validRounds(r) {
		return nil, ErrUnsupportedParams
	}
	c := &rc5Block128{table: make([]Word128, RC5TableWords(r)), r: r}
	if err := Setup128(c.table, 128, r, len(key), key); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *rc5Block128) BlockSize() int { return 32 }

func (c *rc5Block128) Encrypt(dst, src []byte) {
	blk := [2]Word128{loadWord128(src), loadWord128(src[16:])}
	EncryptRC5128(c.table, c.r, &blk)
	storeWord128(dst, blk[0])
	storeWord128(dst[16:], blk[1])
}

func (c *rc5Block128) Decrypt(dst, src []byte) {
	blk := [2]Word128{loadWord128(src), loadWord128(src[16:])}
	DecryptRC5128(c.table, c.r, &blk)
	storeWord128(dst, blk[0])
	storeWord128(dst[16:], blk[1])
}

type rc6Block128 struct {
	table []Word128
	r     int
}

func newRC6Block128(r int, key []byte) (cipher.Block, error) {
	if !validRounds(r) {
		return nil, ErrUnsupportedParams
	}
	c := &rc6Block128{table: make([]Word128, RC6TableWords(r)), r: r}
	if err := Setup128(c.table, 128, r, len(key), key); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *rc6Block128) BlockSize() int { return 64 }

func (c *rc6Block128) Encrypt(dst, src []byte) {
	var blk [4]Word128
	for i := range blk {
		blk[i] = loadWord128(src[i*16:])
	}
	EncryptRC6128(c.table, c.r, &blk)
	for i := range blk {
		storeWord128(dst[i*16:], blk[i])
	}
}

func (c *rc6Block128) Decrypt(dst, src []byte) {
	var blk [4]Word128
	for i := range blk {
		blk[i] = loadWord128(src[i*16:])
	}
	DecryptRC6128(c.table, c.r, &blk)
	for i := range blk {
		storeWord128(dst[i*16:], blk[i])
	}
}
