package rc

// EncryptRC6 transforms a four-word block in place using a table of
// RC6TableWords(r) entries. Each round mixes through the quadratic function
// f(x) = rotl(x*(2x+1), log2(width)) and cyclically rotates the four
// registers. With r == 0 only the four whitening additions apply.
func EncryptRC6[W Word](table []W, r int, blk *[4]W) {
	_, _, lgw, width := magic[W]()
	a := blk[0]
	b := blk[1] + table[0]
	c := blk[2]
	d := blk[3] + table[1]
	for i := 0; i < r; i++ {
		t := rotl(b*(2*b+1), lgw, width)
		u := rotl(d*(2*d+1), lgw, width)
		a = rotl(a^t, uint(u), width) + table[2*i+2]
		c = rotl(c^u, uint(t), width) + table[2*i+3]
		a, b, c, d = b, c, d, a
	}
	a += table[2*r+2]
	c += table[2*r+3]
	blk[0], blk[1], blk[2], blk[3] = a, b, c, d
}

// DecryptRC6 is the exact inverse of EncryptRC6: closing additions undone
// first, then each round unrotates the registers before inverting the two
// mixing steps, subkeys consumed in decreasing index order.
func DecryptRC6[W Word](table []W, r int, blk *[4]W) {
	_, _, lgw, width := magic[W]()
	a, b, c, d := blk[0], blk[1], blk[2], blk[3]
	c -= table[2*r+3]
	a -= table[2*r+2]
	for i := r - 1; i >= 0; i-- {
		a, b, c, d = d, a, b, c
		u := rotl(d*(2*d+1), lgw, width)
		t := rotl(b*(2*b+1), lgw, width)
		c = rotr(c-table[2*i+3], uint(t), width) ^ u
		a = rotr(a-table[2*i+2], uint(u), width) ^ t
	}
	d -= table[1]
	b -= table[0]
	blk[0], blk[1], blk[2], blk[3] = a, b, c, d
}

// quad128 is the RC6 mixing function for 128-bit words.
func quad128(x Word128) Word128 {
	return x.Mul(x.Add(x).Add(Word128{Lo: 1})).RotL(lgw128)
}

// EncryptRC6128 is EncryptRC6 for 128-bit words.
func EncryptRC6128(table []Word128, r int, blk *[4]Word128) {
	a := blk[0]
	b := blk[1].Add(table[0])
	c := blk[2]
	d := blk[3].Add(table[1])
	for i := 0; i < r; i++ {
		t := quad128(b)
		u := quad128(d)
		a = a.Xor(t).RotL(u.rotAmount()).Add(table[2*i+2])
		c = c.Xor(u).RotL(t.rotAmount()).Add(table[2*i+3])
		a, b, c, d = b, c, d, a
	}
	a = a.Add(table[2*r+2])
	c = c.Add(table[2*r+3])
	blk[0], blk[1], blk[2], blk[3] = a, b, c, d
}

// DecryptRC6128 is DecryptRC6 for 128-bit words.
func DecryptRC6128(table []Word128, r int, blk *[4]Word128) {
	a, b, c, d := blk[0], blk[1], blk[2], blk[3]
	c = c.Sub(table[2*r+3])
	a = a.Sub(table[2*r+2])
	for i := r - 1; i >= 0; i-- {
		a, b, c, d = d, a, b, c
		u := quad128(d)
		t := quad128(b)
		c = c.Sub(table[2*i+3]).RotR(t.rotAmount()).Xor(u)
		a = a.Sub(table[2*i+2]).RotR(u.rotAmount()).Xor(t)
	}
	d = d.Sub(table[1])
	b = b.Sub(table[0])
	blk[0], blk[1], blk[2], blk[3] = a, b, c, d
}
