package rc

// EncryptRC5 transforms a two-word block in place using a table of
// RC5TableWords(r) entries. Subkeys are consumed in increasing index order,
// two per round, after the initial whitening additions. With r == 0 the
// whitening additions are the entire transform.
func EncryptRC5[W Word](table []W, r int, blk *[2]W) {
	_, _, _, width := magic[W]()
	a := blk[0] + table[0]
	b := blk[1] + table[1]
	for i := 0; i < r; i++ {
		a = rotl(a^b, uint(b), width) + table[2*i+2]
		b = rotl(b^a, uint(a), width) + table[2*i+3]
	}
	blk[0], blk[1] = a, b
}

// DecryptRC5 is the exact inverse of EncryptRC5: subkeys in decreasing index
// order, rotate/xor/add undone in reverse, whitening subtracted last.
func DecryptRC5[W Word](table []W, r int, blk *[2]W) {
	_, _, _, width := magic[W]()
	a, b := blk[0], blk[1]
	for i := r - 1; i >= 0; i-- {
		b = rotr(b-table[2*i+3], uint(a), width) ^ a
		a = rotr(a-table[2*i+2], uint(b), width) ^ b
	}
	blk[0] = a - table[0]
	blk[1] = b - table[1]
}

// EncryptRC5128 is EncryptRC5 for 128-bit words.
func EncryptRC5128(table []Word128, r int, blk *[2]Word128) {
	a := blk[0].Add(table[0])
	b := blk[1].Add(table[1])
	for i := 0; i < r; i++ {
		a = a.Xor(b).RotL(b.rotAmount()).Add(table[2*i+2])
		b = b.Xor(a).RotL(a.rotAmount()).Add(table[2*i+3])
	}
	blk[0], blk[1] = a, b
}

// DecryptRC5128 is DecryptRC5 for 128-bit words.
func DecryptRC5128(table []Word128, r int, blk *[2]Word128) {
	a, b := blk[0], blk[1]
	for i := r - 1; i >= 0; i-- {
		b = b.Sub(table[2*i+3]).RotR(a.rotAmount()).Xor(a)
		a = a.Sub(table[2*i+2]).RotR(b.rotAmount()).Xor(b)
	}
	blk[0] = a.Sub(table[0])
	blk[1] = b.Sub(table[1])
}
