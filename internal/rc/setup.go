package rc

// Setup derives the expanded key table for either cipher. The caller
// allocates table with exactly RC5TableWords(r) or RC6TableWords(r) entries;
// the schedule itself is variant-agnostic and only the table length differs.
// w must equal the bit width of W, r and b must lie in [0,255] and r must be
// a multiple of 4, otherwise ErrUnsupportedParams is returned and the table
// is left untouched. key supplies b bytes of key material; b == 0 yields a
// valid, deterministic schedule.
func Setup[W Word](table []W, w, r, b int, key []byte) error {
	p, q, _, width := magic[W]()
	if w != int(width) || b < 0 || b > 255 || r < 0 || r > 255 || r%4 != 0 {
		return ErrUnsupportedParams
	}

	// Pack the key bytes into words, least significant byte first, zero
	// padding the tail. An empty key still gives one zero word.
	wordBytes := int(width) / 8
	lWords := (b + wordBytes - 1) / wordBytes
	if lWords < 1 {
		lWords = 1
	}
	l := make([]W, lWords)
	for i := 0; i < b; i++ {
		l[i/wordBytes] |= W(key[i]) << (uint(i%wordBytes) * 8)
	}

	table[0] = p
	for i := 1; i < len(table); i++ {
		table[i] = table[i-1] + q
	}

	var a, bb W
	iters := len(table)
	if lWords > iters {
		iters = lWords
	}
	i, j := 0, 0
	for k := 0; k < 3*iters; k++ {
		a = rotl(table[i]+a+bb, 3, width)
		table[i] = a
		bb = rotl(l[j]+a+bb, uint(a+bb), width)
		l[j] = bb
		if i++; i == len(table) {
			i = 0
		}
		if j++; j == lWords {
			j = 0
		}
	}
	return nil
}

// Setup128 is Setup for the 128-bit word size.
func Setup128(table []Word128, w, r, b int, key []byte) error {
	if w != 128 || b < 0 || b > 255 || r < 0 || r > 255 || r%4 != 0 {
		return ErrUnsupportedParams
	}

	lWords := (b + 15) / 16
	if lWords < 1 {
		lWords = 1
	}
	l := make([]Word128, lWords)
	for i := 0; i < b; i++ {
		v := uint64(key[i]) << (uint(i%8) * 8)
		if i%16 < 8 {
			l[i/16].Lo |= v
		} else {
			l[i/16].Hi |= v
		}
	}

	table[0] = p128
	for i := 1; i < len(table); i++ {
		table[i] = table[i-1].Add(q128)
	}

	var a, b2 Word128
	iters := len(table)
	if lWords > iters {
		iters = lWords
	}
	i, j := 0, 0
	for k := 0; k < 3*iters; k++ {
		a = table[i].Add(a).Add(b2).RotL(3)
		table[i] = a
		sum := a.Add(b2)
		b2 = l[j].Add(sum).RotL(sum.rotAmount())
		l[j] = b2
		if i++; i == len(table) {
			i = 0
		}
		if j++; j == lWords {
			j = 0
		}
	}
	return nil
}
