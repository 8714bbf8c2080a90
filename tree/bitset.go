package tree

// bitset is an append-only bit vector backing the per-cell coarse/leaf
// flags. Cells are only ever appended, never removed, so the set grows one
// word at a time and individual bits flip at most once (leaf to coarse).
type bitset struct {
	words []uint64
	n     int64
}

// append adds one bit at the end of the set.
func (b *bitset) append(v bool) {
	word, bit := b.n/64, uint(b.n%64)
	if word >= int64(len(b.words)) {
		b.words = append(b.words, 0)
	}
	if v {
		b.words[word] |= 1 << bit
	}
	b.n++
}

// appendN adds n zero bits at the end of the set.
func (b *bitset) appendN(n int64) {
	for i := int64(0); i < n; i++ {
		b.append(false)
	}
}

func (b *bitset) get(i int64) bool {
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

func (b *bitset) set(i int64, v bool) {
	if v {
		b.words[i/64] |= 1 << uint(i%64)
	} else {
		b.words[i/64] &^= 1 << uint(i%64)
	}
}

func (b *bitset) len() int64 {
	return b.n
}

// clone returns an independent copy of the packed words.
func (b *bitset) clone() []uint64 {
	out := make([]uint64, len(b.words))
	copy(out, b.words)

	return out
}
