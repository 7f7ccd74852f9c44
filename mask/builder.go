package mask

import "github.com/colgo/colgo/internal/invariants"

// Builder accumulates set membership and produces an immutable Mask. A
// Builder is owned by one caller and is not safe for concurrent use,
// matching the shared-resource policy's builder contract.
type Builder struct {
	words  []uint64
	size   int
	closed invariants.CloseChecker
}

// nextPow2WordCount returns the next power of two number of 64-bit words
// able to hold bit n, matching the source's "grow backing storage by
// doubling to the next power of two of the required word count".
func nextPow2WordCount(requiredWords int) int {
	n := 1
	for n < requiredWords {
		n <<= 1
	}
	return n
}

func (b *Builder) ensureWord(w int) {
	if w < len(b.words) {
		return
	}
	grown := make([]uint64, nextPow2WordCount(w+1))
	copy(grown, b.words)
	b.words = grown
}

// Add inserts n into the set being built. Idempotent.
func (b *Builder) Add(n int) {
	if n < 0 {
		panic("mask: Add called with a negative position")
	}
	w, bit := n>>6, uint(n&63)
	b.ensureWord(w)
	if b.words[w]&(1<<bit) == 0 {
		b.words[w] |= 1 << bit
		b.size++
	}
}

// Remove deletes n from the set being built. Idempotent; a no-op if n was
// never added or is out of the current backing range.
func (b *Builder) Remove(n int) {
	if n < 0 {
		return
	}
	w, bit := n>>6, uint(n&63)
	if w >= len(b.words) {
		return
	}
	if b.words[w]&(1<<bit) != 0 {
		b.words[w] &^= 1 << bit
		b.size--
	}
}

// Reset clears the builder back to empty, retaining its backing array.
func (b *Builder) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
	b.size = 0
}

// Build finalizes the Mask, trimming any trailing all-zero words so that
// Mask.Equal is well-defined regardless of how much the builder
// overallocated.
func (b *Builder) Build() Mask {
	b.closed.Close()
	n := trimmedLen(b.words)
	words := make([]uint64, n)
	copy(words, b.words[:n])
	m := Mask{words: words, size: b.size}
	if invariants.Enabled {
		m.checkInvariants()
	}
	return m
}

// Of builds a Mask directly from a set of member positions; a convenience
// for tests and small literal masks.
func Of(ns ...int) Mask {
	var b Builder
	for _, n := range ns {
		b.Add(n)
	}
	return b.Build()
}
