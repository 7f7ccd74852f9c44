// Package mask implements a compact, ordered set of non-negative row
// positions stored as a sequence of 64-bit words, the same physical shape
// as sstable/colblk's Bitmap/BitmapBuilder in the teacher, minus the
// on-disk summary table and encoding machinery this in-memory engine has
// no use for.
package mask

import (
	"math/bits"

	"github.com/colgo/colgo/internal/base"
)

// Mask is an immutable, ordered set of non-negative integers. Published
// Masks are shared freely; construction goes through Builder.
type Mask struct {
	words []uint64
	size  int
}

// Empty is the empty Mask.
var Empty = Mask{}

// Contains reports whether n is a member of m. O(1).
func (m Mask) Contains(n int) bool {
	if n < 0 {
		return false
	}
	w := n >> 6
	if w >= len(m.words) {
		return false
	}
	return m.words[w]&(1<<uint(n&63)) != 0
}

// Size returns the number of members of m — the cached popcount of
// m.words.
func (m Mask) Size() int { return m.size }

// Min returns the smallest member of m, and false if m is empty.
func (m Mask) Min() (int, bool) {
	for w, word := range m.words {
		if word != 0 {
			return w<<6 + bits.TrailingZeros64(word), true
		}
	}
	return 0, false
}

// Max returns the largest member of m, and false if m is empty.
func (m Mask) Max() (int, bool) {
	for w := len(m.words) - 1; w >= 0; w-- {
		if word := m.words[w]; word != 0 {
			return w<<6 + 63 - bits.LeadingZeros64(word), true
		}
	}
	return 0, false
}

// Foreach calls f with every member of m in strictly ascending order.
func (m Mask) Foreach(f func(n int)) {
	for w, word := range m.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			f(w<<6 + bit)
			word &^= 1 << uint(bit)
		}
	}
}

// Filter returns the subset of m's members for which pred returns true.
func (m Mask) Filter(pred func(n int) bool) Mask {
	var b Builder
	m.Foreach(func(n int) {
		if pred(n) {
			b.Add(n)
		}
	})
	return b.Build()
}

// trimmedLen returns the number of words of ws that remain after trimming
// trailing all-zero words, so that two Masks with the same members but
// differently-sized backing arrays compare equal (spec §8 item 3).
func trimmedLen(ws []uint64) int {
	n := len(ws)
	for n > 0 && ws[n-1] == 0 {
		n--
	}
	return n
}

// Union returns the set union of m and other. Its backing array extends to
// the longer of the two inputs.
func (m Mask) Union(other Mask) Mask {
	n := max(len(m.words), len(other.words))
	words := make([]uint64, n)
	size := 0
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(m.words) {
			a = m.words[i]
		}
		if i < len(other.words) {
			b = other.words[i]
		}
		words[i] = a | b
		size += bits.OnesCount64(words[i])
	}
	words = words[:trimmedLen(words)]
	return Mask{words: words, size: size}
}

// Intersect returns the set intersection of m and other. It clips to the
// shorter of the two inputs' backing arrays.
func (m Mask) Intersect(other Mask) Mask {
	n := min(len(m.words), len(other.words))
	words := make([]uint64, n)
	size := 0
	for i := 0; i < n; i++ {
		words[i] = m.words[i] & other.words[i]
		size += bits.OnesCount64(words[i])
	}
	words = words[:trimmedLen(words)]
	return Mask{words: words, size: size}
}

// Difference returns the members of m that are not members of other
// (m -- other). It iterates the left mask only.
func (m Mask) Difference(other Mask) Mask {
	words := make([]uint64, len(m.words))
	size := 0
	for i, w := range m.words {
		var o uint64
		if i < len(other.words) {
			o = other.words[i]
		}
		words[i] = w &^ o
		size += bits.OnesCount64(words[i])
	}
	words = words[:trimmedLen(words)]
	return Mask{words: words, size: size}
}

// Equal reports whether m and other contain exactly the same members,
// regardless of any difference in trailing zero words between their
// backing arrays.
func (m Mask) Equal(other Mask) bool {
	if m.size != other.size {
		return false
	}
	n := max(len(m.words), len(other.words))
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(m.words) {
			a = m.words[i]
		}
		if i < len(other.words) {
			b = other.words[i]
		}
		if a != b {
			return false
		}
	}
	return true
}

// ToSlice returns the members of m in ascending order.
func (m Mask) ToSlice() []int {
	out := make([]int, 0, m.size)
	m.Foreach(func(n int) { out = append(out, n) })
	return out
}

// checkInvariants validates the cached popcount and trimming invariants.
// Gated behind invariants.Enabled by callers; see internal/invariants.
func (m Mask) checkInvariants() {
	got := 0
	for _, w := range m.words {
		got += bits.OnesCount64(w)
	}
	base.AssertTrue(got == m.size, "mask: cached size %d does not match popcount %d", m.size, got)
	base.AssertTrue(len(m.words) == trimmedLen(m.words), "mask: backing array has untrimmed trailing zero words")
}
