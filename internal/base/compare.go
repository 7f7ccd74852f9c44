package base

// Compare returns -1, 0, or +1 depending on whether a is 'less than', 'equal
// to' or 'greater than' b under some key order. Every ordered Index, Sorted
// Series, and reducer that needs an order (Max, Min, Median) takes
// one of these explicitly rather than assuming K implements some ordering
// interface — the source's type-class instances become explicit parameters.
type Compare[K any] func(a, b K) int

// Equal reports whether a and b are equivalent under the same notion of
// equality Compare[K] uses. For most K, Equal(a,b) == (Compare(a,b) == 0);
// a distinct Equal is only useful when equality is cheaper to test than
// three-way comparison.
type Equal[K any] func(a, b K) bool

// EqualFromCompare derives an Equal from a Compare.
func EqualFromCompare[K any](cmp Compare[K]) Equal[K] {
	return func(a, b K) bool { return cmp(a, b) == 0 }
}

// Hash reduces a key to a 64-bit bucket value for a hash-backed lookup
// structure. Like Compare and Equal, it is an explicit strategy object
// rather than a constraint on K — callers of index.FromUnorderedHashed pick
// the hash that fits their key type (see package index's HashInt/HashString
// helpers).
type Hash[K any] func(k K) uint64
