// Package base holds the small set of contracts shared by every layer of
// colgo: explicit comparison/equality/hash strategies (spec's "type-class
// style instances... become explicit parameters"), and the panic convention
// used for contract violations.
package base
