package base

import "github.com/cockroachdb/errors"

// AssertTrue panics with an AssertionFailedf if cond is false. Used for
// documented preconditions such as a Column row holding a value
// (ValueAt), ordered input to Index.Ordered/Group/Cogroup and the ordered
// series Builder, and disjoint masks in column.Dense — per spec, contract
// violations are programmer error and have no recovery path.
func AssertTrue(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.AssertionFailedf(format, args...))
	}
}
