package mask

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/redact"
)

// String implements fmt.Stringer, rendering m as its ascending member list.
func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	m.Foreach(func(n int) {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&sb, "%d", n)
	})
	sb.WriteByte('}')
	return sb.String()
}

// SafeFormat implements redact.SafeFormatter. A Mask holds only row
// positions, never user data, so it is always safe to print unredacted.
func (m Mask) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(redact.SafeString(m.String()))
}
