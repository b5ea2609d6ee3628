// internal/nodeid/address.go
package nodeid

import (
	"slices"
	"strconv"
	"strings"
)

// String renders the address in its canonical dotted form.
func (a Address) String() string {
	var sb strings.Builder
	for i, segment := range a.Path {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(segment.Name)
		if segment.HasIndex() {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(segment.Index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

// IsZero reports whether the address has no segments.
func (a Address) IsZero() bool {
	return len(a.Path) == 0
}

// Equal reports whether both addresses have the same segments.
func (a Address) Equal(other Address) bool {
	return slices.Equal(a.Path, other.Path)
}

// Child returns a new address with one unindexed segment appended. The
// receiver is not modified.
func (a Address) Child(name string) Address {
	path := make([]PathSegment, 0, len(a.Path)+1)
	path = append(path, a.Path...)
	path = append(path, NewPathSegment(name))
	return Address{Path: path}
}

// Split separates the last segment from the rest of the address. It is the
// inverse of Child for connector references such as `probe.Data1`.
func (a Address) Split() (Address, PathSegment, bool) {
	if len(a.Path) < 2 {
		return Address{}, PathSegment{}, false
	}
	last := len(a.Path) - 1
	return Address{Path: slices.Clone(a.Path[:last])}, a.Path[last], true
}
