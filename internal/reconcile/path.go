package reconcile

import (
	"strconv"
	"strings"
)

// Separator joins path segments in the dotted form of a Path
const Separator = "."

// Path addresses a node by the keys leading to it from the root. Segments
// are kept apart, so a key that itself contains a dot stays unambiguous;
// only the dotted String form loses that distinction.
type Path []string

// ParsePath splits a dotted path into segments
func ParsePath(dotted string) Path {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, Separator)
}

// String returns the dotted form of the path
func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Child returns a new path extended by key. The receiver is not modified.
func (p Path) Child(key string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = key
	return child
}

// id encodes the segments with length prefixes so that no two distinct
// paths share an id.
func (p Path) id() string {
	var b strings.Builder
	for _, seg := range p {
		b.WriteString(strconv.Itoa(len(seg)))
		b.WriteByte(':')
		b.WriteString(seg)
	}
	return b.String()
}
