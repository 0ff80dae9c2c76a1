// core/segregation/pattern.go
package segregation

import (
	"sort"
	"strings"

	"radmarkers-core/registry"
)

// Pattern characters.
const (
	Present = '1'
	Absent  = '-'
)

// Pattern returns one character per individual (pools order): Present if the
// individual observed the sequence, Absent otherwise.
func Pattern(obs registry.Observations, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = Absent
		if _, ok := obs[i]; ok {
			b[i] = Present
		}
	}
	return string(b)
}

// Carriers counts the individuals present in p.
func Carriers(p string) int {
	return strings.Count(p, string(Present))
}

// JointKey sorts the patterns of a cluster and joins them with single spaces.
func JointKey(patterns []string) string {
	s := append([]string(nil), patterns...)
	sort.Strings(s)
	return strings.Join(s, " ")
}

// IsMirrored reports whether two distinct patterns in joint are exact
// complements. Only Present counts as presence, so both '-' and '0' read as
// absence.
func IsMirrored(joint string) bool {
	ps := strings.Fields(joint)
	for i, a := range ps {
		for j, b := range ps {
			if i == j || a == b {
				continue
			}
			if complementOf(a, b) {
				return true
			}
		}
	}
	return false
}

func complementOf(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for k := 0; k < len(a); k++ {
		if (a[k] == Present) == (b[k] == Present) {
			return false
		}
	}
	return true
}
