// core/tags/pools.go
package tags

import (
	"bufio"
	"fmt"
	"strings"
)

// LoadPools reads the pools list. Each non-blank, non-comment line is
// "name mid [...]"; order of lines is the order of individuals.
func LoadPools(path string) ([]Individual, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var list []Individual
	seen := make(map[string]int)
	sc := bufio.NewScanner(rc)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, fmt.Errorf("%s:%d: %w: want name and MID, got %d field(s)", path, ln, ErrMalformedPools, len(f))
		}
		if prev, dup := seen[f[0]]; dup {
			return nil, fmt.Errorf("%s:%d: duplicate individual %q (first seen on line %d)", path, ln, f[0], prev)
		}
		seen[f[0]] = ln
		list = append(list, Individual{Index: len(list), Name: f[0], MID: strings.ToUpper(f[1])})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}
