// core/tags/reader.go
package tags

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ReadStats counts what a tag file yielded and what the filter dropped.
type ReadStats struct {
	Clusters       int // local clusters emitted (non-empty after filtering)
	Records        int // tag records parsed
	Kept           int
	Contaminated   int
	BelowThreshold int
}

// Add accumulates o into s.
func (s *ReadStats) Add(o ReadStats) {
	s.Clusters += o.Clusters
	s.Records += o.Records
	s.Kept += o.Kept
	s.Contaminated += o.Contaminated
	s.BelowThreshold += o.BelowThreshold
}

// StreamClustersCtx scans the tag file at path and calls emit once per local
// cluster, in file order. Records rejected by f are counted, not emitted; a
// cluster left empty by filtering is skipped. Cancellation via ctx is checked
// between lines. A malformed record stops the scan with ErrMalformedRecord.
func StreamClustersCtx(
	ctx context.Context,
	path string,
	f Filter,
	emit func(LocalCluster) error,
) (ReadStats, error) {
	var st ReadStats
	rc, err := openReader(path)
	if err != nil {
		return st, err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var cur []Record
	flush := func() error {
		if len(cur) == 0 {
			return nil
		}
		lc := LocalCluster{Records: cur}
		cur = nil
		st.Clusters++
		return emit(lc)
	}

	ln := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return st, ctx.Err()
		default:
		}
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return st, err
			}
			continue
		}
		switch line[0] {
		case ' ', '\t', '#':
			// paired-end continuation detail or comment
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return st, fmt.Errorf("%s:%d: %w", path, ln, err)
		}
		st.Records++
		switch f.check(rec) {
		case rejectContaminant:
			st.Contaminated++
			continue
		case rejectThreshold:
			st.BelowThreshold++
			continue
		}
		st.Kept++
		cur = append(cur, rec)
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("%s: tag scan: %w", path, err)
	}
	if err := flush(); err != nil {
		return st, err
	}
	return st, nil
}

// ReadClusters collects every local cluster of path in memory.
func ReadClusters(path string, f Filter) ([]LocalCluster, ReadStats, error) {
	var out []LocalCluster
	st, err := StreamClustersCtx(context.Background(), path, f, func(lc LocalCluster) error {
		out = append(out, lc)
		return nil
	})
	return out, st, err
}

// ParseRecord parses "sequence quality reads fragments".
func ParseRecord(line string) (Record, error) {
	fs := strings.Fields(line)
	if len(fs) != 4 {
		return Record{}, fmt.Errorf("%w: want 4 fields (sequence quality reads fragments), got %d", ErrMalformedRecord, len(fs))
	}
	seq := strings.ToUpper(fs[0])
	qual := fs[1]
	if len(qual) != len(seq) {
		return Record{}, fmt.Errorf("%w: quality length %d does not match sequence length %d", ErrMalformedRecord, len(qual), len(seq))
	}
	reads, err := parseCount(fs[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: read count: %v", ErrMalformedRecord, err)
	}
	frags, err := parseCount(fs[3])
	if err != nil {
		return Record{}, fmt.Errorf("%w: fragment count: %v", ErrMalformedRecord, err)
	}
	return Record{Seq: seq, Obs: Observation{Reads: reads, Fragments: frags, Quality: qual}}, nil
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %d", n)
	}
	return n, nil
}
