package writers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"
	"testing"

	"radmarkers/internal/output"
)

func TestBuiltinFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "json,jsonl,legacy,tsv,yaml" {
		t.Fatalf("formats = %q", got)
	}
	if !Known("tsv") || Known("fasta") {
		t.Fatalf("Known disagrees with registry")
	}
}

func TestUnknownFormatError(t *testing.T) {
	var b bytes.Buffer
	err := Write("nope-format", &b, output.Report{})
	if err == nil || !strings.Contains(err.Error(), "unknown report format") {
		t.Fatalf("want 'unknown report format' error, got: %v", err)
	}
}

func TestWriteDispatchesTSV(t *testing.T) {
	var b bytes.Buffer
	if err := Write("tsv", &b, output.Report{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if b.String() != output.TSVHeader+"\n" {
		t.Fatalf("unexpected TSV: %q", b.String())
	}
}

func TestIsBrokenPipe(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("boom"), false},
		{syscall.EPIPE, true},
		{fmt.Errorf("flush: %w", syscall.EPIPE), true},
		{io.ErrClosedPipe, true},
		{syscall.ECONNRESET, true},
	}
	for _, c := range cases {
		if got := IsBrokenPipe(c.err); got != c.want {
			t.Errorf("IsBrokenPipe(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestWriteLociJSONL_EmptyReport(t *testing.T) {
	var b bytes.Buffer
	if err := Write("jsonl", &b, output.Report{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected no lines, got %q", b.String())
	}
}
