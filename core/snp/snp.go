// Package snp aggregates per-base differences between the alleles of a locus
// and turns quality strings into coarse glyphs for the legacy report.
package snp

// Site is a variable position. Bases holds one base per allele, in the order
// the alleles were given.
type Site struct {
	Pos   int // 0-based
	Bases []byte
}

// Sites returns the positions in [0, shortest length) where not every allele
// carries the same base. Fewer than two sequences yield no sites.
func Sites(seqs []string) []Site {
	if len(seqs) < 2 {
		return nil
	}
	n := len(seqs[0])
	for _, s := range seqs[1:] {
		if len(s) < n {
			n = len(s)
		}
	}

	var out []Site
	for i := 0; i < n; i++ {
		ref := seqs[0][i]
		varies := false
		for _, s := range seqs[1:] {
			if s[i] != ref {
				varies = true
				break
			}
		}
		if !varies {
			continue
		}
		b := make([]byte, len(seqs))
		for k, s := range seqs {
			b[k] = s[i]
		}
		out = append(out, Site{Pos: i, Bases: b})
	}
	return out
}

// BestQuality merges quality strings position by position, keeping the
// highest character. The result is as long as the longest input.
func BestQuality(quals []string) string {
	n := 0
	for _, q := range quals {
		if len(q) > n {
			n = len(q)
		}
	}
	if n == 0 {
		return ""
	}
	b := make([]byte, n)
	for _, q := range quals {
		for i := 0; i < len(q); i++ {
			if q[i] > b[i] {
				b[i] = q[i]
			}
		}
	}
	return string(b)
}

// Glyph cutoffs on the Phred scale.
const (
	HighQuality   = 20
	MediumQuality = 10
)

// Glyphs maps each quality character to ' ' (high), '?' (medium) or '!'
// (low) after subtracting offset.
func Glyphs(quality string, offset int) string {
	b := make([]byte, len(quality))
	for i := 0; i < len(quality); i++ {
		switch q := int(quality[i]) - offset; {
		case q >= HighQuality:
			b[i] = ' '
		case q >= MediumQuality:
			b[i] = '?'
		default:
			b[i] = '!'
		}
	}
	return string(b)
}
