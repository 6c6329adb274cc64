// 14 May 2021
// Count gaps per column of an alignment. Gaps at the ends of a
// sequence are not gaps in the usual sense. They usually mean a
// sequence fragment, so we tally them separately from gaps between
// the first and last real residue.

package gapstat

import (
	"sort"

	"github.com/andrew-torda/gapstat/pkg/seq"
)

// A Segment is a half-open range of columns [From, To). If an
// alignment is a concatenation of domains, each domain is one
// segment and end-gaps are decided within it.
type Segment struct {
	From, To int
}

// GapCount holds the per-column gap tallies for one alignment.
// Internal[i] + LeadTrail[i] can never be more than NSeq.
type GapCount struct {
	Name      string    // where the alignment came from
	NSeq      int       // number of sequences
	Segs      []Segment // covers all columns, in order
	Internal  []int     // gaps between the first and last residue
	LeadTrail []int     // gaps in the runs at either end
}

// MkSegments turns a list of 1-based breakpoints into segments
// covering [0, ncol). Breakpoints are sorted, duplicates removed and
// anything at or beyond the edges of the alignment quietly dropped.
// With no breakpoints, the whole alignment is one segment.
func MkSegments(bpoints []int, ncol int) []Segment {
	bnds := make([]int, 1, len(bpoints)+2)
	for _, b := range bpoints {
		if z := b - 1; z > 0 && z < ncol { // to 0-based, drop edge values
			bnds = append(bnds, z)
		}
	}
	sort.Ints(bnds)
	n := 1
	for i := 1; i < len(bnds); i++ { // squeeze out duplicates
		if bnds[i] != bnds[n-1] {
			bnds[n] = bnds[i]
			n++
		}
	}
	bnds = append(bnds[:n], ncol)

	segs := make([]Segment, len(bnds)-1)
	for i := range segs {
		segs[i] = Segment{From: bnds[i], To: bnds[i+1]}
	}
	return segs
}

// addLeadTrail looks at one row, or the piece of a row within one
// segment, and bumps the counts for every position in the gap run
// anchored at the start or at the end. row holds 1 for a gap, as in
// the matrix from seq.GapMatrix. A row with no residues at all is
// entirely leading and trailing, never internal.
func addLeadTrail(row []float32, cnt []int) {
	f := 0
	for f < len(row) && row[f] == 1 {
		f++
	}
	if f == len(row) { // nothing but gaps
		for i := range cnt {
			cnt[i]++
		}
		return
	}
	l := len(row) - 1
	for row[l] == 1 {
		l--
	}
	for i := 0; i < f; i++ {
		cnt[i]++
	}
	for i := l + 1; i < len(row); i++ {
		cnt[i]++
	}
}

// CountGaps tallies the gaps in an alignment, column by column.
// The end-run classification is done per segment, so a trailing run
// in one domain of a concatenated alignment cannot leak into the
// next domain as a leading run.
func CountGaps(seqgrp *seq.SeqGrp, name string, bpoints []int) *GapCount {
	ncol := seqgrp.GetLen()
	nseq := seqgrp.NSeq()
	segs := MkSegments(bpoints, ncol)
	gapmat := seqgrp.GapMatrix()

	total := make([]int, ncol)
	ltail := make([]int, ncol)
	for irow := 0; irow < nseq; irow++ {
		row := gapmat.Mat[irow]
		for j, v := range row {
			if v == 1 {
				total[j]++
			}
		}
		for _, sg := range segs {
			addLeadTrail(row[sg.From:sg.To], ltail[sg.From:sg.To])
		}
	}
	intnl := total // reuse, total is not wanted afterwards
	for i := range intnl {
		intnl[i] = total[i] - ltail[i]
	}
	return &GapCount{
		Name: name, NSeq: nseq, Segs: segs,
		Internal: intnl, LeadTrail: ltail,
	}
}
