// 6 Apr 2020
// seqcalc does simple, common calculations on a set of sequences.
// The functions have to live in this package, since they
// need access to the internals of a sequence

package seq

import (
	"github.com/andrew-torda/matrix"

	. "github.com/andrew-torda/gapstat/pkg/seq/common"
)

// GapMatrix builds the full gap matrix for an alignment.
// gapmat.Mat looks like [number_of_seqs][length_of_seq] with a 1
// wherever a sequence has a gap character ("-" or ".") and 0
// elsewhere. Lowercase residues are not gaps.
// We store it as float32's, since the counts made from it will
// usually be normalised later and plotted as fractions. Inaccuracy
// introduced by working with floats is no problem at the sizes in
// question and we can reuse the matrix machinery used for counting
// symbols elsewhere.
func (seqgrp *SeqGrp) GapMatrix() *matrix.FMatrix2d {
	nrow := seqgrp.NSeq()
	ncol := seqgrp.GetLen()
	gapmat := matrix.NewFMatrix2d(nrow, ncol)
	for i, ss := range seqgrp.seqs {
		for j, c := range ss.GetSeq() {
			if IsGap(c) {
				gapmat.Mat[i][j] = 1
			}
		}
	}
	return gapmat
}
