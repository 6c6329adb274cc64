// 17 May 2021
// Columns can be squashed out of the plots by looking at a reference
// sequence. Lowercase letters and gaps in the reference mark insert
// columns which are usually not interesting.

package gapstat

import (
	. "github.com/andrew-torda/gapstat/pkg/seq/common"
)

// Exclusions builds the set of columns to be suppressed, from a
// reference sequence. We always take the first sequence of an
// alignment as the reference. Very often it really is the reference,
// but if your file is ordered differently, the choice will be wrong
// and you want the option which keeps all columns.
// A column is excluded if the reference has a lowercase letter or a
// gap character there.
func Exclusions(refseq []byte) []bool {
	excl := make([]bool, len(refseq))
	for i, c := range refseq {
		if (c >= 'a' && c <= 'z') || IsGap(c) {
			excl[i] = true
		}
	}
	return excl
}

// Suppress zeroes both tallies at every excluded column, in place.
// Other columns are untouched.
func (gc *GapCount) Suppress(excl []bool) {
	for i, e := range excl {
		if e {
			gc.Internal[i] = 0
			gc.LeadTrail[i] = 0
		}
	}
}
