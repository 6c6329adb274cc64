package numseq_test

import (
	"os"
	"testing"

	"github.com/andrew-torda/gapstat/pkg/numseq"
	"github.com/andrew-torda/gapstat/pkg/seq/common"
)

const threeseq = `> s1
ACDEF
> s2
AC-EF
> s3
ACD.F
`

// TestNseq counts sequences both ways and makes sure they agree.
func TestNseq(t *testing.T) {
	fname, err := common.WrtTemp(threeseq)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	for _, f := range []func(string) (int, error){
		numseq.ByMmap, numseq.ByReadFile, numseq.Nseq} {
		if n, err := f(fname); err != nil {
			t.Fatal("counting seqs:", err)
		} else if n != 3 {
			t.Fatalf("wanted 3 seqs, got %d", n)
		}
	}
}

// TestNseqEmpty makes sure an empty file gives zero rather than
// an error. mmap does not like empty files, so this goes down the
// fallback path.
func TestNseqEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	if n, err := numseq.Nseq(fname); err != nil {
		t.Fatal("empty file:", err)
	} else if n != 0 {
		t.Fatalf("empty file gave %d seqs", n)
	}
}
