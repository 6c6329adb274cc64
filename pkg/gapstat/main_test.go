package gapstat_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andrew-torda/gapstat/pkg/gapstat"
	"github.com/andrew-torda/gapstat/pkg/seq/common"
)

const (
	aln1 = `> ref
MA-CDE
> frag1
--ACDE
> frag2
MAAC--
`
	aln2 = `> other
AATT
> other2
A--T
`
)

func wrtAlnTmp(s string, t *testing.T) string {
	t.Helper()
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

// pdfOk says whether a file at least starts like a pdf.
func pdfOk(fname string, t *testing.T) {
	t.Helper()
	b, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal("reading pdf back:", err)
	}
	if len(b) < 4 || string(b[:4]) != "%PDF" {
		t.Fatalf("output does not look like a pdf, got %d bytes", len(b))
	}
}

// TestMymain runs the whole thing on two alignments with a
// breakpoint and checks a pdf comes out.
func TestMymain(t *testing.T) {
	in1 := wrtAlnTmp(aln1, t)
	in2 := wrtAlnTmp(aln2, t)
	outfile := filepath.Join(t.TempDir(), "gaps.pdf")

	flags := &gapstat.CmdFlag{Bpoints: []int{3}}
	if err := gapstat.Mymain(flags, outfile, []string{in1, in2}); err != nil {
		t.Fatal("Mymain:", err)
	}
	pdfOk(outfile, t)
}

// TestMymainNoOverwrite: if the output exists, we must stop before
// reading anything. The input file here does not even exist, so if
// the error mentions it, the order of checks is wrong.
func TestMymainNoOverwrite(t *testing.T) {
	outfile := wrtAlnTmp("not a pdf", t)
	err := gapstat.Mymain(&gapstat.CmdFlag{}, outfile, []string{"no_such_file.fa"})
	if err == nil {
		t.Fatal("expected an error for an existing output file")
	}
	if !strings.Contains(err.Error(), "exists") ||
		strings.Contains(err.Error(), "no_such_file") {
		t.Fatal("output collision must be checked before any input:", err)
	}
}

// TestMymainBadInputs: empty files and ragged alignments kill the
// whole run.
func TestMymainBadInputs(t *testing.T) {
	good := wrtAlnTmp(aln1, t)
	for _, s := range []string{"", "> s1\nACDE\n> s2\nACD\n"} {
		bad := wrtAlnTmp(s, t)
		outfile := filepath.Join(t.TempDir(), "gaps.pdf")
		err := gapstat.Mymain(&gapstat.CmdFlag{}, outfile, []string{good, bad})
		if err == nil {
			t.Fatal("expected a fatal error from a broken input")
		}
		if _, err := os.Stat(outfile); err == nil {
			t.Fatal("no output file should be left after a fatal error")
		}
	}
}

// TestMymainTbl captures stdout and checks the exclusion behaviour
// through the whole pipeline. The reference row of aln1 has a gap at
// column 3, so column 3 must be zeroed unless AllCols is set.
func TestMymainTbl(t *testing.T) {
	in1 := wrtAlnTmp(aln1, t)

	run := func(allcols bool) string {
		outfile := filepath.Join(t.TempDir(), "gaps.pdf")
		saved := os.Stdout
		r, w, err := os.Pipe()
		if err != nil {
			t.Fatal(err)
		}
		os.Stdout = w
		flags := &gapstat.CmdFlag{Tbl: true, AllCols: allcols}
		mainErr := gapstat.Mymain(flags, outfile, []string{in1})
		w.Close()
		os.Stdout = saved
		var b bytes.Buffer
		io.Copy(&b, r)
		r.Close()
		if mainErr != nil {
			t.Fatal("Mymain:", mainErr)
		}
		return b.String()
	}

	wantLine := func(out, line string, want bool) {
		t.Helper()
		if strings.Contains(out, line) != want {
			t.Fatalf("table wrong about \"%s\":\n%s", line, out)
		}
	}
	out := run(false)
	wantLine(out, in1+"\t3\t0\tintermediate", true) // ref gap, squashed
	wantLine(out, in1+"\t5\t1\tlead_trail", true)   // frag2 end-run kept
	out = run(true)
	wantLine(out, in1+"\t3\t1\tintermediate", true) // kept with -a
}
