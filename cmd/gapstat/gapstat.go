// 14 May 2021
// Read up one or more multiple sequence alignments and plot the
// number of gaps per column.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/andrew-torda/gapstat/pkg/gapstat"
	. "github.com/andrew-torda/gapstat/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]),
		"[options] outfile.pdf infile [infile...]")
	long := `The output file must not exist. We refuse to overwrite plots.
Each input file is one alignment in fasta or a2m format.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

// bpList collects breakpoints. The flag can be repeated and each use
// can hold a comma separated list, so "-b 120 -b 240,360" is fine.
type bpList []int

func (b *bpList) String() string {
	ss := make([]string, len(*b))
	for i, v := range *b {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}

func (b *bpList) Set(s string) error {
	for _, piece := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(piece))
		if err != nil {
			return fmt.Errorf("breakpoint \"%s\" is not an integer", piece)
		}
		if n < 1 {
			return fmt.Errorf("breakpoint %d, but positions count from 1", n)
		}
		*b = append(*b, n)
	}
	return nil
}

func main() {
	var flags gapstat.CmdFlag
	var bpoints bpList

	flag.BoolVar(&flags.AllCols, "a", false, "keep all columns, ignore the reference sequence")
	flag.Var(&bpoints, "b", "1-based breakpoints of a concatenated alignment")
	flag.BoolVar(&flags.Tbl, "t", false, "print the counts as a table on stdout")
	flag.BoolVar(&flags.Time, "v", false, "print out timing information")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "need an output file and at least one alignment")
		usage()
		os.Exit(ExitUsageError)
	}
	flags.Bpoints = bpoints
	outfile := flag.Arg(0)
	infiles := flag.Args()[1:]

	if err := gapstat.Mymain(&flags, outfile, infiles); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
