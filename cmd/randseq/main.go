// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/gapstat/pkg/randseq"
	. "github.com/andrew-torda/gapstat/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs
	var gapfrac, dotfrac, lowfrac float64

	f.Float64Var(&gapfrac, "g", 0.1, "fraction of positions that are \"-\"")
	f.Float64Var(&dotfrac, "d", 0, "fraction of positions that are \".\"")
	f.Float64Var(&lowfrac, "w", 0, "fraction of residues written in lowercase")
	f.BoolVar(&args.MkErr, "e", false, "provoke errors, one sequence gets a different length")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.Usage()

		os.Exit(ExitUsageError)
	}
	args.GapFrac = float32(gapfrac)
	args.DotFrac = float32(dotfrac)
	args.LowFrac = float32(lowfrac)

	fname := f.Args()[0]
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		if ft, err := os.Create(fname); err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		} else {
			defer ft.Close()
			args.Wrtr = ft
		}
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		os.Exit(ExitFailure)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Args()[2], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[2])
		os.Exit(ExitFailure)
	} else {
		args.Len = int(nlen)
	}
	if err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
