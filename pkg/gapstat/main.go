// 14 May 2021

package gapstat

import (
	"fmt"
	"os"
	"time"

	"github.com/andrew-torda/gapstat/pkg/numseq"
	"github.com/andrew-torda/gapstat/pkg/seq"
)

type CmdFlag struct {
	Bpoints []int // 1-based concatenation breakpoints, same for all inputs
	AllCols bool  // keep columns the reference sequence would squash out
	Tbl     bool  // print the long format table to stdout
	Time    bool  // do we want to print out run time ?
}

// Mymain is the main function for counting gaps in alignments and
// plotting them. There is no per-file recovery. If any input is
// broken, the whole run stops.
func Mymain(flags *CmdFlag, outfile string, infiles []string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() { // Wrapping in a closure is helpful. Gives the right time.
			fmt.Println("finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}
	// Check before reading anything, so we do not spend minutes on a
	// big alignment and then trash somebody's plot.
	if _, err := os.Stat(outfile); err == nil {
		return fmt.Errorf("output file \"%s\" already exists, will not overwrite", outfile)
	}

	counts := make([]*GapCount, 0, len(infiles))
	for _, fname := range infiles {
		s_opts := &seq.Options{}
		if n, err := numseq.Nseq(fname); err == nil {
			s_opts.ExpectSeq = n
		}
		seqgrp, err := seq.Readfile(fname, s_opts)
		if err != nil {
			return fmt.Errorf("fail reading sequences from %s: %w", fname, err)
		}
		fmt.Fprintf(os.Stderr, "%s: %d sequences with %d columns\n",
			fname, seqgrp.NSeq(), seqgrp.GetLen())

		gc := CountGaps(seqgrp, fname, flags.Bpoints)
		if !flags.AllCols {
			gc.Suppress(Exclusions(seqgrp.SeqSlc()[0].GetSeq()))
		}
		counts = append(counts, gc)
	}

	if flags.Tbl {
		if err := WriteTbl(os.Stdout, counts); err != nil {
			return fmt.Errorf("writing table: %w", err)
		}
	}
	if err := WritePdf(outfile, counts); err != nil {
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	return nil
}
