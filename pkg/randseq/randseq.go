// 31 July 2020
// Make random alignments for testing. The content is not important,
// but gaps, dots and white space are, since that is what the reader
// and the gap counting have to cope with.

package randseq

import (
	"fmt"
	"io"
	"math/rand"

	. "github.com/andrew-torda/gapstat/pkg/seq/common"
)

var letters = []byte("ACDEFGHIKLMNPQRSTVWY")

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Wrtr    io.Writer // where we write to
	Cmmt    string    // Comment for the sequences
	Iseed   int64     // random number seed
	Nseq    int       // number of sequences
	Len     int       // Length of sequences
	GapFrac float32   // fraction of positions that are "-"
	DotFrac float32   // fraction of positions that are "."
	LowFrac float32   // fraction of residues written in lowercase
	MkErr   bool      // Add an error, by changing a length
}

// getseq returns a byte slice with one random row in it.
func getseq(args *RandSeqArgs, rnd *rand.Rand, slen int) []byte {
	s := make([]byte, slen)
	for i := range s {
		switch x := rnd.Float32(); {
		case x < args.GapFrac:
			s[i] = GapChar
		case x < args.GapFrac+args.DotFrac:
			s[i] = DotChar
		default:
			c := letters[rnd.Intn(len(letters))]
			if rnd.Float32() < args.LowFrac {
				c += 'a' - 'A'
			}
			s[i] = c
		}
	}
	return s
}

// writeseq writes one row, broken into short lines with a random
// amount of leading white space, since real files have line breaks
// in unpredictable places and the reader must not care.
func writeseq(wrtr io.Writer, s []byte, rnd *rand.Rand) error {
	const lineLen = 60
	for ; len(s) > lineLen; s = s[lineLen:] {
		pad := ""
		if rnd.Intn(4) == 0 {
			pad = " "
		}
		if _, err := fmt.Fprintf(wrtr, "%s%s\n", pad, s[:lineLen]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(wrtr, "%s\n", s)
	return err
}

// RandSeqMain writes a random alignment to an io.Writer. All rows
// are args.Len long, unless MkErr is set, in which case the last row
// gets an extra residue. That is an error for anything expecting an
// alignment.
func RandSeqMain(args *RandSeqArgs) error {
	cmmt := args.Cmmt
	if cmmt == "" {
		cmmt = "randseq"
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	width := len(fmt.Sprintf("%d", args.Nseq))
	for i := 0; i < args.Nseq; i++ {
		slen := args.Len
		if args.MkErr && i == args.Nseq-1 {
			slen++
		}
		if _, err := fmt.Fprintf(args.Wrtr, "> %s %[2]*d\n", cmmt, width, i+1); err != nil {
			return err
		}
		if err := writeseq(args.Wrtr, getseq(args, rnd, slen), rnd); err != nil {
			return err
		}
	}
	return nil
}
