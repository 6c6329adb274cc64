// 20 Dec 2017

// Package seq reads sequences, which usually begin their lives in
// fasta or a2m format. For gap counting we treat every file as an
// alignment, so unless told otherwise, all sequences in a file must
// have the same length.
package seq

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// seq is one sequence with its comment.
type seq struct {
	cmmt string
	seq  []byte
}

// We only read ascii characters, so anything bigger than this is not
// valid.
const (
	MaxSym uint8 = 127
)

// Options contains all the choices passed in from the caller.
type Options struct {
	ExpectSeq  int  // Expected number of sequences, for preallocation
	DiffLenSeq bool // false, unless we expect sequences to be different lengths
}

// Constants
const cmmt_char byte = '>' // and this introduces comments in fasta format

// SeqGrp is a group of sequences. For an alignment, they are all the
// same length.
type SeqGrp struct {
	seqs []seq
}

// GetSeq returns the sequence as the original byte slice
func (s seq) GetSeq() []byte { return s.seq }

// Cmmt returns the comment, without the leading ">"
func (s seq) Cmmt() string { return s.cmmt }

// Len
func (s seq) Len() int { return len(s.seq) }

// SetSeq will replace whatever was the sequence with a new one
func (s *seq) SetSeq(t []byte) { s.seq = t }

// Empty returns true if a sequence has no residues.
func (s seq) Empty() bool { return len(s.seq) == 0 }

// String returns a sequence, with its comment at the start as
// a single string
func (s seq) String() (t string) {
	if len(s.cmmt) > 0 {
		t = fmt.Sprintf("%c%s\n", cmmt_char, s.Cmmt())
	} else {
		t = ">\n"
	}
	t += string(s.GetSeq())
	return
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// GetLen returns the length of the first sequence. Since we are
// reading multiple sequence alignments, this is the length of all
// sequences, that is, the number of columns.
func (seqgrp *SeqGrp) GetLen() int { return len(seqgrp.seqs[0].GetSeq()) }

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc returns the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []seq { return seqgrp.seqs }

// checkLengths should only be called when sequences are an
// alignment. Then they must all be the same length.
func checkLengths(seq_set []seq) error {
	const msg = `sequence lengths differ. First sequence has %d, but sequence %d has %d. Sequence starts "%s"`
	iwant := len(seq_set[0].GetSeq())
	for i := 1; i < len(seq_set); i++ {
		ilen := len(seq_set[i].GetSeq())
		if ilen != iwant {
			return fmt.Errorf(msg, iwant, i+1, ilen, trimStr(seq_set[i].Cmmt(), 40))
		}
	}
	return nil
}

// Readfile takes a filename and reads sequences from it.
// It returns a SeqGrp and error. An empty filename means
// standard input.
func Readfile(fname string, s_opts *Options) (*SeqGrp, error) {
	var seqgrp = new(SeqGrp)
	var err error
	var fp io.ReadCloser // don't use a file. It could be stdin.

	if fname != "" {
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
	} else {
		fp = os.Stdin
	}

	defer fp.Close()

	if err := ReadFasta(fp, seqgrp, s_opts); err != nil {
		return seqgrp, err
	}

	if !s_opts.DiffLenSeq {
		if err := checkLengths(seqgrp.seqs); err != nil {
			return seqgrp, err
		}
	}
	return seqgrp, err
}

// FindNdx returns the index of the sequence containing a string.
// Numbering starts from zero. We remove any ">", space or tab at the start.
func (seqgrp *SeqGrp) FindNdx(s string) int {
	s = strings.TrimLeft(s, " >	")

	for i, seq := range seqgrp.seqs {
		if strings.Contains(seq.Cmmt(), s) {
			return i
		}
	}
	return -1
}

// Str2SeqGrp takes some strings and returns them as a seqgrp.
// sIn is a slice of strings which are the sequences.
// prefix is an optional argument. Sequences need names/comments. If
// prefix is not given, sequences will be called "> s1", "> s2", ...
func Str2SeqGrp(sIn []string, prefix ...string) *SeqGrp {
	var base string
	seqgrp := new(SeqGrp)
	if prefix == nil {
		base = "s"
	} else {
		base = prefix[0]
	}
	for i, s := range sIn {
		f := seq{cmmt: fmt.Sprint(base, i), seq: []byte(s)}
		seqgrp.seqs = append(seqgrp.seqs, f)
	}
	return seqgrp
}
