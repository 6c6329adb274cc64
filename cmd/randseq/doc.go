// 31 July 2020

/*
Randseq makes random alignments for testing the code.
Usage:
	randseq [options] fname nseq length
will generate nseq sequences of length length and write them to fname.
Use "-" as the filename to write to standard output.

Flags:
	-g frac
		fraction of positions which are "-" gaps
	-d frac
		fraction of positions which are "." gaps
	-w frac
		fraction of residues written in lowercase, as in a2m insert columns
	-e
		provoke errors. One sequence will not be the same length as the
		others. This is an error for programs like gapstat.
	-r
		random number seed

The content is not so important. The questions that come up are white
space, gaps, dots and case, so we generate funny cases of all of them.
*/
package main
