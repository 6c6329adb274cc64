// 14 May 2021

/*
Gapstat counts the gaps in each column of one or more multiple
sequence alignments and plots them as stacked bars in a pdf.

For each sequence, gaps in the run at the start or end of the
sequence are counted separately from gaps between the first and last
real residue. End-gaps usually mean a fragment, internal gaps mean an
insertion or deletion, so one wants to see them in different colours.

Each alignment gets two pages. The first has raw counts and shares
its y-axis with the other alignments of the run, so the plots can be
compared. The second shows the counts divided by the number of
sequences, with the axis fixed just above 1.

By default, columns where the first sequence has a lowercase letter
or a gap are set to zero in the plots. In a2m files these are insert
columns and usually just noise. The first sequence is always taken as
the reference. If that is not what you want, use -a.

Usage:
	gapstat [flags] outfile.pdf infile [infile...]

The output file must not already exist.

The flags are:
	-a
		Keep all columns. Do not squash columns using the first sequence.
	-b positions
		Comma separated 1-based column positions where alignments were
		concatenated. May be repeated. The positions apply to every
		input file. At each breakpoint, the decision what counts as a
		leading or trailing gap starts afresh, so the end of one domain
		does not bleed into the start of the next.
	-t
		Print a tab separated table of the counts to standard output,
		one line per file, position and gap type.
	-v
		Print timing information.

For each input file, one line with the number of sequences and
columns goes to standard error.
*/
package main
