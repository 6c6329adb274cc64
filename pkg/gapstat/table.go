// Long format table output, for anybody who wants to do their own
// plotting in R or gnuplot.

package gapstat

import (
	"fmt"
	"io"
)

const (
	labelIntnl = "intermediate"
	labelLtail = "lead_trail"
)

// WriteTbl writes the tallies as a tab separated table, one line per
// alignment, position and gap type. Positions count from 1. For each
// alignment the intermediate lines come before the lead_trail lines.
func WriteTbl(fp io.Writer, counts []*GapCount) error {
	if _, err := fmt.Fprintln(fp, "filename\tposition\tcount\tgaptype"); err != nil {
		return err
	}
	for _, gc := range counts {
		for i, v := range gc.Internal {
			if _, err := fmt.Fprintf(fp, "%s\t%d\t%d\t%s\n", gc.Name, i+1, v, labelIntnl); err != nil {
				return err
			}
		}
		for i, v := range gc.LeadTrail {
			if _, err := fmt.Fprintf(fp, "%s\t%d\t%d\t%s\n", gc.Name, i+1, v, labelLtail); err != nil {
				return err
			}
		}
	}
	return nil
}
