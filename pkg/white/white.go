// Whitespace removal for the fasta reader. Sequences arrive with
// newlines and sometimes stray blanks. We squeeze them out in place,
// byte by byte, since the slices come from a reused buffer.

package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove takes a pointer to a byte slice and removes all white space,
// in place. The slice is shortened, but the backing array is untouched.
func Remove(p *[]byte) {
	s := *p
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*p = s[:n]
}
