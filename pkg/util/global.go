package util

import "regexp"

// const
const (
	// PatternLength default length of the repeat probe
	PatternLength = 50
	// CircularNote appended to the name of a trimmed sequence
	CircularNote = "   circular with %d matches"
)

// regexp
var (
	// ACGTN nucleotide sequence, case insensitive
	ACGTN = regexp.MustCompile(`^[ACGTNacgtn]*$`)
)
