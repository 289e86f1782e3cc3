package util

import "strconv"

func Max(x, y int) int {
	if y > x {
		return y
	}
	return x
}

// Width return decimal digit count of n, used for zero padding
func Width(n int) int {
	return len(strconv.Itoa(n))
}

// MeanLength return floor of the average length, 0 for no seqs
func MeanLength(seqs []Seq) int {
	if len(seqs) == 0 {
		return 0
	}
	var sum = 0
	for _, s := range seqs {
		sum += s.Len()
	}
	return sum / len(seqs)
}
