// Package circular find a repeated probe in assembled sequences and cut the
// redundant overlap, keeping the probe at the left end only.
package circular

import (
	"fmt"

	"github.com/liserjrqlxue/MitoGenome/pkg/util"
)

// Profile hold the best circle length found at each scan offset, 0 for none
type Profile []int

// Extract cut s between the first and the last greedy occurrence of pattern.
// The name is annotated with the total occurrence count.
// ok is false when pattern occurs less than twice.
func Extract(s util.Seq, pattern string, m Matcher) (circ util.Seq, ok bool) {
	if pattern == "" {
		return
	}
	var count = m.Count(s.Seq, pattern)
	if count < 2 {
		return
	}
	start, end, found := m.Span(s.Seq, pattern)
	if !found {
		return
	}
	// drop the right copy
	end -= len(pattern)
	if end <= start {
		return
	}
	circ = s.
		WithName(s.Name + fmt.Sprintf(util.CircularNote, count)).
		WithSeq(s.Seq[start:end])
	return circ, true
}

// Single search s alone, see SingleProfile
func Single(s util.Seq, length int, m Matcher) util.Seq {
	var best, _ = SingleProfile(s, length, m)
	return best
}

// SingleProfile slide a window of length over the first half of s, one base each step,
// and keep the longest circle. Ties keep the lowest offset.
// An empty Seq is returned when no window occurs twice.
func SingleProfile(s util.Seq, length int, m Matcher) (best util.Seq, profile Profile) {
	if length <= 0 {
		return
	}
	var n = s.Len()
	for i := 0; i < n/2 && i+length <= n; i++ {
		var circ, ok = Extract(s, s.Seq[i:i+length], m)
		if !ok {
			profile = append(profile, 0)
			continue
		}
		profile = append(profile, circ.Len())
		if circ.Len() > best.Len() {
			best = circ
		}
	}
	return
}

// Multi search all seqs with shared offsets, see MultiProfile
func Multi(seqs []util.Seq, length int, m Matcher) []util.Seq {
	var best, _ = MultiProfile(seqs, length, m)
	return best
}

// MultiProfile scan offsets up to half the mean length. At each offset every sequence
// lends its own window as a probe, which is extracted from all seqs; the probe with
// the largest summed circle length wins, first found on ties.
// Seqs the winning probe does not cut are left out of the result.
func MultiProfile(seqs []util.Seq, length int, m Matcher) (best []util.Seq, profile Profile) {
	if length <= 0 || len(seqs) == 0 {
		return
	}
	var (
		half   = util.MeanLength(seqs) / 2
		maxLen = 0
	)
	profile = make(Profile, half)
	for i := 0; i < half; i++ {
		var tried = make(map[string]bool)
		for _, src := range seqs {
			if i+length > src.Len() {
				continue
			}
			var pattern = src.Seq[i : i+length]
			// same probe, same score
			if tried[pattern] {
				continue
			}
			tried[pattern] = true

			var circs, sum = extractAll(seqs, pattern, m)
			profile[i] = util.Max(profile[i], sum)
			if sum > maxLen {
				maxLen = sum
				best = circs
			}
		}
	}
	return
}

func extractAll(seqs []util.Seq, pattern string, m Matcher) (circs []util.Seq, sum int) {
	for _, s := range seqs {
		if circ, ok := Extract(s, pattern, m); ok {
			circs = append(circs, circ)
			sum += circ.Len()
		}
	}
	return
}
