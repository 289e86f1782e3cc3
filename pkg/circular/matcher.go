package circular

import (
	"regexp"
	"strings"
)

// Matcher locates repeat probes inside a sequence
type Matcher interface {
	// Count return the number of non-overlapping left-to-right occurrences of pattern in s
	Count(s, pattern string) int
	// Span return [start,end) of the first greedy `pattern.*pattern` match in s
	Span(s, pattern string) (start, end int, ok bool)
}

// Literal treat the pattern as plain text.
// The greedy span runs from the first occurrence to the end of the last one.
type Literal struct{}

func (Literal) Count(s, pattern string) int {
	if pattern == "" {
		return 0
	}
	return strings.Count(s, pattern)
}

func (Literal) Span(s, pattern string) (start, end int, ok bool) {
	if pattern == "" {
		return
	}
	start = strings.Index(s, pattern)
	if start < 0 {
		return
	}
	var last = strings.LastIndex(s, pattern)
	if last < start+len(pattern) {
		return 0, 0, false
	}
	return start, last + len(pattern), true
}

// Regexp compile the pattern text as is, metacharacters keep their regexp meaning.
// An invalid expression never matches. Compiled expressions are cached per pattern,
// so a Regexp must not be shared between goroutines.
type Regexp struct {
	cache map[string]*regexp.Regexp
}

func NewRegexp() *Regexp {
	return &Regexp{cache: make(map[string]*regexp.Regexp)}
}

// compile return nil for an invalid expr, cached either way
func (r *Regexp) compile(expr string) *regexp.Regexp {
	if re, ok := r.cache[expr]; ok {
		return re
	}
	var re, err = regexp.Compile(expr)
	if err != nil {
		re = nil
	}
	r.cache[expr] = re
	return re
}

func (r *Regexp) Count(s, pattern string) int {
	if pattern == "" {
		return 0
	}
	var re = r.compile(pattern)
	if re == nil {
		return 0
	}
	return len(re.FindAllStringIndex(s, -1))
}

func (r *Regexp) Span(s, pattern string) (start, end int, ok bool) {
	if pattern == "" {
		return
	}
	// pattern is not grouped: `A|C` gives `A|C.*A|C`
	var re = r.compile(pattern + ".*" + pattern)
	if re == nil {
		return
	}
	var loc = re.FindStringIndex(s)
	if loc == nil {
		return
	}
	return loc[0], loc[1], true
}
