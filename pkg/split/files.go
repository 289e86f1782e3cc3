package split

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/shenwei356/xopen"
)

// Parts output files of one split
type Parts struct {
	Names   []string
	writers []*xopen.Writer
}

// OpenParts create n part files named after input, gzip compressed if gz
func OpenParts(input string, n int, gz bool) (*Parts, error) {
	var parts = &Parts{}
	for i := 0; i < n; i++ {
		var name = PartName(input, i, n, gz)
		var w, err = xopen.Wopen(name)
		if err != nil {
			parts.Close()
			return nil, errors.Wrapf(err, "create %s", name)
		}
		parts.Names = append(parts.Names, name)
		parts.writers = append(parts.writers, w)
	}
	return parts, nil
}

func (p *Parts) Writers() []io.Writer {
	var ws = make([]io.Writer, len(p.writers))
	for i, w := range p.writers {
		ws[i] = w
	}
	return ws
}

// Close flush and close every part, return the first error
func (p *Parts) Close() (err error) {
	for i, w := range p.writers {
		if e := w.Close(); e != nil && err == nil {
			err = errors.Wrapf(e, "close %s", p.Names[i])
		}
	}
	p.writers = nil
	return
}

// SplitFile split input, gzip or plain, "-" for stdin, into n part files
func SplitFile(input string, n int, gz bool, rng *rand.Rand) (stats Stats, names []string, err error) {
	if n < 1 {
		return stats, nil, errors.Errorf("split number must be >= 1, got %d", n)
	}
	in, err := xopen.Ropen(input)
	if err != nil {
		return stats, nil, errors.Wrapf(err, "open %s", input)
	}
	defer in.Close()

	parts, err := OpenParts(input, n, gz)
	if err != nil {
		return stats, nil, err
	}
	defer func() {
		if e := parts.Close(); e != nil && err == nil {
			err = e
		}
	}()

	stats, err = Split(in, parts.Writers(), rng)
	if err != nil {
		return stats, parts.Names, errors.Wrapf(err, "split %s", input)
	}
	for i, name := range parts.Names {
		slog.Debug("part", "file", name, "pairs", stats.Blocks[i])
	}
	return stats, parts.Names, nil
}
