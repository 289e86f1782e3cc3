package util

import (
	"bufio"
	"bytes"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// ReadSeqs read two line FASTA records from r:
//
//	>Name
//	Seq
//
// Reading stops at the first blank header line, or at a header without a sequence line.
func ReadSeqs(r io.Reader) (seqs []Seq, err error) {
	var scan = bufio.NewScanner(r)
	// mitochondrial contigs sit on a single line
	scan.Buffer(make([]byte, 64*1024), 1<<30)
	for scan.Scan() {
		var header = strings.TrimSpace(scan.Text())
		if header == "" {
			break
		}
		if !scan.Scan() {
			slog.Debug("header without sequence line, stop", "header", header)
			break
		}
		var s = NewSeq(
			strings.TrimPrefix(header, ">"),
			strings.TrimSpace(scan.Text()),
		)
		if !ACGTN.MatchString(s.Seq) {
			slog.Debug("non-nucleotide symbol", "name", s.Name)
		}
		seqs = append(seqs, s)
	}
	err = scan.Err()
	return
}

// ReadFasta load all records of path, "-" for stdin
func ReadFasta(path string) ([]Seq, error) {
	if path == "-" {
		return ReadSeqs(os.Stdin)
	}

	var f, err = os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", path)
	}
	// zero length file can not be mapped
	if info.Size() == 0 {
		return nil, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %s", path)
	}
	defer mm.Unmap()

	seqs, err := ReadSeqs(bytes.NewReader(mm))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return seqs, nil
}

// WriteSeqs write non-empty records to w, return count written.
// A failed write panics, see Seq.WriteFasta; Flush error is returned.
func WriteSeqs(w io.Writer, seqs []Seq) (n int, err error) {
	var bw = bufio.NewWriter(w)
	for _, s := range seqs {
		if s.IsEmpty() {
			continue
		}
		s.WriteFasta(bw)
		n++
	}
	err = bw.Flush()
	return
}
