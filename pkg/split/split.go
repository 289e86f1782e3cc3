// Package split spread interleaved paired-end reads over several outputs.
// Every 8 lines, two FASTQ records of one pair, move as a single block.
package split

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/liserjrqlxue/MitoGenome/pkg/util"
)

// BlockLines lines of one interleaved read pair
const BlockLines = 8

// ErrTruncatedBlock input ended inside a read pair
var ErrTruncatedBlock = errors.New("truncated read pair block")

// Block raw lines of one read pair, line terminators kept
type Block []string

func (b Block) IsEmpty() bool {
	return len(b) == 0
}

// WriteTo write lines verbatim
func (b Block) WriteTo(w io.Writer) (n int64, err error) {
	for _, line := range b {
		var m int
		m, err = io.WriteString(w, line)
		n += int64(m)
		if err != nil {
			return
		}
	}
	return
}

// Stats count blocks written per output
type Stats struct {
	Batches int
	Blocks  []int
}

// Total blocks written
func (s Stats) Total() (total int) {
	for _, n := range s.Blocks {
		total += n
	}
	return
}

// ReadBlock read one block of BlockLines lines.
// io.EOF when nothing is left, ErrTruncatedBlock when input stops inside the block.
func ReadBlock(r *bufio.Reader) (Block, error) {
	var block = make(Block, 0, BlockLines)
	for len(block) < BlockLines {
		var line, err = r.ReadString('\n')
		if line != "" {
			block = append(block, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	switch len(block) {
	case 0:
		return nil, io.EOF
	case BlockLines:
		return block, nil
	default:
		return nil, errors.Wrapf(ErrTruncatedBlock, "%d of %d lines", len(block), BlockLines)
	}
}

// ReadBatch read up to n blocks. Missing blocks at the end of input stay empty;
// io.EOF only when the whole batch is empty.
func ReadBatch(r *bufio.Reader, n int) ([]Block, error) {
	var (
		batch = make([]Block, n)
		got   = 0
	)
	for i := range batch {
		var block, err = ReadBlock(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		batch[i] = block
		got++
	}
	if got == 0 {
		return nil, io.EOF
	}
	return batch, nil
}

// RandOrder return a fresh random permutation of [0,size)
func RandOrder(size int, rng *rand.Rand) []int {
	return rng.Perm(size)
}

// Split read batches of len(ws) blocks from r and send batch[order[i]] to ws[i]
func Split(r io.Reader, ws []io.Writer, rng *rand.Rand) (stats Stats, err error) {
	if len(ws) == 0 {
		return stats, errors.New("no output")
	}
	var (
		br     = bufio.NewReaderSize(r, 1024*1024)
		splits = len(ws)
	)
	stats.Blocks = make([]int, splits)
	for {
		var batch []Block
		batch, err = ReadBatch(br, splits)
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return stats, errors.Wrapf(err, "batch %d", stats.Batches+1)
		}
		stats.Batches++
		var order = RandOrder(splits, rng)
		for i, w := range ws {
			var block = batch[order[i]]
			if block.IsEmpty() {
				continue
			}
			if _, err = block.WriteTo(w); err != nil {
				return stats, errors.Wrapf(err, "write part %d", i+1)
			}
			stats.Blocks[i]++
		}
	}
}

// PartName return <basename>_part<NNN>.fastq for the i-th (0 based) of n parts.
// basename is input without a .gz suffix and one more extension.
func PartName(input string, i, n int, gz bool) string {
	var base = strings.TrimSuffix(input, ".gz")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var name = fmt.Sprintf("%s_part%0*d.fastq", base, util.Width(n), i+1)
	if gz {
		name += ".gz"
	}
	return name
}
