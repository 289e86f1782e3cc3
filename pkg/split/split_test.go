package split

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

// pairs build m interleaved read pairs, each pair unique
func pairs(m int) (blocks []string) {
	for i := 0; i < m; i++ {
		var b strings.Builder
		for _, mate := range []int{1, 2} {
			fmt.Fprintf(&b, "@read%d/%d\nACGT%04dTT\n+\nIIIIIIIIII\n", i, mate, i)
		}
		blocks = append(blocks, b.String())
	}
	return
}

// cut text into 8 line blocks
func cut(t *testing.T, text string) (blocks []string) {
	t.Helper()
	var r = bufio.NewReader(strings.NewReader(text))
	for {
		var block, err = ReadBlock(r)
		if err == io.EOF {
			return
		}
		if err != nil {
			t.Fatal(err)
		}
		blocks = append(blocks, strings.Join(block, ""))
	}
}

func TestReadBlock(t *testing.T) {
	var r = bufio.NewReader(strings.NewReader(strings.Join(pairs(2), "")))
	for i := 0; i < 2; i++ {
		var block, err = ReadBlock(r)
		if err != nil {
			t.Fatal(err)
		}
		if len(block) != BlockLines {
			t.Fatalf("block %d has %d lines", i, len(block))
		}
	}
	if _, err := ReadBlock(r); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestReadBlockTruncated(t *testing.T) {
	var r = bufio.NewReader(strings.NewReader("@r/1\nACGT\n+\nIIII\n@r/2\n"))
	if _, err := ReadBlock(r); !errors.Is(err, ErrTruncatedBlock) {
		t.Errorf("err = %v, want ErrTruncatedBlock", err)
	}
}

func TestReadBlockNoFinalNewline(t *testing.T) {
	var text = strings.TrimSuffix(pairs(1)[0], "\n")
	var block, err = ReadBlock(bufio.NewReader(strings.NewReader(text)))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(block, "") != text {
		t.Errorf("block changed: %q", strings.Join(block, ""))
	}
}

func TestReadBatch(t *testing.T) {
	var r = bufio.NewReader(strings.NewReader(strings.Join(pairs(5), "")))
	batch, err := ReadBatch(r, 3)
	if err != nil || len(batch) != 3 {
		t.Fatalf("first batch: %v %v", batch, err)
	}
	batch, err = ReadBatch(r, 3)
	if err != nil {
		t.Fatal(err)
	}
	if batch[0].IsEmpty() || batch[1].IsEmpty() || !batch[2].IsEmpty() {
		t.Errorf("short batch: %v", batch)
	}
	if _, err = ReadBatch(r, 3); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestRandOrder(t *testing.T) {
	var rng = rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 7, 100} {
		var order = RandOrder(n, rng)
		var sorted = append([]int(nil), order...)
		sort.Ints(sorted)
		for i, v := range sorted {
			if i != v {
				t.Fatalf("RandOrder(%d) = %v is not a permutation", n, order)
			}
		}
	}
}

func TestSplit(t *testing.T) {
	for _, tc := range []struct{ m, n int }{{0, 1}, {1, 1}, {10, 1}, {10, 3}, {7, 7}, {3, 5}, {100, 4}} {
		t.Run(fmt.Sprintf("%d_pairs_%d_parts", tc.m, tc.n), func(t *testing.T) {
			var (
				input = pairs(tc.m)
				bufs  = make([]*bytes.Buffer, tc.n)
				ws    = make([]io.Writer, tc.n)
			)
			for i := range bufs {
				bufs[i] = new(bytes.Buffer)
				ws[i] = bufs[i]
			}
			var stats, err = Split(strings.NewReader(strings.Join(input, "")), ws, rand.New(rand.NewSource(42)))
			if err != nil {
				t.Fatal(err)
			}
			if stats.Total() != tc.m {
				t.Errorf("total = %d, want %d", stats.Total(), tc.m)
			}

			var seen = make(map[string]int)
			for i, buf := range bufs {
				var blocks = cut(t, buf.String())
				if len(blocks) != stats.Blocks[i] {
					t.Errorf("part %d: %d blocks, stats say %d", i, len(blocks), stats.Blocks[i])
				}
				for _, b := range blocks {
					seen[b]++
				}
			}
			if len(seen) != tc.m {
				t.Errorf("%d distinct blocks, want %d", len(seen), tc.m)
			}
			for _, b := range input {
				if seen[b] != 1 {
					t.Errorf("block seen %d times: %q", seen[b], b)
				}
			}
		})
	}
}

func TestSplitKeepsOrderWithinPart(t *testing.T) {
	var (
		input = pairs(40)
		bufs  = []*bytes.Buffer{new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)}
	)
	if _, err := Split(strings.NewReader(strings.Join(input, "")), []io.Writer{bufs[0], bufs[1], bufs[2]}, rand.New(rand.NewSource(7))); err != nil {
		t.Fatal(err)
	}
	var index = make(map[string]int)
	for i, b := range input {
		index[b] = i
	}
	for p, buf := range bufs {
		var last = -1
		for _, b := range cut(t, buf.String()) {
			if index[b] <= last {
				t.Errorf("part %d out of order", p)
			}
			last = index[b]
		}
	}
}

func TestSplitUniform(t *testing.T) {
	const m, n = 6000, 4
	var ws = make([]io.Writer, n)
	for i := range ws {
		ws[i] = io.Discard
	}
	var stats, err = Split(strings.NewReader(strings.Join(pairs(m), "")), ws, rand.New(rand.NewSource(2017)))
	if err != nil {
		t.Fatal(err)
	}
	// full batches give every part exactly one block
	for i, c := range stats.Blocks {
		if c != m/n {
			t.Errorf("part %d got %d blocks, want %d", i, c, m/n)
		}
	}

	// a single trailing block lands anywhere
	var hits = make([]int, n)
	var rng = rand.New(rand.NewSource(2017))
	var one = pairs(1)[0]
	for run := 0; run < 4000; run++ {
		stats, err = Split(strings.NewReader(one), ws, rng)
		if err != nil {
			t.Fatal(err)
		}
		for i, c := range stats.Blocks {
			hits[i] += c
		}
	}
	for i, h := range hits {
		if h < 800 || h > 1200 {
			t.Errorf("part %d got %d of 4000 single blocks", i, h)
		}
	}
}

func TestSplitTruncated(t *testing.T) {
	var text = strings.Join(pairs(3), "") + "@tail/1\nACGT\n"
	var _, err = Split(strings.NewReader(text), []io.Writer{io.Discard, io.Discard}, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrTruncatedBlock) {
		t.Errorf("err = %v, want ErrTruncatedBlock", err)
	}
}

func TestPartName(t *testing.T) {
	var tests = []struct {
		input string
		i, n  int
		gz    bool
		want  string
	}{
		{"reads.fq.gz", 0, 3, false, "reads_part1.fastq"},
		{"reads.fq.gz", 9, 10, false, "reads_part10.fastq"},
		{"dir/sample.R1.fastq.gz", 4, 120, false, "dir/sample.R1_part005.fastq"},
		{"reads.fastq", 1, 2, true, "reads_part2.fastq.gz"},
	}
	for _, tc := range tests {
		if got := PartName(tc.input, tc.i, tc.n, tc.gz); got != tc.want {
			t.Errorf("PartName(%q, %d, %d) = %q, want %q", tc.input, tc.i, tc.n, got, tc.want)
		}
	}
}

func TestSplitFile(t *testing.T) {
	var (
		dir   = t.TempDir()
		input = filepath.Join(dir, "mito.fq.gz")
		reads = pairs(25)
	)
	var f, err = os.Create(input)
	if err != nil {
		t.Fatal(err)
	}
	var gw = gzip.NewWriter(f)
	if _, err = io.WriteString(gw, strings.Join(reads, "")); err != nil {
		t.Fatal(err)
	}
	if err = gw.Close(); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}

	stats, names, err := SplitFile(input, 4, false, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 4 || stats.Total() != 25 {
		t.Fatalf("names %v, total %d", names, stats.Total())
	}
	var total = 0
	for i, name := range names {
		if name != filepath.Join(dir, fmt.Sprintf("mito_part%d.fastq", i+1)) {
			t.Errorf("name = %q", name)
		}
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		total += len(cut(t, string(data)))
	}
	if total != 25 {
		t.Errorf("files hold %d blocks, want 25", total)
	}
}

func TestSplitFileGzipParts(t *testing.T) {
	var (
		dir   = t.TempDir()
		input = filepath.Join(dir, "mito.fastq")
	)
	if err := os.WriteFile(input, []byte(strings.Join(pairs(6), "")), 0o644); err != nil {
		t.Fatal(err)
	}
	var _, names, err = SplitFile(input, 2, true, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}
	var total = 0
	for _, name := range names {
		f, err := os.Open(name)
		if err != nil {
			t.Fatal(err)
		}
		gr, err := gzip.NewReader(f)
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(gr)
		f.Close()
		if err != nil {
			t.Fatal(err)
		}
		total += len(cut(t, string(data)))
	}
	if total != 6 {
		t.Errorf("parts hold %d blocks, want 6", total)
	}
}

func TestSplitFileBadCount(t *testing.T) {
	if _, _, err := SplitFile("x.fq.gz", 0, false, rand.New(rand.NewSource(1))); err == nil {
		t.Error("zero splits should fail")
	}
}
