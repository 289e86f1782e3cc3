package util

import (
	"fmt"
	"io"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
)

// Seq is one FASTA record. The zero value means "no sequence".
type Seq struct {
	Name string
	Seq  string
}

func NewSeq(name, seq string) Seq {
	return Seq{Name: name, Seq: seq}
}

// WithName return a copy renamed to name
func (s Seq) WithName(name string) Seq {
	s.Name = name
	return s
}

// WithSeq return a copy holding seq
func (s Seq) WithSeq(seq string) Seq {
	s.Seq = seq
	return s
}

func (s Seq) Len() int {
	return len(s.Seq)
}

// IsEmpty report whether s carries neither name nor bases
func (s Seq) IsEmpty() bool {
	return s.Name == "" && s.Seq == ""
}

// Fasta 序列 转换为 `FASTA` 格式, without trailing newline
func (s Seq) Fasta() string {
	return fmt.Sprintf(">%s\n%s", s.Name, s.Seq)
}

// WriteFasta write s as one FASTA record, panic on error
func (s Seq) WriteFasta(w io.Writer) {
	fmtUtil.Fprintf(w, ">%s\n%s\n", s.Name, s.Seq)
}
