package seqsrc

import (
	"context"
	"fmt"

	"pwmfinder/internal/fasta"
)

// Memory holds whole sequences keyed by reference name.
type Memory struct {
	seqs map[string][]byte
}

// NewMemory indexes records by ID; a repeated ID keeps the first record.
func NewMemory(recs []fasta.Record) *Memory {
	m := &Memory{seqs: make(map[string][]byte, len(recs))}
	for _, r := range recs {
		if _, dup := m.seqs[r.ID]; !dup {
			m.seqs[r.ID] = r.Seq
		}
	}
	return m
}

// LoadFASTA reads path ("-" for stdin, gzip aware) into memory.
func LoadFASTA(ctx context.Context, path string) (*Memory, error) {
	recs, err := fasta.ReadAll(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewMemory(recs), nil
}

func (m *Memory) Open(ref string) (Seq, error) {
	s, ok := m.seqs[ref]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownRef, ref)
	}
	return memSeq(s), nil
}

// Refs is the number of sequences held.
func (m *Memory) Refs() int { return len(m.seqs) }

type memSeq []byte

func (s memSeq) Len() int { return len(s) }

func (s memSeq) Get(start0, end1 int) ([]byte, error) {
	start0, end1 = clamp(start0, end1, len(s))
	return s[start0:end1], nil
}

func (memSeq) Close() error { return nil }
