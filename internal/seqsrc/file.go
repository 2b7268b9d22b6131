package seqsrc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Suffix is appended to the reference name to find its sequence file.
const Suffix = ".seq"

// File is a raw sequence file (bases only, no header, no line breaks)
// served through ReadAt. Trailing whitespace is not part of the sequence.
type File struct {
	fh   *os.File
	size int
	buf  []byte
}

// OpenFile opens path and measures the sequence length.
func OpenFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	size, err := trimmedSize(fh, fi.Size())
	if err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{fh: fh, size: size}, nil
}

// trimmedSize drops trailing newlines/spaces from the reported size.
func trimmedSize(r io.ReaderAt, size int64) (int, error) {
	var tail [64]byte
	for size > 0 {
		n := int64(len(tail))
		if n > size {
			n = size
		}
		if _, err := r.ReadAt(tail[:n], size-n); err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		i := n
		for i > 0 && isSpace(tail[i-1]) {
			i--
		}
		size -= n - i
		if i > 0 {
			break
		}
	}
	return int(size), nil
}

func isSpace(b byte) bool { return b == '\n' || b == '\r' || b == ' ' || b == '\t' }

func (f *File) Len() int { return f.size }

// Get reads [start0, end1) into a buffer reused across calls.
func (f *File) Get(start0, end1 int) ([]byte, error) {
	start0, end1 = clamp(start0, end1, f.size)
	n := end1 - start0
	if n == 0 {
		return nil, nil
	}
	if cap(f.buf) < n {
		f.buf = make([]byte, n)
	}
	buf := f.buf[:n]
	got, err := f.fh.ReadAt(buf, int64(start0))
	if err != nil && !(errors.Is(err, io.EOF) && got == n) {
		return nil, err
	}
	return buf[:got], nil
}

func (f *File) Close() error { return f.fh.Close() }

// Dir opens "<Path>/<ref>.seq".
type Dir struct {
	Path string
}

func (d Dir) Open(ref string) (Seq, error) {
	if ref == "" || ref != filepath.Base(ref) {
		return nil, fmt.Errorf("%w %q", ErrUnknownRef, ref)
	}
	f, err := OpenFile(filepath.Join(d.Path, ref+Suffix))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w %q: %v", ErrUnknownRef, ref, err)
		}
		return nil, err
	}
	return f, nil
}
