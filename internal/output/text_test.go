package output

import (
	"bytes"
	"errors"
	"testing"

	"pwmfinder/internal/engine"
)

var textHits = []engine.Hit{
	{Score: 10000, Ref: "chr1", Start: 0, End: 4, Strand: engine.Forward, Label: "chr1:1-8"},
	{Score: 6666, Ref: "chr1", Start: 3, End: 7, Strand: engine.Reverse, Label: "chr1:1-8"},
}

const textWant = "chr1:1-8\tchr1\t0\t4\tchr1:1-4:+\t10000\t+\n" +
	"chr1:1-8\tchr1\t3\t7\tchr1:4-7:-\t6666\t-\n"

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, textHits, false); err != nil {
		t.Fatal(err)
	}
	if b.String() != textWant {
		t.Fatalf("got:\n%q\nwant:\n%q", b.String(), textWant)
	}

	b.Reset()
	if err := WriteText(&b, textHits, true); err != nil {
		t.Fatal(err)
	}
	if b.String() != TSVHeader+"\n"+textWant {
		t.Fatalf("header missing:\n%q", b.String())
	}
}

func TestStreamTextMatchesWriteText(t *testing.T) {
	in := make(chan engine.Hit, len(textHits))
	for _, h := range textHits {
		in <- h
	}
	close(in)
	var b bytes.Buffer
	if err := StreamText(&b, in, false); err != nil {
		t.Fatal(err)
	}
	if b.String() != textWant {
		t.Fatalf("got %q", b.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestStreamTextDrainsOnError(t *testing.T) {
	in := make(chan engine.Hit) // unbuffered: sender blocks unless drained
	go func() {
		for i := 0; i < 5; i++ {
			in <- textHits[0]
		}
		close(in)
	}()
	if err := StreamText(failWriter{}, in, false); err == nil {
		t.Fatal("want write error")
	}
}
