package brokenio_test

import (
	"io"
	"os"
	"testing"

	"github.com/andrew-torda/gapstat/pkg/brokenio"
	"github.com/andrew-torda/gapstat/pkg/seq/common"
)

// TestZeroFile: with the probability at 1, the first read must look
// like an empty file, without an error.
func TestZeroFile(t *testing.T) {
	fname, err := common.WrtTemp("plenty of bytes in here")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	brkn := brokenio.NewReader(fp)
	brkn.SetProbZeroFile(1)
	defer brkn.Close()
	b := make([]byte, 16)
	if n, err := brkn.Read(b); n != 0 || err != io.EOF {
		t.Fatalf("wanted 0 bytes and EOF, got %d and %v", n, err)
	}
}

// TestFail: with the probability at 1, every read must complain and
// hand back a shortened buffer.
func TestFail(t *testing.T) {
	fname, err := common.WrtTemp("twentycharactershere")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	brkn := brokenio.NewReader(fp)
	brkn.SetProbFail(1)
	brkn.SetFracFail(0.5)
	defer brkn.Close()
	b := make([]byte, 20)
	n, err := brkn.Read(b)
	if err == nil {
		t.Fatal("expected a complaint from the broken reader")
	}
	if n != 10 {
		t.Fatalf("wanted 10 surviving bytes, got %d", n)
	}
}
