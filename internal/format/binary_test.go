package format

import (
	"bytes"
	"testing"

	"github.com/sudokuforge/engine/internal/board"
)

func TestRoundTrip(t *testing.T) {
	b := board.New()
	if err := b.ForceSet(0, 0, 1, board.Generated); err != nil {
		t.Fatalf("ForceSet: %v", err)
	}
	if err := b.ForceSet(4, 4, 5, board.UserGenerated); err != nil {
		t.Fatalf("ForceSet: %v", err)
	}
	if err := b.ForceSet(8, 8, 9, board.Solved); err != nil {
		t.Fatalf("ForceSet: %v", err)
	}

	var buf bytes.Buffer
	if err := Save(&buf, b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			wv, wk, _ := b.At(x, y)
			gv, gk, _ := loaded.At(x, y)
			if wv != gv || wk != gk {
				t.Fatalf("cell (%d,%d) mismatch: want (%d,%v) got (%d,%v)", x, y, wv, wk, gv, gk)
			}
		}
	}
}

func TestLoadRejectsZeroHeader(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0, 0, 0, 0, 9, 0, 0, 0})
	if _, err := Load(buf); err != ErrInvalidHeader {
		t.Fatalf("want ErrInvalidHeader, got %v", err)
	}
}

func TestLoadRejectsWrongSize(t *testing.T) {
	buf := bytes.NewBuffer([]byte{4, 0, 0, 0, 4, 0, 0, 0})
	if _, err := Load(buf); err != ErrInvalidHeader {
		t.Fatalf("want ErrInvalidHeader, got %v", err)
	}
}

func TestLoadDoesNotPartiallyModifyOnFailure(t *testing.T) {
	var buf bytes.Buffer
	_ = Save(&buf, board.New())
	truncated := bytes.NewReader(buf.Bytes()[:10])
	loaded, err := Load(truncated)
	if err == nil {
		t.Fatalf("expected error on truncated input")
	}
	if loaded != nil {
		t.Fatalf("expected nil board on failure, got %v", loaded)
	}
}
