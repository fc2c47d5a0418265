package catalog

import (
	"context"
	"testing"

	"github.com/sudokuforge/engine/internal/board"
	"github.com/sudokuforge/engine/internal/ports"
)

func TestSaveLoadList(t *testing.T) {
	c, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer c.Close()

	b := board.New()
	_ = b.ForceSet(0, 0, 1, board.Generated)

	p := &ports.Puzzle{
		Name:       "corner",
		Seed:       42,
		Difficulty: ports.Medium,
		Board:      b,
		CreatedAt:  1700000000,
	}
	if err := c.Save(context.Background(), p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("Save did not assign an ID")
	}

	loaded, err := c.Load(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "corner" || loaded.Seed != 42 || loaded.Difficulty != ports.Medium {
		t.Fatalf("loaded metadata mismatch: %+v", loaded)
	}
	v, k, _ := loaded.Board.At(0, 0)
	if v != 1 || k != board.Generated {
		t.Fatalf("loaded board mismatch: value=%d kind=%v", v, k)
	}

	metas, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(metas) != 1 || metas[0].ID != p.ID {
		t.Fatalf("List returned unexpected entries: %+v", metas)
	}
}
