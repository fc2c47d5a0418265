// Package format implements the persisted board's binary layout:
// little-endian u32 width/height followed by one u32 value + u32 kind
// pair per cell, row-major.
package format

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/sudokuforge/engine/internal/board"
)

// ErrInvalidHeader is returned by Load when width or height is zero,
// or does not match this engine's fixed 9x9 size.
var ErrInvalidHeader = errors.New("format: invalid board header")

func kindToWire(k board.Kind) uint32 {
	switch k {
	case board.Generated:
		return 1
	case board.UserGenerated:
		return 2
	case board.Solved:
		return 3
	default:
		return 0
	}
}

func kindFromWire(w uint32) (board.Kind, error) {
	switch w {
	case 0:
		return board.None, nil
	case 1:
		return board.Generated, nil
	case 2:
		return board.UserGenerated, nil
	case 3:
		return board.Solved, nil
	default:
		return board.None, fmt.Errorf("format: unknown kind tag %d", w)
	}
}

// Save writes b to w in the engine's binary layout.
func Save(w io.Writer, b *board.Board) error {
	header := [2]uint32{board.Size, board.Size}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}
	var writeErr error
	b.Each(func(x, y int, v uint8, k board.Kind) {
		if writeErr != nil {
			return
		}
		pair := [2]uint32{uint32(v), kindToWire(k)}
		writeErr = binary.Write(w, binary.LittleEndian, pair)
	})
	return writeErr
}

// Load reads a board from r. On any error the returned board is nil
// and no partially-constructed board is exposed to the caller.
func Load(r io.Reader) (*board.Board, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	width, height := header[0], header[1]
	if width == 0 || height == 0 {
		return nil, ErrInvalidHeader
	}
	if width != board.Size || height != board.Size {
		return nil, ErrInvalidHeader
	}

	out := board.New()
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			var pair [2]uint32
			if err := binary.Read(r, binary.LittleEndian, &pair); err != nil {
				return nil, err
			}
			if pair[0] > 9 {
				return nil, fmt.Errorf("format: value %d out of range at (%d,%d)", pair[0], x, y)
			}
			k, err := kindFromWire(pair[1])
			if err != nil {
				return nil, err
			}
			v := uint8(pair[0])
			if v == 0 {
				k = board.None
			}
			// Bypass Put's immutability guard: Load reconstructs a
			// board from scratch, it is not an edit to a live board.
			if err := out.ForceSet(x, y, v, k); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
