package format

import (
	"io"

	"github.com/sudokuforge/engine/internal/exactcover"
)

// DumpMatrix writes the exact-cover matrix as 729 lines of 324
// '0'/'1' characters, for debugging and inspection.
func DumpMatrix(w io.Writer, m *exactcover.Matrix) error {
	_, err := w.Write(m.Dump())
	return err
}
