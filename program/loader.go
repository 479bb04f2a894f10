package program

import (
	"io"

	"github.com/golang/glog"

	"hexagony/hexcoord"
)

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

const backtick = '`'

// Load reads Hexagony source from r and builds a fully-padded Grid.
//
// Whitespace bytes are discarded. A backtick sets a pending debug mark
// that attaches to the next non-whitespace, non-backtick byte.
// Non-backtick, non-whitespace bytes are placed sequentially — this
// sequence is exactly the row-major index order hexcoord.ProgramIndex
// defines, so no separate placement step is needed. After EOF the grid
// is grown to, and padded with '.' up to, the smallest centered
// hexagonal number that fits every loaded cell.
func Load(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cells := make([]Cell, 0, len(data))
	pendingDebug := false
	for _, b := range data {
		switch {
		case isWhitespace(b):
			continue
		case b == backtick:
			pendingDebug = true
			continue
		}
		cells = append(cells, Cell{Value: b, Debug: pendingDebug})
		pendingDebug = false
	}

	side := 1
	for hexcoord.HexArea(side) < len(cells) {
		side++
	}
	area := hexcoord.HexArea(side)
	if area != len(cells) {
		glog.V(1).Infof("program: padding %d loaded cell(s) to side %d (%d cells)", len(cells), side, area)
	}
	for len(cells) < area {
		cells = append(cells, Cell{Value: '.', Debug: false})
	}

	return &Grid{side: side, cells: cells}, nil
}
