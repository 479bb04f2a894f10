// Package memory implements the Hexagony memory grid: a lazily-growing
// hexagonal grid of cells, each holding three signed integer edges (one
// per cubic axis), and the directed-edge memory pointer that addresses
// them.
package memory

import (
	"github.com/golang/glog"

	"hexagony/hexcoord"
)

// A Cell holds the three edges of one hexagonal memory cell, indexed by
// hexcoord.Axis.
type Cell struct {
	Edges [3]int64
}

// Grid is a growable, radial-indexed (hexcoord.RadialIndex) sequence of
// memory cells. It starts with just the origin cell and grows a whole
// ring at a time, zero-filling new cells, whenever a reference reaches
// beyond its current rings.
type Grid struct {
	side  int // number of rings currently allocated; cells has HexArea(side) entries
	cells []Cell
}

// NewGrid returns a grid containing only the zeroed origin cell.
func NewGrid() *Grid {
	return &Grid{side: 1, cells: make([]Cell, hexcoord.HexArea(1))}
}

// ensureCapacity grows the grid, one ring at a time, until (p, q) has a
// representable radial index.
func (g *Grid) ensureCapacity(p, q int) {
	ring := hexcoord.RingOf(p, q)
	for ring >= g.side {
		newSide := g.side + 1
		area := hexcoord.HexArea(newSide)
		grown := make([]Cell, area)
		copy(grown, g.cells)
		g.cells = grown
		g.side = newSide
		glog.V(1).Infof("memory: grew grid to side %d (%d cells) for ring %d reference", newSide, area, ring)
	}
}

// cellAt returns a pointer to the memory cell at (p, q), growing the
// grid first if necessary.
func (g *Grid) cellAt(p, q int) *Cell {
	g.ensureCapacity(p, q)
	return &g.cells[hexcoord.RadialIndex(p, q)]
}

// Peek returns the edge at (p, q, axis) without growing the grid;
// coordinates beyond the currently-allocated rings read as zero. This
// is for the debugger's read-only neighborhood rendering, which must
// not perturb memory state just by displaying it.
func (g *Grid) Peek(p, q int, axis hexcoord.Axis) int64 {
	if hexcoord.RingOf(p, q) >= g.side {
		return 0
	}
	return g.cells[hexcoord.RadialIndex(p, q)].Edges[axis]
}
