package memory

import "hexagony/hexcoord"

// Orientation records which endpoint of an undirected edge a Pointer
// currently identifies.
type Orientation int

const (
	In Orientation = iota
	Out
)

// Side selects the neighbor edge relative to the pointer's axis: Left
// rotates the axis selector backwards, Right forwards.
type Side int

const (
	Left  Side = -1
	Right Side = 1
)

// Pointer is a directed edge of the memory grid: a cell, one of its
// three axes, and which endpoint ("in" or "out") is current.
//
// The initial Pointer is (0, 0, Z, Out) — the Out orientation is this
// spec's resolution of an ambiguity between the two source variants it
// was distilled from; see DESIGN.md.
type Pointer struct {
	P, Q        int
	Axis        hexcoord.Axis
	Orientation Orientation
}

// NewPointer returns the initial memory pointer.
func NewPointer() Pointer {
	return Pointer{P: 0, Q: 0, Axis: hexcoord.Z, Orientation: Out}
}

func (mp Pointer) neighborAxis(side Side) hexcoord.Axis {
	return hexcoord.Axis(hexcoord.MathMod(int(mp.Axis)+int(side), 3))
}

// Move shifts mp to the neighbor edge on the given Side.
//
// If mp is Out, the cell shifts by +1 on Axis and -1 on the neighbor
// axis (in cubic coordinates, which always sum to zero, so these two
// deltas cancel), the axis becomes the neighbor axis, and the
// orientation becomes In. If mp is In, the cell is unchanged, the axis
// becomes the neighbor axis, and the orientation becomes Out.
func (mp *Pointer) Move(side Side) {
	na := mp.neighborAxis(side)
	if mp.Orientation == Out {
		c := hexcoord.Components(mp.P, mp.Q)
		c[mp.Axis]++
		c[na]--
		mp.P, mp.Q = hexcoord.FromComponents(c)
		mp.Axis = na
		mp.Orientation = In
		return
	}
	mp.Axis = na
	mp.Orientation = Out
}

// Reverse flips In/Out in place; the current edge is unchanged, but
// left and right swap roles.
func (mp *Pointer) Reverse() {
	if mp.Orientation == In {
		mp.Orientation = Out
	} else {
		mp.Orientation = In
	}
}

// BackLeft moves mp to the edge that would be reached by moving Right,
// but from the opposite end: reverse, move(Right), reverse.
func (mp *Pointer) BackLeft() {
	mp.Reverse()
	mp.Move(Right)
	mp.Reverse()
}

// BackRight is BackLeft's mirror: reverse, move(Left), reverse.
func (mp *Pointer) BackRight() {
	mp.Reverse()
	mp.Move(Left)
	mp.Reverse()
}

// EdgeAt returns a pointer to the edge mp currently identifies,
// growing g if needed.
func (mp Pointer) EdgeAt(g *Grid) *int64 {
	cell := g.cellAt(mp.P, mp.Q)
	return &cell.Edges[mp.Axis]
}

// NeighborEdge returns a pointer to the edge that would become current
// if mp moved to the given side, without moving mp itself.
func (mp Pointer) NeighborEdge(g *Grid, side Side) *int64 {
	moved := mp
	moved.Move(side)
	return moved.EdgeAt(g)
}
