package debugger

import (
	"fmt"
	"strings"

	"hexagony/engine"
	"hexagony/hexcoord"
	"hexagony/memory"
)

// renderProgram draws the program grid row by row (constant p per row),
// bracketing any cell an IP currently occupies.
func renderProgram(snap engine.Snapshot) string {
	side := snap.Program.Side()
	var rows []string
	for p := -(side - 1); p <= side-1; p++ {
		var row strings.Builder
		indent := abs(p)
		row.WriteString(strings.Repeat(" ", indent))
		qLo, qHi := -(side-1), side-1
		for q := qLo; q <= qHi; q++ {
			cell, ok := snap.Program.Get(p, q)
			if !ok {
				continue
			}
			if ipHere(snap.IPs, p, q) {
				row.WriteString(fmt.Sprintf("[%c]", cell.Value))
			} else {
				row.WriteString(fmt.Sprintf(" %c ", cell.Value))
			}
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func ipHere(ips [6]engine.IP, p, q int) bool {
	for _, ip := range ips {
		if ip.P == p && ip.Q == q {
			return true
		}
	}
	return false
}

// renderMemory draws a small neighborhood (radius rings) of the memory
// grid around the MP, showing each cell's three edges.
func renderMemory(snap engine.Snapshot, radius int) string {
	var rows []string
	mp := snap.MP
	for p := mp.P - radius; p <= mp.P+radius; p++ {
		var row strings.Builder
		for q := mp.Q - radius; q <= mp.Q+radius; q++ {
			if hexcoord.RingOf(p-mp.P, q-mp.Q) > radius {
				row.WriteString("        ")
				continue
			}
			c := cellAt(snap.Memory, p, q)
			marker := " "
			if p == mp.P && q == mp.Q {
				marker = "*"
			}
			row.WriteString(fmt.Sprintf("%s%d,%d,%d ", marker, c.Edges[0], c.Edges[1], c.Edges[2]))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// cellAt peeks at a memory cell without growing the grid (unlike
// memory.Pointer.EdgeAt); out-of-range coordinates read as zero.
func cellAt(g *memory.Grid, p, q int) memory.Cell {
	return memory.Cell{Edges: [3]int64{
		g.Peek(p, q, hexcoord.X),
		g.Peek(p, q, hexcoord.Y),
		g.Peek(p, q, hexcoord.Z),
	}}
}

func renderIPs(snap engine.Snapshot) string {
	var b strings.Builder
	for i, ip := range snap.IPs {
		marker := " "
		if i == snap.Active {
			marker = "*"
		}
		fmt.Fprintf(&b, "%sIP%d (%d,%d) %s skip=%v\n", marker, i, ip.P, ip.Q, dirName(ip.Dir), ip.SkipNext)
	}
	return b.String()
}

func renderStatus(snap engine.Snapshot) string {
	orient := "out"
	if snap.MP.Orientation == memory.In {
		orient = "in"
	}
	return fmt.Sprintf("MP (%d,%d) axis=%s %s\nedge=%d\nnext=%s",
		snap.MP.P, snap.MP.Q, axisName(snap.MP.Axis), orient, snap.Edge, snap.Opcode)
}

func dirName(d hexcoord.Direction) string {
	switch d {
	case hexcoord.NW:
		return "NW"
	case hexcoord.NE:
		return "NE"
	case hexcoord.E:
		return "E"
	case hexcoord.SE:
		return "SE"
	case hexcoord.SW:
		return "SW"
	default:
		return "W"
	}
}

func axisName(a hexcoord.Axis) string {
	switch a {
	case hexcoord.X:
		return "X"
	case hexcoord.Y:
		return "Y"
	default:
		return "Z"
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
