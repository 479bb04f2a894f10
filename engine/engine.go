// Package engine implements the Hexagony execution engine: the six
// instruction pointers, instruction dispatch and semantics, and the
// main tick loop that sequences debug gate -> effect -> advance ->
// reflection.
package engine

import (
	"bufio"
	"io"

	"github.com/golang/glog"

	"hexagony/hexcoord"
	"hexagony/memory"
	"hexagony/program"
)

// Command is a debugger response to a break.
type Command int

const (
	Step Command = iota
	Continue
	Quit
)

// Snapshot is the read-only state handed to a Debugger on a break.
type Snapshot struct {
	Program *program.Grid
	Memory  *memory.Grid
	MP      memory.Pointer
	IPs     [6]IP
	Active  int
	Edge    int64
	Opcode  string // name of the instruction about to run, "" if none
}

// Debugger renders a Snapshot and blocks for a Step/Continue/Quit
// decision.
type Debugger interface {
	Prompt(Snapshot) Command
}

// Engine owns the program grid, the memory grid, the memory pointer,
// and the six instruction pointers, and drives them one tick at a time.
type Engine struct {
	Program *program.Grid
	Memory  *memory.Grid
	MP      memory.Pointer
	IPs     [6]IP
	Active  int

	Halted     bool
	ForceDebug bool
	Debugger   Debugger

	In  *bufio.Reader
	Out io.Writer
}

// New builds an Engine ready to run g, reading ',' and '?' input from
// in and writing ';' and '!' output to out.
func New(g *program.Grid, in io.Reader, out io.Writer) *Engine {
	return &Engine{
		Program: g,
		Memory:  memory.NewGrid(),
		MP:      memory.NewPointer(),
		IPs:     startingIPs(g.Side()),
		Active:  0,
		In:      bufio.NewReader(in),
		Out:     out,
	}
}

// CurrentEdge returns a pointer to the edge under the memory pointer.
func (e *Engine) CurrentEdge() *int64 {
	return e.MP.EdgeAt(e.Memory)
}

// Run ticks e until it halts or an instruction reports an error.
func (e *Engine) Run() error {
	for !e.Halted {
		if err := e.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// Tick executes exactly one step: skip, or debug-gate + dispatch, then
// (unless halted) advances the active IP.
func (e *Engine) Tick() error {
	ip := &e.IPs[e.Active]

	if ip.SkipNext {
		ip.SkipNext = false
	} else {
		cell, ok := e.Program.Get(ip.P, ip.Q)
		if !ok {
			// An IP can never legally leave the hexagon; Advance's
			// reflection rule guarantees this. Treat it as a no-op
			// rather than crash, should that invariant ever slip.
			cell = program.Cell{Value: '.'}
		}

		if cell.Debug || e.ForceDebug {
			e.breakFor(cell)
			if e.Halted {
				return nil
			}
		}

		if err := e.dispatch(cell.Value); err != nil {
			return err
		}
		if e.Halted {
			// '@' must halt before the advance step, so the final IP
			// position is the '@' cell itself.
			return nil
		}
	}

	current := *e.CurrentEdge()
	e.IPs[e.Active] = Advance(e.IPs[e.Active], current, e.Program.Side())
	return nil
}

func (e *Engine) breakFor(cell program.Cell) {
	if e.Debugger == nil {
		return
	}
	name := ""
	if op, ok := opcodes[cell.Value]; ok {
		name = op.Name
	}
	snap := Snapshot{
		Program: e.Program,
		Memory:  e.Memory,
		MP:      e.MP,
		IPs:     e.IPs,
		Active:  e.Active,
		Edge:    *e.CurrentEdge(),
		Opcode:  name,
	}
	switch e.Debugger.Prompt(snap) {
	case Step:
		e.ForceDebug = true
	case Continue:
		e.ForceDebug = false
	case Quit:
		glog.V(1).Infof("engine: debugger quit at IP %d (%d,%d)", e.Active, e.IPs[e.Active].P, e.IPs[e.Active].Q)
		e.Halted = true
	}
}

func mod6(n int) int { return hexcoord.MathMod(n, 6) }
