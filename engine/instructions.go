package engine

import (
	"fmt"
	"io"

	"github.com/golang/glog"

	"hexagony/hexcoord"
	"hexagony/memory"
)

// An opcode names and implements one non-alphabetic, non-digit
// instruction. This mirrors the teacher's Opcode{Instruction, Name}
// table shape: a map keyed by the instruction byte, each entry holding
// both the behavior and a human-readable name for the debugger.
type opcode struct {
	Name   string
	Effect func(*Engine) error
}

var opcodes map[byte]opcode

func init() {
	opcodes = map[byte]opcode{
		'.': {"NOP", func(e *Engine) error { return nil }},
		'@': {"HALT", func(e *Engine) error { e.Halted = true; return nil }},

		')': {"INC", func(e *Engine) error { *e.CurrentEdge()++; return nil }},
		'(': {"DEC", func(e *Engine) error { *e.CurrentEdge()--; return nil }},
		'~': {"NEG", func(e *Engine) error { edge := e.CurrentEdge(); *edge = -*edge; return nil }},

		'+': {"ADD", (*Engine).add},
		'-': {"SUB", (*Engine).sub},
		'*': {"MUL", (*Engine).mul},
		':': {"DIV", (*Engine).div},
		'%': {"MOD", (*Engine).mod},

		',': {"INBYTE", (*Engine).readByte},
		'?': {"INDEC", (*Engine).readDecimal},
		';': {"OUTBYTE", (*Engine).writeByte},
		'!': {"OUTDEC", (*Engine).writeDecimal},

		'$': {"SKIP", func(e *Engine) error { e.IPs[e.Active].SkipNext = true; return nil }},

		'/':  {"MIRROR_FWD", mirrorEffect('/')},
		'\\': {"MIRROR_BACK", mirrorEffect('\\')},
		'_':  {"MIRROR_H", mirrorEffect('_')},
		'|':  {"MIRROR_V", mirrorEffect('|')},
		'<':  {"BRANCH_LEFT", mirrorEffect('<')},
		'>':  {"BRANCH_RIGHT", mirrorEffect('>')},

		'[': {"IP_PREV", func(e *Engine) error { e.Active = mod6(e.Active - 1); return nil }},
		']': {"IP_NEXT", func(e *Engine) error { e.Active = mod6(e.Active + 1); return nil }},
		'#': {"IP_SELECT", func(e *Engine) error { e.Active = mod6(int(*e.CurrentEdge())); return nil }},

		'{':  {"MP_LEFT", func(e *Engine) error { e.MP.Move(memory.Left); return nil }},
		'}':  {"MP_RIGHT", func(e *Engine) error { e.MP.Move(memory.Right); return nil }},
		'\'': {"MP_BACK_RIGHT", func(e *Engine) error { e.MP.BackRight(); return nil }},
		'"':  {"MP_BACK_LEFT", func(e *Engine) error { e.MP.BackLeft(); return nil }},
		'=':  {"MP_REVERSE", func(e *Engine) error { e.MP.Reverse(); return nil }},
		'^':  {"MP_COND_MOVE", func(e *Engine) error {
			if *e.CurrentEdge() <= 0 {
				e.MP.Move(memory.Left)
			} else {
				e.MP.Move(memory.Right)
			}
			return nil
		}},
		'&': {"MP_COND_COPY", func(e *Engine) error {
			// Resolve the neighbor value before taking e.CurrentEdge()'s
			// pointer: NeighborEdge may grow the memory grid and
			// reallocate its backing array, which would leave a pointer
			// taken beforehand dangling into the old array.
			current := *e.CurrentEdge()
			var neighbor int64
			if current <= 0 {
				neighbor = *e.MP.NeighborEdge(e.Memory, memory.Left)
			} else {
				neighbor = *e.MP.NeighborEdge(e.Memory, memory.Right)
			}
			*e.CurrentEdge() = neighbor
			return nil
		}},
	}
}

// dispatch executes the effect of one instruction byte. Letters write
// their own byte value; digits accumulate per spec.md §4.6; everything
// else is looked up in opcodes, and falls through silently (a no-op) if
// not found there either.
func (e *Engine) dispatch(v byte) error {
	switch {
	case v >= 'A' && v <= 'Z', v >= 'a' && v <= 'z':
		*e.CurrentEdge() = int64(v)
		return nil
	case v >= '0' && v <= '9':
		e.accumulateDigit(v - '0')
		return nil
	}

	if op, ok := opcodes[v]; ok {
		return op.Effect(e)
	}
	glog.V(1).Infof("engine: unrecognized instruction byte %q treated as no-op", v)
	return nil
}

func (e *Engine) accumulateDigit(d byte) {
	edge := e.CurrentEdge()
	sign := int64(1)
	if *edge < 0 {
		sign = -1
	}
	*edge = 10*(*edge) + sign*int64(d)
}

func (e *Engine) add() error { return e.arithmetic('+') }
func (e *Engine) sub() error { return e.arithmetic('-') }
func (e *Engine) mul() error { return e.arithmetic('*') }
func (e *Engine) div() error { return e.arithmetic(':') }
func (e *Engine) mod() error { return e.arithmetic('%') }

// arithmetic implements '+ - * : %': current edge = left OP right,
// where left/right are the memory pointer's neighbor edges.
func (e *Engine) arithmetic(op byte) error {
	left := *e.MP.NeighborEdge(e.Memory, memory.Left)
	right := *e.MP.NeighborEdge(e.Memory, memory.Right)

	var result int64
	switch op {
	case '+':
		result = left + right
	case '-':
		result = left - right
	case '*':
		result = left * right
	case ':':
		if right == 0 {
			return &DivisionByZeroError{Op: op}
		}
		result = left / right // Go's / truncates toward zero
	case '%':
		if right == 0 {
			return &DivisionByZeroError{Op: op}
		}
		result = left % right // Go's % follows the dividend's sign
	}
	*e.CurrentEdge() = result
	return nil
}

func (e *Engine) readByte() error {
	b, err := e.In.ReadByte()
	if err == io.EOF {
		*e.CurrentEdge() = -1
		return nil
	}
	if err != nil {
		return err
	}
	*e.CurrentEdge() = int64(b)
	return nil
}

// readDecimal discards bytes until a digit, '+', or '-', then greedily
// parses a signed decimal integer. A lone sign with no following digit
// parses as zero; immediate EOF stores zero.
func (e *Engine) readDecimal() error {
	var b byte
	var err error
	for {
		b, err = e.In.ReadByte()
		if err == io.EOF {
			*e.CurrentEdge() = 0
			return nil
		}
		if err != nil {
			return err
		}
		if b == '+' || b == '-' || (b >= '0' && b <= '9') {
			break
		}
	}

	negative := false
	var value int64
	if b == '+' || b == '-' {
		negative = b == '-'
	} else {
		value = int64(b - '0')
	}

	for {
		b, err = e.In.ReadByte()
		if err != nil {
			break
		}
		if b < '0' || b > '9' {
			_ = e.In.UnreadByte()
			break
		}
		value = value*10 + int64(b-'0')
	}

	if negative {
		value = -value
	}
	*e.CurrentEdge() = value
	return nil
}

func (e *Engine) writeByte() error {
	v := hexcoord.MathMod(int(*e.CurrentEdge()), 256)
	_, err := e.Out.Write([]byte{byte(v)})
	return err
}

func (e *Engine) writeDecimal() error {
	_, err := fmt.Fprintf(e.Out, "%d", *e.CurrentEdge())
	return err
}
