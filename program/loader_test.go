package program

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadPadsToSmallestHexagon(t *testing.T) {
	g, err := Load(strings.NewReader("abc"))
	assert.NoError(t, err)
	assert.Equal(t, 2, g.Side())
	assert.Equal(t, 7, g.Area())

	cell, ok := g.Get(0, -1)
	assert.True(t, ok)
	assert.Equal(t, byte('a'), cell.Value)
	assert.False(t, cell.Debug)
}

func TestLoadStripsWhitespace(t *testing.T) {
	g, err := Load(strings.NewReader("a b\tc\n"))
	assert.NoError(t, err)
	assert.Equal(t, 3, countNonDot(g))
}

func TestLoadBacktickMarksNextInstruction(t *testing.T) {
	g, err := Load(strings.NewReader("`Hi@"))
	assert.NoError(t, err)

	cell, ok := g.Get(0, -1)
	assert.True(t, ok)
	assert.Equal(t, byte('H'), cell.Value)
	assert.True(t, cell.Debug)
}

func TestLoadBacktickDoesNotMarkItself(t *testing.T) {
	g, err := Load(strings.NewReader("H`i@"))
	assert.NoError(t, err)

	h, _ := g.Get(0, -1)
	assert.False(t, h.Debug)
}

func TestLoadEmptySourceIsSingleNoop(t *testing.T) {
	g, err := Load(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, 1, g.Side())
	cell, ok := g.Get(0, 0)
	assert.True(t, ok)
	assert.Equal(t, byte('.'), cell.Value)
}

func countNonDot(g *Grid) int {
	n := 0
	for p := -(g.Side() - 1); p <= g.Side()-1; p++ {
		for q := -(g.Side() - 1); q <= g.Side()-1; q++ {
			if cell, ok := g.Get(p, q); ok && cell.Value != '.' {
				n++
			}
		}
	}
	return n
}
