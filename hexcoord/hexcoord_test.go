package hexcoord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMathMod(t *testing.T) {
	assert.Equal(t, 2, MathMod(5, 3))
	assert.Equal(t, 1, MathMod(-5, 3))
	assert.Equal(t, 0, MathMod(6, 3))
	assert.Equal(t, -2, MathMod(-5, -3))
	assert.Equal(t, 0, MathMod(0, 6))
	assert.Equal(t, 3, MathMod(-3, 6))
}

func TestHexArea(t *testing.T) {
	assert.Equal(t, 1, HexArea(1))
	assert.Equal(t, 7, HexArea(2))
	assert.Equal(t, 19, HexArea(3))
	assert.Equal(t, 37, HexArea(4))
}

func TestRingOf(t *testing.T) {
	assert.Equal(t, 0, RingOf(0, 0))
	for _, d := range offsets {
		assert.Equal(t, 1, RingOf(d.P, d.Q))
	}
	assert.Equal(t, 2, RingOf(2, -1))
	assert.Equal(t, 2, RingOf(-2, 2))
}

func TestProgramIndexBijection(t *testing.T) {
	const side = 3
	seen := map[int]bool{}
	count := 0
	for p := -(side - 1); p <= side-1; p++ {
		for q := -(side - 1); q <= side-1; q++ {
			if !InHexagon(p, q, side) {
				continue
			}
			idx, ok := ProgramIndex(p, q, side)
			assert.True(t, ok)
			assert.False(t, seen[idx], "index %d produced twice", idx)
			seen[idx] = true
			assert.True(t, idx >= 0 && idx < HexArea(side))
			count++
		}
	}
	assert.Equal(t, HexArea(side), count)
}

func TestProgramIndexSideTwoLayout(t *testing.T) {
	// side 2: the 6 ring-1 corners are exactly the 6 IP starting
	// corners from spec.md's IP table.
	idx, ok := ProgramIndex(0, -1, 2)
	assert.True(t, ok)
	assert.Equal(t, 0, idx, "the 'H' in \"Hi@\" lands on the corner IP 0 starts on")

	_, ok = ProgramIndex(2, 0, 2)
	assert.False(t, ok, "ring 2 coordinate must not fit in a side-2 hexagon")
}

func TestRadialIndexOriginAndRingStarts(t *testing.T) {
	assert.Equal(t, 0, RadialIndex(0, 0))
	for r := 1; r <= 4; r++ {
		start := 3*r*(r-1) + 1
		assert.Equal(t, start, RadialIndex(0, -r), "ring %d must start at (0,-r)", r)
	}
}

func TestRadialIndexBijectiveWithinRings(t *testing.T) {
	for r := 1; r <= 5; r++ {
		seen := map[int]bool{}
		for _, sx := range sextants {
			for k := 0; k < r; k++ {
				p := sx.corner.P*r + sx.dir.P*k
				q := sx.corner.Q*r + sx.dir.Q*k
				idx := RadialIndex(p, q)
				assert.False(t, seen[idx], "ring %d: index %d produced twice", r, idx)
				seen[idx] = true
				assert.True(t, idx >= 3*r*(r-1)+1 && idx < 3*r*(r-1)+1+6*r)
			}
		}
		assert.Equal(t, 6*r, len(seen))
	}
}

func TestRadialIndexPreservesRingOrder(t *testing.T) {
	assert.True(t, RadialIndex(0, 0) < RadialIndex(0, -1))
	assert.True(t, RadialIndex(0, -1) < RadialIndex(0, -2))
	assert.True(t, RadialIndex(1, -1) < RadialIndex(2, -1))
}

func TestComponentsRoundTrip(t *testing.T) {
	p, q := FromComponents(Components(3, -5))
	assert.Equal(t, 3, p)
	assert.Equal(t, -5, q)
}

func TestDirectionOffsetsLandOnRingOne(t *testing.T) {
	for _, d := range offsets {
		z := CubeZ(d.P, d.Q)
		assert.Equal(t, 2, abs(d.P)+abs(d.Q)+abs(z), "unit step must land on ring 1 (sum/2=1)")
	}
}
