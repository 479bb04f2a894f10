package engine

import "hexagony/hexcoord"

// An IP is one of Hexagony's six instruction pointers: a position, a
// heading, and a one-shot skip flag set by '$'.
type IP struct {
	P, Q     int
	Dir      hexcoord.Direction
	SkipNext bool
}

// startingIPs returns the six IPs of a side-R hexagon, each at its
// starting corner with its initial direction. Index matches spec.md's IP
// table: 0 top, 1 top-right, 2 bottom-right, 3 bottom, 4 bottom-left,
// 5 top-left.
func startingIPs(side int) [6]IP {
	r := side - 1
	return [6]IP{
		{P: 0, Q: -r, Dir: hexcoord.E},
		{P: -r, Q: 0, Dir: hexcoord.SE},
		{P: -r, Q: r, Dir: hexcoord.SW},
		{P: 0, Q: r, Dir: hexcoord.W},
		{P: r, Q: 0, Dir: hexcoord.NW},
		{P: r, Q: -r, Dir: hexcoord.NE},
	}
}

// reflectAxis picks the cubic axis to reflect the IP's pre-step
// position across, when stepping to (np, nq) would leave the hexagon.
// The priority order is load-bearing: corner cases (two of np, nq, nr
// zero) must be resolved by the first matching zero-case, never by the
// product-sign cases below them.
func reflectAxis(np, nq, nr int, currentEdge int64) hexcoord.Axis {
	positive := currentEdge > 0
	switch {
	case np == 0:
		if positive {
			return hexcoord.Y
		}
		return hexcoord.Z
	case nq == 0:
		if positive {
			return hexcoord.Z
		}
		return hexcoord.X
	case nr == 0:
		if positive {
			return hexcoord.X
		}
		return hexcoord.Y
	case nq*nr > 0:
		return hexcoord.X
	case nr*np > 0:
		return hexcoord.Y
	default: // np*nq > 0
		return hexcoord.Z
	}
}

// reflect maps the axis choice to the corresponding cubic reflection of
// (p, q), per spec.md §4.5.
func reflect(p, q int, axis hexcoord.Axis) (int, int) {
	switch axis {
	case hexcoord.X:
		return -p, p + q
	case hexcoord.Y:
		return p + q, -q
	default: // Z
		return -q, -p
	}
}

// Advance computes ip's next position. currentEdge is the value under
// the memory pointer at the moment of the step; it only matters when
// the IP would leave the hexagon, where its sign disambiguates which
// of the (up to two) valid reflection axes to use. Direction is always
// preserved.
func Advance(ip IP, currentEdge int64, side int) IP {
	d := ip.Dir.Offset()
	np, nq := ip.P+d.P, ip.Q+d.Q
	nr := hexcoord.CubeZ(np, nq)

	if abs(np)+abs(nq)+abs(nr) < 2*side {
		ip.P, ip.Q = np, nq
		return ip
	}

	axis := reflectAxis(np, nq, nr, currentEdge)
	ip.P, ip.Q = reflect(ip.P, ip.Q, axis)
	return ip
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
