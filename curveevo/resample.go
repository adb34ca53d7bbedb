package curveevo

import "github.com/labyrinthine/maze-engine/particle"

// resample performs adaptive split-then-merge resampling on a single curve
//. Split always runs before merge to avoid
// oscillation across ticks.
func resample(c *particle.Curve) {
	split(c)
	merge(c)
}

// split walks segments from last to first, inserting a midpoint sample
// wherever segment length exceeds kmax*D*avgDelta.
func split(c *particle.Curve) {
	segs := c.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		a := c.At(seg.I)
		b := c.At(seg.J)
		length := b.Pos.Sub(a.Pos).Length()
		avgDelta := (a.Delta + b.Delta) / 2
		dmax := c.Params.Kmax * c.Params.D * avgDelta
		if length <= dmax {
			continue
		}

		mid := particle.Sample{
			Pos:   a.Pos.Add(b.Pos).Scale(0.5),
			Delta: avgDelta,
		}
		mid.SetPosition(mid.Pos)

		insertIdx := seg.J
		if seg.J == 0 && seg.I == c.Len()-1 {
			insertIdx = c.Len() // wrap segment: append at the end
		}
		c.InsertAt(insertIdx, mid)
	}
}

// merge walks interior samples from last to first, removing any unlocked
// sample whose distance to either neighbor falls below kmin*D*avgDelta.
// Endpoints of an open curve are never interior and are never removed.
func merge(c *particle.Curve) {
	n := c.Len()
	if n == 0 {
		return
	}
	lo, hi := interiorRange(c, n)
	for i := hi; i >= lo; i-- {
		if i >= c.Len() {
			continue
		}
		s := c.At(i)
		if s.Locked {
			continue
		}
		prev, next, prevOK, nextOK := c.Neighbors(i)
		if !prevOK || !nextOK {
			continue
		}
		sp := c.At(prev)
		sn := c.At(next)
		avgDelta := (sp.Delta + s.Delta + sn.Delta) / 3
		dmin := c.Params.Kmin * c.Params.D * avgDelta

		distPrev := s.Pos.Sub(sp.Pos).Length()
		distNext := s.Pos.Sub(sn.Pos).Length()
		if distPrev < dmin || distNext < dmin {
			c.RemoveAt(i)
		}
	}
}

// interiorRange returns the inclusive [lo,hi] index range eligible for
// merge: the full range on a closed curve (every sample has neighbors),
// or the open interval excluding both endpoints on an open curve.
func interiorRange(c *particle.Curve, n int) (lo, hi int) {
	if c.Closed {
		return 0, n - 1
	}
	if n < 3 {
		return 1, 0 // empty range: no interior samples to merge
	}
	return 1, n - 2
}
