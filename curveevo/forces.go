package curveevo

import (
	"math"

	"github.com/labyrinthine/maze-engine/particle"
)

// forceAt assembles the per-sample force for sample i of curve c: Brownian,
// weighted-Laplacian fairing, Lennard-Jones attraction-repulsion, and
// anisotropy gradient warp.
func (e *Evolver) forceAt(cs *particle.CurveSet, c *particle.Curve, i int) particle.Vec2 {
	s := c.At(i)
	var total particle.Vec2

	total = total.Add(e.brownian(s))
	total = total.Add(e.fairing(c, i))

	attraction := e.attraction(cs, c, i)
	total = total.Add(attraction)
	total = total.Add(e.anisotropyDouble(s, attraction))

	return total
}

// brownian returns a random-walk displacement scaled by the local Brownian
// field. Disabled (returns zero) when fB(pos) <= 0.
func (e *Evolver) brownian(s *particle.Sample) particle.Vec2 {
	fb := e.fields.Brownian.Sample(s.Pos.X, s.Pos.Y)
	if fb <= 0 {
		return particle.Vec2{}
	}
	xi := particle.Vec2{X: e.rng.NormFloat64(), Y: e.rng.NormFloat64()}
	return xi.Scale(e.cfg.BrownianSigma * fb * s.Delta)
}

// fairing pulls a sample toward the delta-weighted midpoint of its two
// neighbors (weighted Laplacian smoothing). Endpoints of an open curve, and
// a sample flagged IgnoreNeighbors, contribute no fairing.
func (e *Evolver) fairing(c *particle.Curve, i int) particle.Vec2 {
	s := c.At(i)
	if s.IgnoreNeighbors {
		return particle.Vec2{}
	}
	prev, next, prevOK, nextOK := c.Neighbors(i)
	if !prevOK || !nextOK {
		return particle.Vec2{}
	}
	sp := c.At(prev)
	sn := c.At(next)
	dp := sp.Delta
	dn := sn.Delta
	sum := dp + dn
	if sum <= 0 {
		return particle.Vec2{}
	}
	target := sp.Pos.Scale(dn).Add(sn.Pos.Scale(dp)).Scale(1 / sum).Sub(s.Pos)
	ff := e.fields.Fairing.Sample(s.Pos.X, s.Pos.Y)
	return target.Scale(ff)
}

// attraction computes a Lennard-Jones-like attraction-repulsion force
// against nearby segments of every curve.
func (e *Evolver) attraction(cs *particle.CurveSet, c *particle.Curve, i int) particle.Vec2 {
	s := c.At(i)
	r1 := e.cfg.K1 * s.Delta
	if r1 <= 0 {
		return particle.Vec2{}
	}
	candidates := cs.QuerySegments(s.Pos.X, s.Pos.Y, r1)

	var total particle.Vec2
	for _, cand := range candidates {
		if cand.Curve == c && isNearOwnIndex(cand, c, i) {
			continue
		}
		a := cand.Curve.At(cand.Seg.I)
		b := cand.Curve.At(cand.Seg.J)
		q, r := closestPointOnSegment(s.Pos, a.Pos, b.Pos)
		if r >= r1 || r < e.cfg.MinForceR {
			continue
		}
		sigmaOverR := e.cfg.SigmaLJ / r
		p6 := math.Pow(sigmaOverR, 6)
		w := p6*p6 - p6
		if w > e.cfg.LJClamp {
			w = e.cfg.LJClamp
		} else if w < -e.cfg.LJClamp {
			w = -e.cfg.LJClamp
		}
		fa := e.fields.Attract.Sample(s.Pos.X, s.Pos.Y)
		dir := s.Pos.Sub(q).Scale(1 / r)
		total = total.Add(dir.Scale(w * fa))
	}
	return total
}

// isNearOwnIndex reports whether a same-curve candidate segment is within
// nmin topological distance of sample index i.
func isNearOwnIndex(cand particle.CandidateSegment, c *particle.Curve, i int) bool {
	nmin := c.Params.Nmin
	di := c.CircularIndexDistance(i, cand.Seg.I)
	dj := c.CircularIndexDistance(i, cand.Seg.J)
	return di <= nmin || dj <= nmin
}

// anisotropyDouble projects the attraction-repulsion force onto the local
// anisotropy gradient and returns that aligned component again (the caller
// adds it on top of attraction, doubling the gradient-aligned part).
func (e *Evolver) anisotropyDouble(s *particle.Sample, attraction particle.Vec2) particle.Vec2 {
	gx, gy := e.fields.Anisotropy.Gradient(s.Pos.X, s.Pos.Y)
	g := particle.Vec2{X: gx, Y: gy}
	if g.Length() < e.cfg.GradientEps {
		return particle.Vec2{}
	}
	ghat := g.Normalized()
	aligned := ghat.Scale(ghat.Dot(attraction))
	return aligned
}

// closestPointOnSegment projects p onto segment a-b, returning the closest
// point q and the distance from p to q.
func closestPointOnSegment(p, a, b particle.Vec2) (q particle.Vec2, r float64) {
	ab := b.Sub(a)
	abLenSq := ab.LengthSq()
	if abLenSq < 1e-12 {
		q = a
		return q, p.Sub(q).Length()
	}
	t := p.Sub(a).Dot(ab) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	q = a.Add(ab.Scale(t))
	return q, p.Sub(q).Length()
}
