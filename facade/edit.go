package facade

import "github.com/labyrinthine/maze-engine/particle"

// pickTolerance is a suggested point-to-entity hit radius for removeAt/
// nearest-sample gestures. The Facade's own methods always take their
// tolerance from the caller and do not fall back to it.
const pickTolerance = 12.0

// AddParticle creates a new grid particle.
func (f *Facade) AddParticle(pos particle.Vec2, locked bool, mass float64) particle.Handle {
	return f.Particles.AddParticle(pos, locked, mass)
}

// AddConstraint links two existing particles with a distance constraint
//. restLength < 0 sets it to the particles'
// current distance.
func (f *Facade) AddConstraint(a, b particle.Handle, restLength, stiffness float64) particle.Handle {
	return f.Particles.AddConstraint(a, b, restLength, stiffness)
}

// RemoveAt removes the nearest particle (and its cascaded constraints) to
// point, within tol, if any. Reports
// whether a particle was removed.
func (f *Facade) RemoveAt(point particle.Vec2, tol float64) bool {
	f.Particles.RebuildIndex()
	h, ok := f.Particles.Nearest(point, tol)
	if !ok {
		return false
	}
	f.Particles.RemoveParticle(h)
	return true
}

// BeginDrag picks the nearest particle to point within tol for a drag
// gesture. Reports whether a particle was picked.
func (f *Facade) BeginDrag(point particle.Vec2, tol float64) bool {
	f.Particles.RebuildIndex()
	h, ok := f.Particles.Nearest(point, tol)
	f.dragHandle, f.dragHasHandle = h, ok
	return ok
}

// DragTo moves the particle picked by BeginDrag to point. A no-op if no particle is currently picked or the
// picked particle is locked.
func (f *Facade) DragTo(point particle.Vec2) {
	if !f.dragHasHandle {
		return
	}
	p := f.Particles.Particle(f.dragHandle)
	if p == nil || p.Locked {
		return
	}
	p.SetPosition(point)
}

// EndDrag releases the current drag gesture and saves history.
func (f *Facade) EndDrag() {
	if f.dragHasHandle {
		f.SaveState()
	}
	f.dragHasHandle = false
}

// AddCurve creates a new curve.
func (f *Facade) AddCurve(closed bool, typ particle.CurveType, params particle.CurveParams) *particle.Curve {
	return f.Curves.AddCurve(closed, typ, params)
}

// RemoveCurve deletes a curve by id.
func (f *Facade) RemoveCurve(id int) {
	f.Curves.RemoveCurve(id)
}

// InsertSampleOnNearestSegment considers, across every curve, the segments
// whose midpoint lies within tol of point, picks the one nearest to point,
// and inserts a new sample at that segment's midpoint. Reports whether a
// segment was found.
func (f *Facade) InsertSampleOnNearestSegment(point particle.Vec2, tol float64) bool {
	f.Curves.RebuildIndex()
	candidates := f.Curves.QuerySegments(point.X, point.Y, tol)
	if len(candidates) == 0 {
		return false
	}

	best := candidates[0]
	bestDist := segmentDistanceSq(best, point)
	for _, cand := range candidates[1:] {
		d := segmentDistanceSq(cand, point)
		if d < bestDist {
			best, bestDist = cand, d
		}
	}

	a := best.Curve.At(best.Seg.I)
	b := best.Curve.At(best.Seg.J)
	mid := particle.Sample{
		Pos:   a.Pos.Add(b.Pos).Scale(0.5),
		Delta: (a.Delta + b.Delta) / 2,
	}
	mid.Prev = mid.Pos

	insertAt := best.Seg.J
	if best.Seg.J == 0 && best.Seg.I == best.Curve.Len()-1 {
		insertAt = best.Curve.Len()
	}
	best.Curve.InsertAt(insertAt, mid)
	f.Curves.MarkDirty()
	return true
}

// RemoveNearestSample removes the sample nearest point across every curve,
// within tol. Reports
// whether a sample was found and removed.
func (f *Facade) RemoveNearestSample(point particle.Vec2, tol float64) bool {
	var bestCurve *particle.Curve
	bestIndex := -1
	bestDist := tol * tol

	f.Curves.Curves(func(c *particle.Curve) {
		for i := 0; i < c.Len(); i++ {
			d := c.At(i).Pos.Sub(point).LengthSq()
			if d <= bestDist {
				bestCurve, bestIndex, bestDist = c, i, d
			}
		}
	})

	if bestCurve == nil {
		return false
	}
	bestCurve.RemoveAt(bestIndex)
	f.Curves.MarkDirty()
	return true
}

// segmentDistanceSq returns the squared distance from point to cand's
// segment.
func segmentDistanceSq(cand particle.CandidateSegment, point particle.Vec2) float64 {
	a := cand.Curve.At(cand.Seg.I).Pos
	b := cand.Curve.At(cand.Seg.J).Pos
	return closestPointOnSegment(a, b, point).Sub(point).LengthSq()
}

// closestPointOnSegment returns the closest point on segment a-b to p.
func closestPointOnSegment(a, b, p particle.Vec2) particle.Vec2 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq < 1e-12 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}
