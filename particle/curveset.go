package particle

import "github.com/labyrinthine/maze-engine/spatial"

// segmentRef is the payload stored in the curve engine's spatial.Index: a
// reference to a live segment of a live curve, positioned at the segment's
// midpoint.
type segmentRef struct {
	curve *Curve
	seg   Segment
}

func (r segmentRef) Pos() (x, y float64) {
	a := r.curve.At(r.seg.I)
	b := r.curve.At(r.seg.J)
	return (a.Pos.X + b.Pos.X) / 2, (a.Pos.Y + b.Pos.Y) / 2
}

// CurveSet owns a collection of curves and the spatial index of their
// segments used by attraction-repulsion.
type CurveSet struct {
	curves map[int]*Curve
	order  []int // insertion order of curve IDs
	nextID int
	index  *spatial.Index[segmentRef]
	dirty  bool
}

// NewCurveSet creates an empty curve set with a spatial index of the given
// cell size.
func NewCurveSet(cellSize float64) *CurveSet {
	return &CurveSet{
		curves: make(map[int]*Curve),
		index:  spatial.New[segmentRef](cellSize),
		dirty:  true,
	}
}

// AddCurve creates and registers a new curve, returning it.
func (cs *CurveSet) AddCurve(closed bool, typ CurveType, params CurveParams) *Curve {
	id := cs.nextID
	cs.nextID++
	return cs.addCurveWithID(id, closed, typ, params)
}

// AddCurveWithID creates and registers a new curve under a caller-chosen
// id, used by history rehydration to restore original curve identity
// instead of minting a fresh one. If id collides with a live curve, that
// curve is replaced. Advances the set's id counter past id so subsequent
// AddCurve calls never collide with a restored id.
func (cs *CurveSet) AddCurveWithID(id int, closed bool, typ CurveType, params CurveParams) *Curve {
	if id >= cs.nextID {
		cs.nextID = id + 1
	}
	return cs.addCurveWithID(id, closed, typ, params)
}

func (cs *CurveSet) addCurveWithID(id int, closed bool, typ CurveType, params CurveParams) *Curve {
	c := NewCurve(id, closed, typ, params)
	if _, exists := cs.curves[id]; !exists {
		cs.order = append(cs.order, id)
	}
	cs.curves[id] = c
	cs.dirty = true
	return c
}

// RemoveCurve removes the curve with the given id.
func (cs *CurveSet) RemoveCurve(id int) {
	if _, ok := cs.curves[id]; !ok {
		return
	}
	delete(cs.curves, id)
	for i, oid := range cs.order {
		if oid == id {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}
	cs.dirty = true
}

// Curve returns the curve with the given id, or nil.
func (cs *CurveSet) Curve(id int) *Curve { return cs.curves[id] }

// Curves calls fn for every curve, in insertion order.
func (cs *CurveSet) Curves(fn func(c *Curve)) {
	for _, id := range cs.order {
		fn(cs.curves[id])
	}
}

// Count returns the number of curves.
func (cs *CurveSet) Count() int { return len(cs.order) }

// MarkDirty flags the spatial index as needing a rebuild before the next
// query.
func (cs *CurveSet) MarkDirty() { cs.dirty = true }

// RebuildIndex rebuilds the segment spatial index from current sample
// positions if dirty, in curve-then-segment insertion order.
func (cs *CurveSet) RebuildIndex() {
	if !cs.dirty {
		return
	}
	var refs []segmentRef
	for _, id := range cs.order {
		c := cs.curves[id]
		for _, seg := range c.Segments() {
			refs = append(refs, segmentRef{curve: c, seg: seg})
		}
	}
	cs.index.Rebuild(refs)
	cs.dirty = false
}

// QuerySegments returns candidate (curve, segment) pairs within radius r
// of (x, y), in insertion order.
func (cs *CurveSet) QuerySegments(x, y, r float64) []CandidateSegment {
	refs := cs.index.QueryRadius(x, y, r)
	out := make([]CandidateSegment, len(refs))
	for i, ref := range refs {
		out[i] = CandidateSegment{Curve: ref.curve, Seg: ref.seg}
	}
	return out
}

// CandidateSegment is a segment returned by CurveSet.QuerySegments.
type CandidateSegment struct {
	Curve *Curve
	Seg   Segment
}
