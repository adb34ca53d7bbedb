package history

import "github.com/labyrinthine/maze-engine/particle"

// SampleState is a deep-copied curve sample.
type SampleState struct {
	Pos, Prev       particle.Vec2
	Delta           float64
	Locked          bool
	IgnoreNeighbors bool
}

// CurveState is a deep-copied curve: its shape, parameters, and samples.
type CurveState struct {
	ID      int
	Closed  bool
	Type    particle.CurveType
	Params  particle.CurveParams
	Samples []SampleState
}

// CurveSetSnapshot is a deep copy of a particle.CurveSet's live state, in
// curve insertion order.
type CurveSetSnapshot struct {
	Curves []CurveState
}

// CloneCurveSetSnapshot deep-copies a CurveSetSnapshot.
func CloneCurveSetSnapshot(s CurveSetSnapshot) CurveSetSnapshot {
	out := CurveSetSnapshot{Curves: make([]CurveState, len(s.Curves))}
	for i, c := range s.Curves {
		cc := c
		cc.Samples = make([]SampleState, len(c.Samples))
		copy(cc.Samples, c.Samples)
		out.Curves[i] = cc
	}
	return out
}

// SnapshotCurves deep-copies the live state of cs into a CurveSetSnapshot.
func SnapshotCurves(cs *particle.CurveSet) CurveSetSnapshot {
	var snap CurveSetSnapshot
	cs.Curves(func(c *particle.Curve) {
		cstate := CurveState{
			ID: c.ID, Closed: c.Closed, Type: c.Type, Params: c.Params,
			Samples: make([]SampleState, c.Len()),
		}
		for i := 0; i < c.Len(); i++ {
			s := c.At(i)
			cstate.Samples[i] = SampleState{
				Pos: s.Pos, Prev: s.Prev, Delta: s.Delta,
				Locked: s.Locked, IgnoreNeighbors: s.IgnoreNeighbors,
			}
		}
		snap.Curves = append(snap.Curves, cstate)
	})
	return snap
}

// RehydrateCurves clears cs and rebuilds every curve from snap in order,
// restoring each curve's original ID via CurveSet.AddCurveWithID so curve
// identity survives undo/redo the same way particle/constraint handles do.
func RehydrateCurves(cs *particle.CurveSet, snap CurveSetSnapshot) {
	var ids []int
	cs.Curves(func(c *particle.Curve) { ids = append(ids, c.ID) })
	for _, id := range ids {
		cs.RemoveCurve(id)
	}
	for _, cstate := range snap.Curves {
		c := cs.AddCurveWithID(cstate.ID, cstate.Closed, cstate.Type, cstate.Params)
		for _, ss := range cstate.Samples {
			s := particle.Sample{
				Delta: ss.Delta, Locked: ss.Locked, IgnoreNeighbors: ss.IgnoreNeighbors,
			}
			s.Pos = ss.Pos
			s.Prev = ss.Prev
			c.Append(s)
		}
	}
}
