package particle

// CurveType tags the role a curve plays in the generated maze
type CurveType int

const (
	CurveBoundary CurveType = iota
	CurveGap
	CurveLabyrinth
	CurveSolution
)

// Sample is a curve-engine vertex.
// Invariant: for every sample s stored at index i of curve c,
// s.CurveID == c.ID and s.IndexInCurve == i; reconciled after any
// structural mutation before the next force evaluation.
type Sample struct {
	Pos             Vec2
	Prev            Vec2
	Delta           float64 // local scale, > 0
	Locked          bool
	IgnoreNeighbors bool
	CurveID         int
	IndexInCurve    int
}

// Velocity returns the sample's implicit Verlet velocity.
func (sm *Sample) Velocity() Vec2 { return sm.Pos.Sub(sm.Prev) }

// SetPosition writes both Pos and Prev, destroying velocity.
func (sm *Sample) SetPosition(pos Vec2) {
	sm.Pos = pos
	sm.Prev = pos
}

// CurveParams holds the per-curve evolution parameters: target spacing D,
// the adaptive resampling band [Kmin, Kmax) as a fraction of D, and the
// topological exclusion radius Nmin used by attraction-repulsion.
// Invariant: 0 <= Kmin < Kmax, Nmin >= 1, D > 0.
type CurveParams struct {
	D       float64
	Kmin    float64
	Kmax    float64
	Nmin    int
}

// Curve is an ordered sequence of samples.
type Curve struct {
	ID      int
	Closed  bool
	Type    CurveType
	Params  CurveParams
	samples []Sample
}

// NewCurve creates an empty curve with the given id/type/params.
func NewCurve(id int, closed bool, typ CurveType, params CurveParams) *Curve {
	return &Curve{ID: id, Closed: closed, Type: typ, Params: params}
}

// Len returns the number of samples on the curve.
func (c *Curve) Len() int { return len(c.samples) }

// At returns a pointer to the sample at index i.
func (c *Curve) At(i int) *Sample { return &c.samples[i] }

// Samples returns the live sample slice (read/write through pointers from
// At, or range with index for read-only access).
func (c *Curve) Samples() []Sample { return c.samples }

// Append adds a sample to the end of the curve and reconciles indices.
func (c *Curve) Append(s Sample) {
	s.CurveID = c.ID
	s.IndexInCurve = len(c.samples)
	c.samples = append(c.samples, s)
}

// InsertAt inserts a sample before index i, shifting subsequent samples,
// and reconciles indices.
func (c *Curve) InsertAt(i int, s Sample) {
	if i < 0 {
		i = 0
	}
	if i > len(c.samples) {
		i = len(c.samples)
	}
	c.samples = append(c.samples, Sample{})
	copy(c.samples[i+1:], c.samples[i:])
	c.samples[i] = s
	c.reconcile()
}

// RemoveAt removes the sample at index i and reconciles indices.
func (c *Curve) RemoveAt(i int) {
	if i < 0 || i >= len(c.samples) {
		return
	}
	c.samples = append(c.samples[:i], c.samples[i+1:]...)
	c.reconcile()
}

// reconcile rewrites CurveID/IndexInCurve for every sample to match its
// current slice position.
func (c *Curve) reconcile() {
	for i := range c.samples {
		c.samples[i].CurveID = c.ID
		c.samples[i].IndexInCurve = i
	}
}

// AuditIndices reconciles any sample whose stored indices have drifted
// from its actual slice position, reporting through warn
// Returns the number of samples that needed reconciliation.
func (c *Curve) AuditIndices(warn func(format string, args...any)) int {
	fixed := 0
	for i := range c.samples {
		if c.samples[i].CurveID != c.ID || c.samples[i].IndexInCurve != i {
			if warn != nil {
				warn("reconciling stale sample index on curve %d at position %d", c.ID, i)
			}
			c.samples[i].CurveID = c.ID
			c.samples[i].IndexInCurve = i
			fixed++
		}
	}
	return fixed
}

// Segment is a consecutive sample pair (or the wrap-around pair on a
// closed curve), identified by the index of its first endpoint
type Segment struct {
	I, J int // sample indices: J = I+1, or 0 for the wrap segment
}

// Segments enumerates the curve's segments in order.
func (c *Curve) Segments() []Segment {
	n := len(c.samples)
	if n < 2 {
		return nil
	}
	segs := make([]Segment, 0, n)
	for i := 0; i < n-1; i++ {
		segs = append(segs, Segment{I: i, J: i + 1})
	}
	if c.Closed && n > 2 {
		segs = append(segs, Segment{I: n - 1, J: 0})
	}
	return segs
}

// Neighbors returns the previous and next sample indices for i, honoring
// wrap-around only when the curve is closed. ok is
// false for an endpoint of an open curve that has no such neighbor.
func (c *Curve) Neighbors(i int) (prev, next int, prevOK, nextOK bool) {
	n := len(c.samples)
	if n == 0 {
		return 0, 0, false, false
	}
	if i > 0 {
		prev, prevOK = i-1, true
	} else if c.Closed && n > 1 {
		prev, prevOK = n-1, true
	}
	if i < n-1 {
		next, nextOK = i+1, true
	} else if c.Closed && n > 1 {
		next, nextOK = 0, true
	}
	return
}

// CircularIndexDistance returns the topological distance between sample
// indices i and j on the curve, using circular distance on closed curves
func (c *Curve) CircularIndexDistance(i, j int) int {
	d := i - j
	if d < 0 {
		d = -d
	}
	if c.Closed {
		n := len(c.samples)
		if wrap := n - d; wrap < d {
			d = wrap
		}
	}
	return d
}
