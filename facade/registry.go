package facade

// SubsystemInfo describes a facade-owned subsystem for introspection/HUD
// display.
type SubsystemInfo struct {
	ID          string
	Name        string
	Description string
	Category    string
}

// Registry centralizes subsystem naming so the HUD and any future
// perf/introspection overlay stay in sync.
type Registry struct {
	subsystems []SubsystemInfo
	byID       map[string]SubsystemInfo
}

// newRegistry builds a Registry populated with the maze engine's fixed
// subsystem list.
func newRegistry() *Registry {
	r := &Registry{byID: make(map[string]SubsystemInfo)}
	r.register(SubsystemInfo{ID: "solver", Name: "Constraint Solver", Description: "Verlet integration, distance-constraint relaxation, contact resolution", Category: "grid"})
	r.register(SubsystemInfo{ID: "gridSpatial", Name: "Grid Spatial Index", Description: "Uniform-grid neighbor lookup for particles", Category: "grid"})
	r.register(SubsystemInfo{ID: "curveevo", Name: "Curve Evolver", Description: "Brownian/fairing/attraction-repulsion/anisotropy force pipeline", Category: "curve"})
	r.register(SubsystemInfo{ID: "curveSpatial", Name: "Curve Spatial Index", Description: "Uniform-grid neighbor lookup for curve segments", Category: "curve"})
	r.register(SubsystemInfo{ID: "resample", Name: "Adaptive Resampling", Description: "Split/merge of curve samples to maintain spacing bounds", Category: "curve"})
	r.register(SubsystemInfo{ID: "fields", Name: "Parameter Fields", Description: "Spatially-varying Brownian/fairing/attraction/anisotropy strengths", Category: "curve"})
	r.register(SubsystemInfo{ID: "gridHistory", Name: "Grid History", Description: "Undo/redo snapshots of the particle/constraint system", Category: "history"})
	r.register(SubsystemInfo{ID: "curveHistory", Name: "Curve History", Description: "Undo/redo snapshots of the curve set", Category: "history"})
	r.register(SubsystemInfo{ID: "mazeio", Name: "Maze I/O", Description: "JSON import/export of the particle/constraint system", Category: "io"})
	r.register(SubsystemInfo{ID: "telemetry", Name: "Telemetry", Description: "FPS/count tracking and CSV export", Category: "io"})
	return r
}

func (r *Registry) register(info SubsystemInfo) {
	r.subsystems = append(r.subsystems, info)
	r.byID[info.ID] = info
}

// Get returns subsystem info by ID.
func (r *Registry) Get(id string) (SubsystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// Name returns the display name for a subsystem ID, falling back to the
// ID itself if not found.
func (r *Registry) Name(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns every registered subsystem, in registration order.
func (r *Registry) All() []SubsystemInfo {
	return r.subsystems
}

// ByCategory returns subsystems filtered by category.
func (r *Registry) ByCategory(category string) []SubsystemInfo {
	var out []SubsystemInfo
	for _, info := range r.subsystems {
		if info.Category == category {
			out = append(out, info)
		}
	}
	return out
}

// Categories returns every unique category, in first-seen order.
func (r *Registry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, info := range r.subsystems {
		if !seen[info.Category] {
			seen[info.Category] = true
			cats = append(cats, info.Category)
		}
	}
	return cats
}
