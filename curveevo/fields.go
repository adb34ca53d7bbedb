package curveevo

import "github.com/labyrinthine/maze-engine/field"

// FieldSet bundles the four spatially-varying ParameterFields that drive
// curve evolution.
//
//   - Brownian  (fB) — Brownian noise amplitude
//   - Fairing   (fF) — Laplacian fairing strength
//   - Attract   (fA) — attraction-repulsion strength
//   - Anisotropy (fg) — gradient-warp potential
type FieldSet struct {
	Brownian   *field.Field
	Fairing    *field.Field
	Attract    *field.Field
	Anisotropy *field.Field
}

// ConstantFieldSet builds a FieldSet of uniform fields over [minX,maxX] x
// [minY,maxY] with the given constant values, useful as a default when no
// spatial variation has been painted in yet.
func ConstantFieldSet(w, h int, minX, minY, maxX, maxY, brownian, fairing, attract, anisotropy float64) FieldSet {
	return FieldSet{
		Brownian:   field.New(w, h, minX, minY, maxX, maxY, brownian),
		Fairing:    field.New(w, h, minX, minY, maxX, maxY, fairing),
		Attract:    field.New(w, h, minX, minY, maxX, maxY, attract),
		Anisotropy: field.New(w, h, minX, minY, maxX, maxY, anisotropy),
	}
}
