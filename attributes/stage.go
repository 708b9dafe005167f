/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attributes

// StageAttributes describes a stage template: the static environment an
// application loads objects into.
type StageAttributes struct {
	BaseAttributes
}

// NewStageAttributes creates stage attributes named handle with the
// standard defaults.
func NewStageAttributes(handle string) *StageAttributes {
	a := &StageAttributes{BaseAttributes: NewBaseAttributes(handle)}
	a.SetVec3("origin", [3]float64{0, 0, 0})
	a.SetVec3("gravity", [3]float64{0, -9.8, 0})
	a.SetVec3("scale", [3]float64{1, 1, 1})
	a.SetFloat("margin", 0.04)
	a.SetFloat("friction_coefficient", 0.5)
	a.SetFloat("restitution_coefficient", 0.1)
	a.SetVec3("orient_up", [3]float64{0, 1, 0})
	a.SetVec3("orient_front", [3]float64{0, 0, -1})
	a.SetFloat("units_to_meters", 1.0)
	a.SetBool("is_visible", true)
	a.SetBool("is_collidable", true)
	a.SetString("render_asset", "")
	a.SetString("collision_asset", "")
	a.SetBool("force_flat_shading", true)
	a.SetString("nav_asset", "")
	a.SetString("semantic_asset", "")
	return a
}

// Clone returns an independent deep copy.
func (a *StageAttributes) Clone() *StageAttributes {
	return &StageAttributes{BaseAttributes: a.cloneBase()}
}

func (a *StageAttributes) SetOrigin(v [3]float64) { a.SetVec3("origin", v) }
func (a *StageAttributes) Origin() [3]float64     { return a.Vec3("origin") }

func (a *StageAttributes) SetGravity(v [3]float64) { a.SetVec3("gravity", v) }
func (a *StageAttributes) Gravity() [3]float64     { return a.Vec3("gravity") }

func (a *StageAttributes) SetScale(v [3]float64) { a.SetVec3("scale", v) }
func (a *StageAttributes) Scale() [3]float64     { return a.Vec3("scale") }

func (a *StageAttributes) SetFrictionCoefficient(v float64) {
	a.SetFloat("friction_coefficient", v)
}
func (a *StageAttributes) FrictionCoefficient() float64 {
	return a.Float("friction_coefficient")
}

func (a *StageAttributes) SetRestitutionCoefficient(v float64) {
	a.SetFloat("restitution_coefficient", v)
}
func (a *StageAttributes) RestitutionCoefficient() float64 {
	return a.Float("restitution_coefficient")
}

func (a *StageAttributes) SetUnitsToMeters(v float64) { a.SetFloat("units_to_meters", v) }
func (a *StageAttributes) UnitsToMeters() float64     { return a.Float("units_to_meters") }

func (a *StageAttributes) SetRenderAssetHandle(v string) { a.SetString("render_asset", v) }
func (a *StageAttributes) RenderAssetHandle() string     { return a.String("render_asset") }

func (a *StageAttributes) SetCollisionAssetHandle(v string) {
	a.SetString("collision_asset", v)
}
func (a *StageAttributes) CollisionAssetHandle() string {
	return a.String("collision_asset")
}

func (a *StageAttributes) SetForceFlatShading(v bool) { a.SetBool("force_flat_shading", v) }
func (a *StageAttributes) ForceFlatShading() bool     { return a.Bool("force_flat_shading") }

func (a *StageAttributes) SetNavmeshAssetHandle(v string) { a.SetString("nav_asset", v) }
func (a *StageAttributes) NavmeshAssetHandle() string     { return a.String("nav_asset") }

func (a *StageAttributes) SetSemanticAssetHandle(v string) { a.SetString("semantic_asset", v) }
func (a *StageAttributes) SemanticAssetHandle() string     { return a.String("semantic_asset") }
