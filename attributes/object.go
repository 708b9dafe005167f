/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attributes

// ObjectAttributes describes a rigid object template: its render and
// collision assets, physical coefficients and display state.
type ObjectAttributes struct {
	BaseAttributes
}

// NewObjectAttributes creates object attributes named handle with the
// standard defaults.
func NewObjectAttributes(handle string) *ObjectAttributes {
	a := &ObjectAttributes{BaseAttributes: NewBaseAttributes(handle)}
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
	a.SetBool("use_mesh_collision", true)
	a.SetFloat("mass", 1.0)
	a.SetVec3("COM", [3]float64{0, 0, 0})
	a.SetVec3("inertia", [3]float64{0, 0, 0})
	a.SetFloat("linear_damping", 0.2)
	a.SetFloat("angular_damping", 0.2)
	a.SetInt("semantic_id", 0)
	return a
}

// Clone returns an independent deep copy.
func (a *ObjectAttributes) Clone() *ObjectAttributes {
	return &ObjectAttributes{BaseAttributes: a.cloneBase()}
}

func (a *ObjectAttributes) SetScale(v [3]float64) { a.SetVec3("scale", v) }
func (a *ObjectAttributes) Scale() [3]float64     { return a.Vec3("scale") }

func (a *ObjectAttributes) SetMargin(v float64) { a.SetFloat("margin", v) }
func (a *ObjectAttributes) Margin() float64     { return a.Float("margin") }

func (a *ObjectAttributes) SetFrictionCoefficient(v float64) {
	a.SetFloat("friction_coefficient", v)
}
func (a *ObjectAttributes) FrictionCoefficient() float64 {
	return a.Float("friction_coefficient")
}

func (a *ObjectAttributes) SetRestitutionCoefficient(v float64) {
	a.SetFloat("restitution_coefficient", v)
}
func (a *ObjectAttributes) RestitutionCoefficient() float64 {
	return a.Float("restitution_coefficient")
}

func (a *ObjectAttributes) SetOrientUp(v [3]float64) { a.SetVec3("orient_up", v) }
func (a *ObjectAttributes) OrientUp() [3]float64     { return a.Vec3("orient_up") }

func (a *ObjectAttributes) SetOrientFront(v [3]float64) { a.SetVec3("orient_front", v) }
func (a *ObjectAttributes) OrientFront() [3]float64     { return a.Vec3("orient_front") }

func (a *ObjectAttributes) SetUnitsToMeters(v float64) { a.SetFloat("units_to_meters", v) }
func (a *ObjectAttributes) UnitsToMeters() float64     { return a.Float("units_to_meters") }

func (a *ObjectAttributes) SetIsVisible(v bool) { a.SetBool("is_visible", v) }
func (a *ObjectAttributes) IsVisible() bool     { return a.Bool("is_visible") }

func (a *ObjectAttributes) SetIsCollidable(v bool) { a.SetBool("is_collidable", v) }
func (a *ObjectAttributes) IsCollidable() bool     { return a.Bool("is_collidable") }

func (a *ObjectAttributes) SetRenderAssetHandle(v string) { a.SetString("render_asset", v) }
func (a *ObjectAttributes) RenderAssetHandle() string     { return a.String("render_asset") }

func (a *ObjectAttributes) SetCollisionAssetHandle(v string) {
	a.SetString("collision_asset", v)
}
func (a *ObjectAttributes) CollisionAssetHandle() string {
	return a.String("collision_asset")
}

func (a *ObjectAttributes) SetUseMeshCollision(v bool) { a.SetBool("use_mesh_collision", v) }
func (a *ObjectAttributes) UseMeshCollision() bool     { return a.Bool("use_mesh_collision") }

func (a *ObjectAttributes) SetMass(v float64) { a.SetFloat("mass", v) }
func (a *ObjectAttributes) Mass() float64     { return a.Float("mass") }

func (a *ObjectAttributes) SetCOM(v [3]float64) { a.SetVec3("COM", v) }
func (a *ObjectAttributes) COM() [3]float64     { return a.Vec3("COM") }

func (a *ObjectAttributes) SetInertia(v [3]float64) { a.SetVec3("inertia", v) }
func (a *ObjectAttributes) Inertia() [3]float64     { return a.Vec3("inertia") }

func (a *ObjectAttributes) SetLinearDamping(v float64) { a.SetFloat("linear_damping", v) }
func (a *ObjectAttributes) LinearDamping() float64     { return a.Float("linear_damping") }

func (a *ObjectAttributes) SetAngularDamping(v float64) { a.SetFloat("angular_damping", v) }
func (a *ObjectAttributes) AngularDamping() float64     { return a.Float("angular_damping") }

func (a *ObjectAttributes) SetSemanticID(v int64) { a.SetInt("semantic_id", v) }
func (a *ObjectAttributes) SemanticID() int64     { return a.Int("semantic_id") }
