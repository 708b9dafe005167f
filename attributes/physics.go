/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attributes

// PhysicsManagerAttributes describes the global simulation settings a
// physics world is constructed with.
type PhysicsManagerAttributes struct {
	BaseAttributes
}

// NewPhysicsManagerAttributes creates physics manager attributes named
// handle with the standard defaults.
func NewPhysicsManagerAttributes(handle string) *PhysicsManagerAttributes {
	a := &PhysicsManagerAttributes{BaseAttributes: NewBaseAttributes(handle)}
	a.SetString("physics_simulator", "none")
	a.SetFloat("timestep", 0.008)
	a.SetVec3("gravity", [3]float64{0, -9.8, 0})
	a.SetFloat("friction_coefficient", 0.4)
	a.SetFloat("restitution_coefficient", 0.1)
	return a
}

// Clone returns an independent deep copy.
func (a *PhysicsManagerAttributes) Clone() *PhysicsManagerAttributes {
	return &PhysicsManagerAttributes{BaseAttributes: a.cloneBase()}
}

func (a *PhysicsManagerAttributes) SetSimulator(v string) { a.SetString("physics_simulator", v) }
func (a *PhysicsManagerAttributes) Simulator() string     { return a.String("physics_simulator") }

func (a *PhysicsManagerAttributes) SetTimestep(v float64) { a.SetFloat("timestep", v) }
func (a *PhysicsManagerAttributes) Timestep() float64     { return a.Float("timestep") }

func (a *PhysicsManagerAttributes) SetGravity(v [3]float64) { a.SetVec3("gravity", v) }
func (a *PhysicsManagerAttributes) Gravity() [3]float64     { return a.Vec3("gravity") }

func (a *PhysicsManagerAttributes) SetFrictionCoefficient(v float64) {
	a.SetFloat("friction_coefficient", v)
}
func (a *PhysicsManagerAttributes) FrictionCoefficient() float64 {
	return a.Float("friction_coefficient")
}

func (a *PhysicsManagerAttributes) SetRestitutionCoefficient(v float64) {
	a.SetFloat("restitution_coefficient", v)
}
func (a *PhysicsManagerAttributes) RestitutionCoefficient() float64 {
	return a.Float("restitution_coefficient")
}
