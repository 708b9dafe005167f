/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managers

import (
	"github.com/suparena/managedstore"
	"github.com/suparena/managedstore/attributes"
	"github.com/suparena/managedstore/document"
)

// PhysicsConfigExt is the fixed extension for physics manager config files.
const PhysicsConfigExt = ".physics_config.json"

// PhysicsAttributesManager manages PhysicsManagerAttributes loaded from
// *.physics_config.json files. Getters return copies.
type PhysicsAttributesManager struct {
	*managedstore.Manager[*attributes.PhysicsManagerAttributes]
}

// NewPhysicsAttributesManager creates a physics attributes manager.
func NewPhysicsAttributesManager(opts ...managedstore.Option) *PhysicsAttributesManager {
	m := &PhysicsAttributesManager{}
	m.Manager = managedstore.NewManager[*attributes.PhysicsManagerAttributes](
		"physics manager attributes", PhysicsConfigExt, managedstore.AccessCopy,
		attributes.NewPhysicsManagerAttributes, m.setValsFromDoc, opts...)
	return m
}

func (m *PhysicsAttributesManager) setValsFromDoc(obj *attributes.PhysicsManagerAttributes, doc *document.Object) {
	log := m.Logger()
	bindString(log, doc, "physics_simulator", obj.SetSimulator)
	bindFloat(log, doc, "timestep", obj.SetTimestep)
	bindVec3(log, doc, "gravity", obj.SetGravity)
	bindFloat(log, doc, "friction_coefficient", obj.SetFrictionCoefficient)
	bindFloat(log, doc, "restitution_coefficient", obj.SetRestitutionCoefficient)
	m.ParseUserDefined(obj, doc)
}
