/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managers

import (
	"github.com/suparena/managedstore"
	"github.com/suparena/managedstore/attributes"
	"github.com/suparena/managedstore/document"
)

// ObjectConfigExt is the fixed extension for object template config files.
const ObjectConfigExt = ".object_config.json"

// ObjectAttributesManager manages ObjectAttributes templates loaded from
// *.object_config.json files. Getters return copies.
type ObjectAttributesManager struct {
	*managedstore.Manager[*attributes.ObjectAttributes]
}

// NewObjectAttributesManager creates an object attributes manager.
func NewObjectAttributesManager(opts ...managedstore.Option) *ObjectAttributesManager {
	m := &ObjectAttributesManager{}
	m.Manager = managedstore.NewManager[*attributes.ObjectAttributes](
		"object attributes", ObjectConfigExt, managedstore.AccessCopy,
		attributes.NewObjectAttributes, m.setValsFromDoc, opts...)
	return m
}

// setValsFromDoc populates obj from doc, field by field.
func (m *ObjectAttributesManager) setValsFromDoc(obj *attributes.ObjectAttributes, doc *document.Object) {
	log := m.Logger()
	bindVec3(log, doc, "scale", obj.SetScale)
	bindFloat(log, doc, "margin", obj.SetMargin)
	bindFloat(log, doc, "friction_coefficient", obj.SetFrictionCoefficient)
	bindFloat(log, doc, "restitution_coefficient", obj.SetRestitutionCoefficient)
	bindVec3(log, doc, "orient_up", obj.SetOrientUp)
	bindVec3(log, doc, "orient_front", obj.SetOrientFront)
	bindFloat(log, doc, "units_to_meters", obj.SetUnitsToMeters)
	bindBool(log, doc, "is_visible", obj.SetIsVisible)
	bindBool(log, doc, "is_collidable", obj.SetIsCollidable)
	bindString(log, doc, "render_asset", obj.SetRenderAssetHandle)
	bindString(log, doc, "collision_asset", obj.SetCollisionAssetHandle)
	bindBool(log, doc, "use_mesh_collision", obj.SetUseMeshCollision)
	bindFloat(log, doc, "mass", obj.SetMass)
	bindVec3(log, doc, "COM", obj.SetCOM)
	bindVec3(log, doc, "inertia", obj.SetInertia)
	bindFloat(log, doc, "linear_damping", obj.SetLinearDamping)
	bindFloat(log, doc, "angular_damping", obj.SetAngularDamping)
	bindInt(log, doc, "semantic_id", obj.SetSemanticID)
	m.ParseUserDefined(obj, doc)
}
