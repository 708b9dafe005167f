/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managers

import (
	"github.com/suparena/managedstore"
	"github.com/suparena/managedstore/attributes"
	"github.com/suparena/managedstore/document"
)

// StageConfigExt is the fixed extension for stage template config files.
const StageConfigExt = ".stage_config.json"

// StageAttributesManager manages StageAttributes templates loaded from
// *.stage_config.json files. Getters return copies.
type StageAttributesManager struct {
	*managedstore.Manager[*attributes.StageAttributes]
}

// NewStageAttributesManager creates a stage attributes manager.
func NewStageAttributesManager(opts ...managedstore.Option) *StageAttributesManager {
	m := &StageAttributesManager{}
	m.Manager = managedstore.NewManager[*attributes.StageAttributes](
		"stage attributes", StageConfigExt, managedstore.AccessCopy,
		attributes.NewStageAttributes, m.setValsFromDoc, opts...)
	return m
}

func (m *StageAttributesManager) setValsFromDoc(obj *attributes.StageAttributes, doc *document.Object) {
	log := m.Logger()
	bindVec3(log, doc, "origin", obj.SetOrigin)
	bindVec3(log, doc, "gravity", obj.SetGravity)
	bindVec3(log, doc, "scale", obj.SetScale)
	bindFloat(log, doc, "friction_coefficient", obj.SetFrictionCoefficient)
	bindFloat(log, doc, "restitution_coefficient", obj.SetRestitutionCoefficient)
	bindFloat(log, doc, "units_to_meters", obj.SetUnitsToMeters)
	bindString(log, doc, "render_asset", obj.SetRenderAssetHandle)
	bindString(log, doc, "collision_asset", obj.SetCollisionAssetHandle)
	bindBool(log, doc, "force_flat_shading", obj.SetForceFlatShading)
	bindString(log, doc, "nav_asset", obj.SetNavmeshAssetHandle)
	bindString(log, doc, "semantic_asset", obj.SetSemanticAssetHandle)
	m.ParseUserDefined(obj, doc)
}
