/*
Package attributes defines the managed object types stored by the
registry: a shared BaseAttributes carrying handle, ID, file provenance and
the nested configuration tree, plus the concrete template schemas
(ObjectAttributes, StageAttributes, PhysicsManagerAttributes).

All typed values live inside the configuration tree, so saving an
attributes object is exactly serializing its tree; the handle, ID and file
directory are registry metadata and stay out of the persisted document.

	obj := attributes.NewObjectAttributes("chair")
	obj.SetMass(2.5)
	obj.SetRenderAssetHandle("chair.glb")
	obj.UserConfig().Set("owner", "sim_team")

Each concrete type implements the managedstore.FileManaged contract, with
Clone producing an independent deep copy for by-copy containers.
*/
package attributes
