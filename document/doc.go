/*
Package document provides the generic, order-preserving document tree that
backs every managed object's configuration, together with the file codecs
that read and write it.

A document is a tree of Values: strings, int64/float64 numbers, booleans,
nulls, Arrays and nested *Objects. Object keys iterate in the order they
appeared in the source file, and that order survives a save/load round trip.

Basic Usage:

	obj := document.NewObject()
	obj.Set("mass", 2.5)
	obj.Set("render_asset", "chair.glb")
	obj.SetVec3("scale", [3]float64{1, 1, 1})

	mass, ok := obj.Float("mass")
	keys := obj.Keys() // ["mass", "render_asset", "scale"]

Codecs:

The Codec interface is the registry's only contact with serialization, so
formats can be swapped without touching registry logic:

	var c document.Codec = document.JSONCodec{}    // default
	c = document.YAMLCodec{IndentWidth: 2}         // alternate format

	obj, err := c.DecodeFile("chair.object_config.json")
	err = c.EncodeFile("out/chair.object_config.json", obj)

Merging:

Merge copies another object's settings in verbatim and reports how many
settings were merged, which drives the user_defined sub-tree handling in
the attributes managers:

	n := target.Merge(userDefined)
*/
package document
