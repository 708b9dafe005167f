/*
Package managedstore provides a generic, handle-indexed registry framework
for file-backed configuration objects, offering type-safe registration,
protected defaults, collision-safe persistence and bulk directory/glob
driven loading.

The framework is three layers, each generic over the managed object type:

  - Container: owns the collection, maps handles to objects and stable
    numeric IDs back to handles, tracks the protected set, and applies the
    container's copy-vs-share access policy on every getter.
  - FileContainer: adds config-file load/save through a document codec,
    filename normalization against the container's fixed extension, and
    collision-avoiding " (copy NNNN)" save naming.
  - Manager: adds the type-specific document binding hook, user_defined
    sub-configuration merging, and batch/glob bulk loading.

Key Features:
  - Type-safe operations using Go generics
  - Per-container by-copy or by-reference getter semantics
  - Protected/default objects that survive the normal delete path
  - Monotonic, never-reused object IDs
  - Order-preserving document trees, serialized as JSON or YAML
  - Sentinel-value failure reporting with structured zap diagnostics

Basic Usage:

	// Create a manager for object configs
	mgr := managers.NewObjectAttributesManager()

	// Bulk-load every *.object_config.json in a directory as protected
	// defaults
	ids := mgr.LoadAllConfigsFromPath("data/objects", true)

	// Look up and edit a copy
	obj, ok := mgr.GetByHandle("data/objects/chair.object_config.json")

	// Save it back without clobbering the original file
	err := mgr.SaveObject(obj.Handle(), false)

Managers for different attribute types register under one Hub:

	hub := managedstore.NewHub()
	hub.RegisterManager("objects", mgr)

All access is caller-serialized: the framework performs no locking and no
operation blocks on anything but file I/O.
*/
package managedstore
