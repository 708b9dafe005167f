/*
Package managers provides the concrete attributes managers built on the
generic managedstore framework: one manager per config category, each
wiring its attributes constructor, document binder and fixed file
extension onto managedstore.Manager.

	objMgr := managers.NewObjectAttributesManager()
	stageMgr := managers.NewStageAttributesManager()
	physMgr := managers.NewPhysicsAttributesManager()

	hub := managedstore.NewHub()
	hub.RegisterManager("objects", objMgr)
	hub.RegisterManager("stages", stageMgr)
	hub.RegisterManager("physics", physMgr)

	// Load every object config under a dataset, protecting them as
	// defaults
	ids := objMgr.LoadAllConfigsFromPath("data/objects", true)

Binding is tolerant per field: a config document only overrides the fields
it carries with correctly-typed values, and everything else keeps its
default. A document's reserved "user_defined" object is merged verbatim
into the attributes' user configuration.
*/
package managers
