// Package descriptor turns a kind's schema and the keyword arguments of one
// builder call into a canonical (kind, params) Descriptor.
//
//	d, warnings := descriptor.Build(eulerSchema,
//	    descriptor.Set("rayleighStiffness", 0.1),
//	    descriptor.Set("rayleighMass", descriptor.Unset),
//	)
//	// d.Kind == "EulerImplicitSolver", d.Params == {"rayleighStiffness": 0.1}
//
// Unset arguments never reach the descriptor; explicit zero values always do.
// Names outside the schema pass through so that scenes can use engine
// parameters newer than the catalog.
package descriptor
