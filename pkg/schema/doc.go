// Package schema describes the parameters a component kind accepts.
//
// A Schema is extracted once from a catalog Declaration and never changes
// afterwards. It keeps the parameters in the order they were declared,
// together with their free-text description and an optional type hint:
//
//	s, err := schema.New("EulerImplicitSolver",
//	    schema.Parameter{Name: "rayleighStiffness", Type: schema.Float(),
//	        Description: "Rayleigh damping coefficient related to stiffness"},
//	    schema.Parameter{Name: "rayleighMass", Type: schema.Float()},
//	)
//
// Every parameter is optional. Type hints are documentation first; Check
// offers an opt-in lint over a set of values but the descriptor builder
// never calls it.
//
// Declaring the same parameter twice fails with a *SchemaError wrapping
// ErrDuplicateParameter.
package schema
