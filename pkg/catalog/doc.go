// Package catalog holds the declarative list of component kinds and loads
// catalogs into a registry.
//
// A catalog is a YAML, JSON or HCL file listing kinds in order, each with its
// ordered parameters:
//
//	catalog: core
//	kinds:
//	  - kind: EulerImplicitSolver
//	    description: Time integrator using the implicit backward Euler scheme.
//	    params:
//	      - {name: rayleighStiffness, type: float, description: ...}
//
// or, in HCL:
//
//	kind "GeomagicDriver" {
//	  param "deviceName" {
//	    type = "string"
//	  }
//	}
//
// The core catalog and the gpu and haptics extensions are embedded.
// Extensions may repeat a core kind verbatim but never redefine it.
package catalog
