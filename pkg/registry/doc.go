// Package registry holds the process-wide table from kind name to schema.
//
// A Registry is created once at startup, filled by walking every catalog,
// frozen and then handed by reference to whatever builds scenes. Lookups of
// unknown kinds fail immediately with a *LookupError.
package registry
