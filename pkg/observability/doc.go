/*
Package observability exports Prometheus metrics for catalogs and assemblies.

Metrics plugs into the assembler through its Hooks, so any assembly run with
assembler.WithHooks(m.Hooks()) is counted and timed.
*/
package observability
