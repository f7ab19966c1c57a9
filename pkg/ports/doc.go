/*
Package ports defines the driven ports of sofakit.

# Key Interfaces

  - PlanStore: persists recorded assembly plans under a name (memory, file or Redis).

RunPlanStoreContract verifies any PlanStore implementation against the
behaviour callers rely on.
*/
package ports
