// Package scene holds the scene tree that builder calls attach to.
//
// A tree starts with NewRoot. Every attachment call on a Building node
// computes a descriptor through the registry and records exactly one new
// entry: container kinds become child nodes, every other kind becomes a
// component Handle.
//
//	root, _ := scene.NewRoot(reg, "root", scene.WithParams(descriptor.Set("dt", 0.01)))
//	root.Add(kinds.EulerImplicitSolver{RayleighStiffness: kinds.Some(0.1)})
//	liver, _ := root.Child("liver")
//	liver.Object("MechanicalObject", descriptor.Set("template", "Vec3d"))
//
// Once the assembler has handed a node to the engine the node is Sealed and
// rejects every mutation with a *SealedNodeError. Owners discard sealed trees
// with Discard.
//
// Trees are not safe for concurrent use. Build one tree per goroutine; the
// frozen registry they share may be read concurrently.
package scene
