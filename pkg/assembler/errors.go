package assembler

import "fmt"

// AssemblyError reports the engine operation that stopped an assembly.
type AssemblyError struct {
	Path string
	Op   Op
	Kind string // Object kind for create_object, node kind otherwise
	Err  error
}

func (e *AssemblyError) Error() string {
	return fmt.Sprintf("assemble %s: %s %s: %v", e.Path, e.Op, e.Kind, e.Err)
}

func (e *AssemblyError) Unwrap() error { return e.Err }
