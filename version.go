package sofakit

import _ "embed"

// Version is the sofakit release, read from the VERSION file.
//
//go:embed VERSION
var Version string
