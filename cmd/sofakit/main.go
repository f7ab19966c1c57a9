// Command sofakit inspects component catalogs, turns scene documents into
// assembly plans and serves both over HTTP and MCP.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
