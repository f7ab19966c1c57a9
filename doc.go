/*
Package sofakit builds physics-simulation scene descriptions from a
schema-driven catalog of component kinds.

It separates three concerns: the catalog (which kinds exist and which
parameters they declare, in order), the scene tree (containers holding
components and child containers, filled through builder calls) and the
hand-off of a finished tree to a simulation engine, after which the tree is
sealed.

# Concept

Every kind is described by a schema: an ordered list of optional parameters.
A builder call produces a descriptor holding the kind and the parameters that
were actually given, declared ones first in schema order. Parameters the
schema does not know are passed through as extras so that scenes written for
newer engines keep working. Giving a parameter twice is not an error; the
later value wins and a warning is reported.

# Key Features

  - Catalog-driven: kinds come from YAML, JSON or HCL catalogs, embedded or on disk.
  - Deterministic: the same tree always produces the same operations and the same plan bytes.
  - Sealed hand-off: once assembled, a tree rejects further attachments.
  - Pluggable engines: anything implementing assembler.Engine can receive a tree.

# Usage

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/sofakit"
		"github.com/aretw0/sofakit/pkg/plan"
	)

	func main() {
		kit, err := sofakit.New(sofakit.WithExtensions("gpu"))
		if err != nil {
			log.Fatal(err)
		}

		root, err := kit.LoadSceneFile("liver.yaml")
		if err != nil {
			log.Fatal(err)
		}

		p, err := kit.Plan(context.Background(), root)
		if err != nil {
			log.Fatal(err)
		}
		_ = p.Encode(os.Stdout, plan.FormatYAML)
	}

The cmd/sofakit command wraps the same flow behind a CLI, an HTTP API and an
MCP server.
*/
package sofakit
