package sofakit_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/sofakit"
	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/kinds"
	"github.com/aretw0/sofakit/pkg/scene"
)

// Example builds a small tree with both the generic and the typed builder
// calls and prints the operations an engine would receive.
func Example() {
	kit, err := sofakit.New()
	if err != nil {
		log.Fatal(err)
	}

	root, err := kit.NewScene("root", scene.WithParams(descriptor.Set("dt", 0.02)))
	if err != nil {
		log.Fatal(err)
	}
	if _, err := root.Object("DefaultAnimationLoop"); err != nil {
		log.Fatal(err)
	}

	liver, err := root.Child("liver")
	if err != nil {
		log.Fatal(err)
	}
	if _, err := liver.Add(kinds.EulerImplicitSolver{RayleighMass: kinds.Some(0.1)}); err != nil {
		log.Fatal(err)
	}
	if _, err := liver.Object("MechanicalObject", descriptor.Set("template", "Vec3d"), descriptor.Set("name", "dofs")); err != nil {
		log.Fatal(err)
	}

	p, err := kit.Plan(context.Background(), root)
	if err != nil {
		log.Fatal(err)
	}
	for _, op := range p.Operations {
		fmt.Println(op)
	}

	// Output:
	// create_node /
	// configure_node /{"name":"root","dt":0.02}
	// create_object / DefaultAnimationLoop{}
	// create_node /liver
	// configure_node /liver{"name":"liver"}
	// create_object /liver EulerImplicitSolver{"rayleighMass":0.1}
	// create_object /liver MechanicalObject{"name":"dofs","template":"Vec3d"}
	// seal /liver
	// seal /
}
