package ports

import (
	"context"
	"testing"

	"github.com/aretw0/sofakit/pkg/assembler"
	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractPlan(sceneName string, totalMass float64) *plan.Plan {
	return &plan.Plan{
		Scene: sceneName,
		Operations: []assembler.Operation{
			{Op: assembler.OpCreateNode, Path: "/", Name: sceneName},
			{Op: assembler.OpConfigureNode, Path: "/", Kind: "Node", Params: descriptor.ParamsOf("name", sceneName, "gravity", []any{0.0, -9.81, 0.0})},
			{Op: assembler.OpCreateObject, Path: "/", Kind: "UniformMass", Params: descriptor.ParamsOf("totalMass", totalMass, "name", "mass")},
			{Op: assembler.OpCreateObject, Path: "/", Kind: "EulerImplicitSolver", Params: descriptor.NewParams()},
			{Op: assembler.OpSeal, Path: "/"},
		},
	}
}

// RunPlanStoreContract runs a suite of tests to verify that a PlanStore
// implementation adheres to the interface contract. The store must start empty.
func RunPlanStoreContract(t *testing.T, store PlanStore) {
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		p := contractPlan("liver", 1.5)
		require.NoError(t, store.Save(ctx, "liver", p))

		loaded, err := store.Load(ctx, "liver")
		require.NoError(t, err)
		assert.Equal(t, p.Scene, loaded.Scene)
		assert.True(t, plan.Diff(p, loaded).IsEmpty(), "stored plan differs:\n%s", plan.Diff(p, loaded))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "liver", contractPlan("liver", 2.5)))

		loaded, err := store.Load(ctx, "liver")
		require.NoError(t, err)
		v, _ := loaded.Operations[2].Params.Get("totalMass")
		assert.Equal(t, 2.5, v)
	})

	t.Run("Stored copy is detached", func(t *testing.T) {
		p := contractPlan("detached", 1.5)
		require.NoError(t, store.Save(ctx, "detached", p))
		p.Operations[2].Params.Set("totalMass", 9.5)

		loaded, err := store.Load(ctx, "detached")
		require.NoError(t, err)
		v, _ := loaded.Operations[2].Params.Get("totalMass")
		assert.Equal(t, 1.5, v)

		loaded.Operations = nil
		again, err := store.Load(ctx, "detached")
		require.NoError(t, err)
		assert.Len(t, again.Operations, 5)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent")
		assert.ErrorIs(t, err, ErrPlanNotFound)
	})

	t.Run("Invalid Name", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, "../escape", contractPlan("x", 1)), ErrInvalidPlanName)
		assert.ErrorIs(t, store.Save(ctx, "", contractPlan("x", 1)), ErrInvalidPlanName)
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "b-heart", contractPlan("heart", 1)))
		require.NoError(t, store.Save(ctx, "a-lung", contractPlan("lung", 1)))

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a-lung", "b-heart", "detached", "liver"}, names)
	})

	t.Run("Delete", func(t *testing.T) {
		for _, name := range []string{"liver", "detached", "a-lung", "b-heart"} {
			require.NoError(t, store.Delete(ctx, name))
		}
		require.NoError(t, store.Delete(ctx, "liver"), "deleting twice is not an error")

		_, err := store.Load(ctx, "liver")
		assert.ErrorIs(t, err, ErrPlanNotFound)

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, names)
	})
}
