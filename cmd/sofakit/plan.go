package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/sofakit/internal/config"
	"github.com/aretw0/sofakit/internal/presentation/graph"
	"github.com/aretw0/sofakit/pkg/assembler"
	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/aretw0/sofakit/pkg/scene"
	"github.com/spf13/cobra"
)

const formatMermaid = "mermaid"

func newPlanCmd(a *app) *cobra.Command {
	var output, save string
	var lint bool

	cmd := &cobra.Command{
		Use:   "plan <scene>",
		Short: "Build a scene document into an assembly plan",
		Long: `Reads a YAML or JSON scene document ('-' for stdin), builds its tree and
records the operations an engine would receive.

Output formats:
- json (default), yaml: the plan itself
- mermaid: a flowchart of the assembled tree

With --lint, parameter values are checked against the catalog type hints
first and the command fails without a plan if any does not match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case string(plan.FormatJSON), string(plan.FormatYAML), formatMermaid:
			default:
				return fmt.Errorf("unknown output format %q (want json, yaml or mermaid)", output)
			}

			root, err := a.loadScene(cmd, args[0])
			if err != nil {
				return err
			}
			if lint {
				if err := reportLint(cmd, root); err != nil {
					return err
				}
			}

			p, err := a.kit.Plan(cmd.Context(), root)
			if err != nil {
				var ae *assembler.AssemblyError
				if errors.As(err, &ae) && output == formatMermaid {
					fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(root, &graph.Overlay{Highlight: []string{ae.Path}}))
				}
				return err
			}

			if save != "" {
				if err := a.savePlan(cmd, save, p); err != nil {
					return err
				}
			}

			if output == formatMermaid {
				_, err = fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(root, nil))
				return err
			}
			return p.Encode(cmd.OutOrStdout(), plan.Format(output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(plan.FormatJSON), "Output format: json, yaml or mermaid")
	cmd.Flags().StringVar(&save, "save", "", "Also save the plan in the configured store under this name")
	cmd.Flags().BoolVar(&lint, "lint", false, "Check parameter values against the catalog type hints first")
	return cmd
}

// reportLint prints every lint issue of root to stderr.
func reportLint(cmd *cobra.Command, root *scene.Node) error {
	issues := root.Lint()
	if len(issues) == 0 {
		return nil
	}
	for _, issue := range issues {
		fmt.Fprintf(cmd.ErrOrStderr(), "lint: %v\n", issue)
	}
	return fmt.Errorf("scene failed lint with %d issue(s)", len(issues))
}

// loadScene builds the tree of the scene document at path, or stdin for "-".
func (a *app) loadScene(cmd *cobra.Command, path string) (*scene.Node, error) {
	if path == "-" {
		return a.kit.LoadScene(cmd.InOrStdin())
	}
	return a.kit.LoadSceneFile(path)
}

func (a *app) savePlan(cmd *cobra.Command, name string, p *plan.Plan) error {
	if a.cfg.Store.Backend == config.BackendMemory {
		a.logger.Warn("plan saved to the memory store is lost on exit", "name", name)
	}
	store, closeStore := openStore(a.cfg.Store)
	defer closeStore()

	if err := store.Save(cmd.Context(), name, p); err != nil {
		return fmt.Errorf("failed to save plan %q: %w", name, err)
	}
	a.logger.Info("plan saved", "name", name, "backend", a.cfg.Store.Backend)
	return nil
}

// readPlan loads a plan from a file when path exists, or from the store.
func (a *app) readPlan(cmd *cobra.Command, ref string) (*plan.Plan, error) {
	if _, err := os.Stat(ref); err == nil {
		f, err := os.Open(ref)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodePlanFile(f, ref)
	}

	store, closeStore := openStore(a.cfg.Store)
	defer closeStore()
	p, err := store.Load(cmd.Context(), ref)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", ref, err)
	}
	return p, nil
}

func decodePlanFile(r io.Reader, path string) (*plan.Plan, error) {
	format := plan.FormatJSON
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		format = plan.FormatYAML
	}
	p, err := plan.Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	return p, nil
}
