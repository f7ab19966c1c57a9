package sofakit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/sofakit/pkg/assembler"
	"github.com/aretw0/sofakit/pkg/catalog"
	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/aretw0/sofakit/pkg/scene"
	"github.com/aretw0/sofakit/pkg/scenefile"
)

// Kit is the high-level entry point for the sofakit library.
// It owns a frozen registry and builds scene trees against it.
type Kit struct {
	registry   *registry.Registry
	extensions []string
	files      []string
	hooks      assembler.Hooks
	logger     *slog.Logger
}

// Option defines a functional option for configuring a Kit.
type Option func(*Kit)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(k *Kit) {
		k.logger = logger
	}
}

// WithExtensions loads the named embedded catalogs on top of core.
func WithExtensions(names ...string) Option {
	return func(k *Kit) {
		k.extensions = append(k.extensions, names...)
	}
}

// WithCatalogFiles loads catalog files from disk after the embedded ones.
func WithCatalogFiles(paths ...string) Option {
	return func(k *Kit) {
		k.files = append(k.files, paths...)
	}
}

// WithRegistry injects a ready registry, bypassing catalog loading.
// The registry is frozen if it is not already.
func WithRegistry(reg *registry.Registry) Option {
	return func(k *Kit) {
		k.registry = reg
	}
}

// WithHooks registers assembly hooks used by Assemble and Plan.
func WithHooks(h assembler.Hooks) Option {
	return func(k *Kit) {
		k.hooks = k.hooks.Merge(h)
	}
}

// New loads the catalogs and returns a Kit over the resulting registry.
// A broken catalog (duplicate parameters, a kind conflicting with an
// earlier catalog) aborts loading.
func New(opts ...Option) (*Kit, error) {
	k := &Kit{}
	for _, opt := range opts {
		opt(k)
	}

	if k.registry == nil {
		reg := registry.New()
		if err := catalog.LoadBuiltin(reg, k.extensions...); err != nil {
			return nil, fmt.Errorf("failed to load catalogs: %w", err)
		}
		for _, path := range k.files {
			if err := catalog.LoadFile(reg, path); err != nil {
				return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
			}
		}
		k.registry = reg
	}
	k.registry.Freeze()

	k.log().Debug("registry ready", "kinds", k.registry.Len(), "extensions", k.extensions, "files", len(k.files))
	return k, nil
}

// Registry returns the frozen registry.
func (k *Kit) Registry() *registry.Registry {
	return k.registry
}

// NewScene creates an empty root node.
func (k *Kit) NewScene(name string, opts ...scene.Option) (*scene.Node, error) {
	return scene.NewRoot(k.registry, name, k.sceneOptions(opts)...)
}

// LoadScene reads a scene document from r and builds its tree.
func (k *Kit) LoadScene(r io.Reader, opts ...scene.Option) (*scene.Node, error) {
	return scenefile.Load(k.registry, r, k.sceneOptions(opts)...)
}

// LoadSceneFile reads the scene document at path and builds its tree.
func (k *Kit) LoadSceneFile(path string, opts ...scene.Option) (*scene.Node, error) {
	doc, err := scenefile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return scenefile.Build(k.registry, doc, k.sceneOptions(opts)...)
}

// Assemble hands root to engine and seals the tree.
func (k *Kit) Assemble(ctx context.Context, root *scene.Node, engine assembler.Engine) error {
	return assembler.Assemble(ctx, root, engine, k.assemblerOptions()...)
}

// Plan assembles root into a recorder and returns the resulting plan.
func (k *Kit) Plan(ctx context.Context, root *scene.Node) (*plan.Plan, error) {
	return plan.Build(ctx, root, k.assemblerOptions()...)
}

func (k *Kit) log() *slog.Logger {
	if k.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return k.logger
}

// sceneOptions leaves the scene's own default logger in place unless one
// was configured, so that parameter conflicts are never silenced.
func (k *Kit) sceneOptions(opts []scene.Option) []scene.Option {
	if k.logger == nil {
		return opts
	}
	return append([]scene.Option{scene.WithLogger(k.logger)}, opts...)
}

func (k *Kit) assemblerOptions() []assembler.Option {
	return []assembler.Option{
		assembler.WithLogger(k.log()),
		assembler.WithHooks(k.hooks),
	}
}
