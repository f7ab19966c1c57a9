package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/sofakit"
	"github.com/aretw0/sofakit/internal/presentation/docs"
	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/aretw0/sofakit/pkg/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI names the resource holding every registered schema.
const CatalogURI = "sofakit://catalog"

// KindSummary is one entry of the list_kinds result.
type KindSummary struct {
	Kind        string `json:"kind" jsonschema_description:"Kind name"`
	Description string `json:"description,omitempty" jsonschema_description:"One-line description of the kind"`
	Container   bool   `json:"container,omitempty" jsonschema_description:"True for kinds that hold children"`
	Source      string `json:"source,omitempty" jsonschema_description:"Catalog the kind was loaded from"`
}

// KindList is the list_kinds result.
type KindList struct {
	Kinds []KindSummary `json:"kinds" jsonschema_description:"Registered kinds sorted by name"`
}

// ListKindsArgs are the arguments of list_kinds.
type ListKindsArgs struct {
	Filter string `json:"filter,omitempty"`
}

// BuildDescriptorArgs are the arguments of build_descriptor.
type BuildDescriptorArgs struct {
	Kind   string `json:"kind"`
	Params string `json:"params,omitempty"`
	Extra  string `json:"extra,omitempty"`
}

// DescriptorResult is the build_descriptor result.
type DescriptorResult struct {
	Descriptor descriptor.Descriptor `json:"descriptor"`
	Warnings   []string              `json:"warnings,omitempty"`
}

// catalogEntry is one item of the catalog resource.
type catalogEntry struct {
	Schema    *schema.Schema `json:"schema"`
	Container bool           `json:"container,omitempty"`
	Source    string         `json:"source,omitempty"`
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// Server exposes a component registry as an MCP server, so that editors and
// assistants can browse kinds and try builder calls.
type Server struct {
	registry  *registry.Registry
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(reg *registry.Registry, opts ...Option) *Server {
	s := &Server{
		registry:  reg,
		logger:    slog.New(slog.DiscardHandler),
		mcpServer: server.NewMCPServer("sofakit-mcp", strings.TrimSpace(sofakit.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves over SSE on addr until ctx is canceled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	baseURL := "http://" + addr
	if strings.HasPrefix(addr, ":") {
		baseURL = "http://localhost" + addr
	}

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: list_kinds
	listTool := mcp.NewTool("list_kinds",
		mcp.WithDescription("List the registered component and container kinds."),
		mcp.WithString("filter", mcp.Description("Case-insensitive substring the kind name must contain (optional)")),
		mcp.WithOutputSchema[KindList](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleListKinds))

	// TOOL: describe_kind
	s.mcpServer.AddTool(mcp.NewTool("describe_kind",
		mcp.WithDescription("Describe one kind and its parameters in declaration order, as markdown."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Kind name, e.g. MechanicalObject")),
	), s.handleDescribeKind)

	// TOOL: build_descriptor
	buildTool := mcp.NewTool("build_descriptor",
		mcp.WithDescription("Run a builder call and return the resulting descriptor with any duplicate-parameter warnings."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Kind name")),
		mcp.WithString("params", mcp.Description("JSON object of declared parameters, in call order (optional)")),
		mcp.WithString("extra", mcp.Description("JSON object of forward-compatible extra parameters (optional)")),
	)
	s.mcpServer.AddTool(buildTool, mcp.NewStructuredToolHandler(s.handleBuildDescriptor))
}

func (s *Server) handleListKinds(ctx context.Context, request mcp.CallToolRequest, args ListKindsArgs) (KindList, error) {
	filter := strings.ToLower(args.Filter)
	out := KindList{Kinds: []KindSummary{}}
	for _, e := range s.registry.Entries() {
		if filter != "" && !strings.Contains(strings.ToLower(e.Kind()), filter) {
			continue
		}
		out.Kinds = append(out.Kinds, KindSummary{
			Kind:        e.Kind(),
			Description: e.Schema.Description(),
			Container:   e.Container,
			Source:      e.Source,
		})
	}
	return out, nil
}

func (s *Server) handleDescribeKind(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, err := request.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	e, err := s.registry.Entry(kind)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(docs.Kind(e)), nil
}

func (s *Server) handleBuildDescriptor(ctx context.Context, request mcp.CallToolRequest, args BuildDescriptorArgs) (DescriptorResult, error) {
	if args.Kind == "" {
		return DescriptorResult{}, errors.New("kind is required")
	}
	params, err := parseParams("params", args.Params)
	if err != nil {
		return DescriptorResult{}, err
	}
	extra, err := parseParams("extra", args.Extra)
	if err != nil {
		return DescriptorResult{}, err
	}

	callArgs := descriptor.FromParams(params)
	extra.Each(func(name string, value any) {
		callArgs = append(callArgs, descriptor.Extra(name, value))
	})

	d, warnings, err := s.registry.Build(args.Kind, callArgs...)
	if err != nil {
		return DescriptorResult{}, err
	}

	res := DescriptorResult{Descriptor: d}
	for _, w := range warnings {
		res.Warnings = append(res.Warnings, w.String())
		s.logger.Debug("build_descriptor: parameter given twice", "kind", args.Kind, "param", w.Param)
	}
	return res, nil
}

// parseParams decodes an optional JSON object argument, keeping key order.
func parseParams(field, raw string) (*descriptor.Params, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	p := descriptor.NewParams()
	if err := json.Unmarshal([]byte(raw), p); err != nil {
		return nil, fmt.Errorf("%s: expected a JSON object: %w", field, err)
	}
	return p, nil
}

func (s *Server) registerResources() {
	// EXPOSE: sofakit://catalog
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "Component Catalog",
		mcp.WithResourceDescription("Every registered kind with its ordered parameter schema."),
		mcp.WithMIMEType("application/json"),
	), s.readCatalog)
}

func (s *Server) readCatalog(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	entries := s.registry.Entries()
	out := make([]catalogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, catalogEntry{Schema: e.Schema, Container: e.Container, Source: e.Source})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      CatalogURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
