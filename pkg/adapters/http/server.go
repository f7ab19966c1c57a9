package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/sofakit"
	"github.com/aretw0/sofakit/pkg/assembler"
	"github.com/aretw0/sofakit/pkg/descriptor"
	"github.com/aretw0/sofakit/pkg/observability"
	"github.com/aretw0/sofakit/pkg/plan"
	"github.com/aretw0/sofakit/pkg/ports"
	"github.com/aretw0/sofakit/pkg/registry"
	"github.com/aretw0/sofakit/pkg/scene"
	"github.com/aretw0/sofakit/pkg/scenefile"
	"github.com/aretw0/sofakit/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// maxBodySize bounds request documents.
const maxBodySize = 4 << 20

// Server implements the generated ServerInterface.
type Server struct {
	Registry *registry.Registry
	Store    ports.PlanStore // nil disables the /plans storage routes

	metrics  *observability.Metrics
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// Option configures a Server.
type Option func(*Server)

// WithStore enables plan storage.
func WithStore(store ports.PlanStore) Option {
	return func(s *Server) {
		s.Store = store
	}
}

// WithMetrics instruments assemblies and exposes g on /metrics.
func WithMetrics(m *observability.Metrics, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithLogger sets a structured logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for a frozen registry.
func NewHandler(reg *registry.Registry, opts ...Option) http.Handler {
	s := &Server{
		Registry: reg,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	handler := HandlerFromMux(s, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	s.writeJSON(w, http.StatusOK, Info{
		App:        "sofakit-http",
		Version:    strings.TrimSpace(sofakit.Version),
		ApiVersion: apiVersion,
		Kinds:      s.Registry.Len(),
	})
}

// ListKinds handles GET /kinds.
func (s *Server) ListKinds(w http.ResponseWriter, r *http.Request, params ListKindsParams) {
	var filter string
	if params.Filter != nil {
		filter = strings.ToLower(*params.Filter)
	}
	onlyContainers := params.Containers != nil && *params.Containers

	out := []KindSummary{}
	for _, e := range s.Registry.Entries() {
		if onlyContainers && !e.Container {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(e.Kind()), filter) {
			continue
		}
		out = append(out, KindSummary{
			Kind:        e.Kind(),
			Description: e.Schema.Description(),
			Container:   e.Container,
			Source:      e.Source,
			Params:      e.Schema.Len(),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// GetKind handles GET /kinds/{kind}.
func (s *Server) GetKind(w http.ResponseWriter, r *http.Request, kind Kind) {
	e, err := s.Registry.Entry(kind)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, KindDetail{
		Schema:    kindSchema(e.Schema),
		Container: e.Container,
		Source:    e.Source,
	})
}

func kindSchema(sc *schema.Schema) KindSchema {
	out := KindSchema{
		Kind:        sc.Kind(),
		Description: sc.Description(),
		Params:      make([]Parameter, 0, sc.Len()),
	}
	for _, p := range sc.Params() {
		out.Params = append(out.Params, Parameter{
			Name:        p.Name,
			Type:        p.Type.Name(),
			Description: p.Description,
		})
	}
	return out
}

// BuildDescriptor handles POST /kinds/{kind}/descriptor.
func (s *Server) BuildDescriptor(w http.ResponseWriter, r *http.Request, kind Kind, params BuildDescriptorParams) {
	// An empty body builds the kind without arguments
	var body BuildDescriptorJSONRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("BuildDescriptor: invalid request body", "error", err)
		return
	}

	args := descriptor.FromParams(body.Params)
	body.Extra.Each(func(name string, value any) {
		args = append(args, descriptor.Extra(name, value))
	})

	d, warnings, err := s.Registry.Build(kind, args...)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if params.Lint != nil && *params.Lint {
		sc, err := s.Registry.Lookup(kind)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if err := sc.Check(d.Params); err != nil {
			report := LintReport{}
			for _, issue := range schema.ValidationErrors(err) {
				report.Issues = append(report.Issues, issue.Error())
			}
			s.writeJSON(w, http.StatusUnprocessableEntity, report)
			return
		}
	}

	resp := DescriptorResponse{Descriptor: d}
	for _, warning := range warnings {
		resp.Warnings = append(resp.Warnings, warning.String())
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// CreatePlan handles POST /plans. The body is a YAML or JSON scene document.
func (s *Server) CreatePlan(w http.ResponseWriter, r *http.Request, params CreatePlanParams) {
	var saveAs string
	if params.Save != nil {
		saveAs = *params.Save
	}
	if saveAs != "" && s.Store == nil {
		http.Error(w, "Plan storage is not configured", http.StatusNotImplemented)
		return
	}

	var warnings []string
	root, err := scenefile.Load(s.Registry, http.MaxBytesReader(w, r.Body, maxBodySize),
		scene.WithLogger(s.logger),
		scene.WithWarningHandler(func(n *scene.Node, warning *descriptor.ParameterConflictWarning) {
			warnings = append(warnings, fmt.Sprintf("%s: %s", n.Path(), warning))
		}),
	)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid scene: %v", err), http.StatusBadRequest)
		s.logger.Warn("CreatePlan: invalid scene", "error", err)
		return
	}

	if params.Lint != nil && *params.Lint {
		if issues := root.Lint(); len(issues) > 0 {
			report := LintReport{Issues: make([]string, 0, len(issues))}
			for _, issue := range issues {
				report.Issues = append(report.Issues, issue.Error())
			}
			s.writeJSON(w, http.StatusUnprocessableEntity, report)
			return
		}
	}

	opts := []assembler.Option{assembler.WithLogger(s.logger)}
	if s.metrics != nil {
		opts = append(opts, assembler.WithHooks(s.metrics.Hooks()))
	}
	p, err := plan.Build(r.Context(), root, opts...)
	if err != nil {
		http.Error(w, fmt.Sprintf("Assembly error: %v", err), http.StatusInternalServerError)
		s.logger.Error("CreatePlan: assembly failed", "error", err)
		return
	}

	status := http.StatusOK
	if saveAs != "" {
		if err := s.Store.Save(r.Context(), saveAs, p); err != nil {
			s.writeError(w, err)
			return
		}
		s.logger.Info("plan saved", "name", saveAs, "operations", len(p.Operations))
		status = http.StatusCreated
	}
	s.writeJSON(w, status, PlanResponse{Plan: *p, Saved: saveAs, Warnings: warnings})
}

// ListPlans handles GET /plans.
func (s *Server) ListPlans(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, names)
}

// GetPlan handles GET /plans/{name}.
func (s *Server) GetPlan(w http.ResponseWriter, r *http.Request, name string) {
	if !s.requireStore(w) {
		return
	}
	p, err := s.Store.Load(r.Context(), name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// DeletePlan handles DELETE /plans/{name}.
func (s *Server) DeletePlan(w http.ResponseWriter, r *http.Request, name string) {
	if !s.requireStore(w) {
		return
	}
	if err := s.Store.Delete(r.Context(), name); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.Store == nil {
		http.Error(w, "Plan storage is not configured", http.StatusNotImplemented)
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// writeError maps domain errors onto status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, registry.ErrUnknownKind), errors.Is(err, ports.ErrPlanNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ports.ErrInvalidPlanName):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	http.Error(w, err.Error(), status)
}
