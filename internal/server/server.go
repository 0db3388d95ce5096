package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ChicagoDave/rangeviewer/internal/logger"
	"github.com/ChicagoDave/rangeviewer/internal/metrics"
	"github.com/ChicagoDave/rangeviewer/pkg/geo"
	"github.com/ChicagoDave/rangeviewer/pkg/plot"
	"github.com/ChicagoDave/rangeviewer/pkg/render"
	"github.com/ChicagoDave/rangeviewer/pkg/spec"
	"github.com/ChicagoDave/rangeviewer/pkg/validation"
	"github.com/ChicagoDave/rangeviewer/pkg/village"
)

// Server serves a village project over HTTP. The project is reloaded on
// every request so edits to the village file show on refresh.
type Server struct {
	projectPath string
	port        int
	inches      float64
	dpi         float64
	metrics     *metrics.Metrics
}

// New creates a server for the given project directory or village file.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		inches:      village.FigureInches,
		dpi:         village.FigureDPI,
		metrics:     metrics.New(),
	}
}

// SetFigure sets the size in inches and resolution of served figures.
func (s *Server) SetFigure(inches, dpi float64) {
	s.inches = inches
	s.dpi = dpi
}

// Metrics returns the server's metrics.
func (s *Server) Metrics() *metrics.Metrics {
	return s.metrics
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/figure.svg", s.handleFigureSVG)
	r.Get("/metrics", s.metrics.Handler().ServeHTTP)
	r.Route("/api", func(r chi.Router) {
		r.Get("/village", s.handleVillage)
		r.Get("/viewport", s.handleViewport)
		r.Get("/figure", s.handleFigure)
		r.Get("/validation", s.handleValidation)
		r.Get("/coverage", s.handleCoverage)
	})
	return r
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Info("rangeviewer server starting", "url", "http://localhost"+addr, "project", s.projectPath)

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// loaded is a village freshly read from disk.
type loaded struct {
	spec    *spec.VillageSpec
	village *village.Village
	figure  *plot.Figure
	report  *validation.Report
}

// load reads and validates the project. On failure it writes a 422
// response and returns false.
func (s *Server) load(w http.ResponseWriter) (*loaded, bool) {
	vs, err := spec.LoadProject(s.projectPath)
	if err != nil {
		s.loadFailed(w, err, nil)
		return nil, false
	}
	fig := plot.NewFigure(s.inches, s.inches, s.dpi, nil)
	v, report, err := village.FromSpecOn(vs, fig)
	if err != nil {
		s.loadFailed(w, err, report)
		return nil, false
	}
	return &loaded{spec: vs, village: v, figure: fig, report: report}, true
}

func (s *Server) loadFailed(w http.ResponseWriter, err error, report *validation.Report) {
	s.metrics.IncrementLoadFailures()
	logger.Warn("village failed to load", "project", s.projectPath, "error", err)
	body := map[string]any{"error": err.Error()}
	if report != nil {
		body["validation"] = report
	}
	var cfgErr *validation.ConfigError
	if errors.As(err, &cfgErr) {
		body["field"] = cfgErr.Field
	}
	writeJSON(w, http.StatusUnprocessableEntity, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encoding response", "error", err)
	}
}

func (s *Server) handleVillage(w http.ResponseWriter, _ *http.Request) {
	l, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, l.spec)
}

func (s *Server) handleViewport(w http.ResponseWriter, _ *http.Request) {
	l, ok := s.load(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, l.village.Viewport())
}

func (s *Server) handleFigure(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	l, ok := s.load(w)
	if !ok {
		return
	}
	l.village.Render()
	s.metrics.IncrementRenders("json")
	s.metrics.ObserveRender(start)
	writeJSON(w, http.StatusOK, l.figure)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	vs, err := spec.LoadProject(s.projectPath)
	if err != nil {
		s.loadFailed(w, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateSchema(vs))
}

func (s *Server) handleCoverage(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "x and y query parameters must be numbers"})
		return
	}
	l, ok := s.load(w)
	if !ok {
		return
	}
	hits := l.village.Coverage(geo.Pt(x, y))
	if hits == nil {
		hits = []village.Hit{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"point": geo.Pt(x, y),
		"hits":  hits,
	})
}

func (s *Server) handleFigureSVG(w http.ResponseWriter, _ *http.Request) {
	start := time.Now()
	l, ok := s.load(w)
	if !ok {
		return
	}
	l.village.Render()
	out, err := render.SVGString(l.figure)
	if err != nil {
		logger.Error("rendering SVG", "error", err)
		http.Error(w, "rendering failed", http.StatusInternalServerError)
		return
	}
	s.metrics.IncrementRenders("svg")
	s.metrics.ObserveRender(start)
	w.Header().Set("Content-Type", "image/svg+xml")
	fmt.Fprint(w, out)
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><title>{{.Title}}</title></head>
<body style="margin:0;background:#fafafa;font-family:system-ui;display:flex;flex-direction:column;align-items:center">
<h1>{{.Title}}</h1>
<img src="/figure.svg" alt="{{.Title}}">
<p>{{.Count}} buildings. Edit {{.Project}} and refresh.</p>
</body></html>`))

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	l, ok := s.load(w)
	if !ok {
		return
	}
	title := l.village.Title()
	if title == "" {
		title = "Range viewer"
	}
	w.Header().Set("Content-Type", "text/html")
	err := indexTmpl.Execute(w, map[string]any{
		"Title":   title,
		"Count":   len(l.village.Buildings()),
		"Project": s.projectPath,
	})
	if err != nil {
		logger.Error("rendering index", "error", err)
	}
}
