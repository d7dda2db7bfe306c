package web

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/phyten/palettex/internal/engine"
	"github.com/phyten/palettex/internal/opts"
	"github.com/phyten/palettex/internal/output"
)

// apiRoutes maps API paths to engine commands.
var apiRoutes = map[string]engine.Kind{
	"/api/contrast":      engine.KindContrast,
	"/api/simulate":      engine.KindSimulate,
	"/api/adjust":        engine.KindAdjust,
	"/api/scale/correct": engine.KindCorrect,
	"/api/scale/suggest": engine.KindSuggest,
	"/api/audit":         engine.KindAudit,
	"/api/distinct":      engine.KindDistinct,
}

// webFormats are the output formats the API can answer with, plus "view"
// for the page itself.
var webFormats = map[string]string{
	"json":     "application/json; charset=utf-8",
	"view":     "application/json; charset=utf-8",
	"ndjson":   "application/x-ndjson; charset=utf-8",
	"csv":      "text/csv; charset=utf-8",
	"markdown": "text/markdown; charset=utf-8",
}

func (s *Server) registerAPI(mux *http.ServeMux) {
	for path, kind := range apiRoutes {
		mux.HandleFunc(path, s.apiHandler(kind))
	}
	mux.HandleFunc("/api/scale/suggest/stream", s.suggestStreamHandler)
	mux.HandleFunc("/api/themes", s.themesHandler)
}

func (s *Server) apiHandler(kind engine.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !allowRead(w, r) {
			return
		}
		q := r.URL.Query()
		format, err := apiFormat(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		req, err := s.requestFromQuery(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := engine.Run(r.Context(), kind, req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var buf bytes.Buffer
		if err := writeFormat(&buf, format, res.Dataset, q.Get("fields")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", webFormats[format])
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Elapsed-Ms", strconv.FormatInt(res.ElapsedMS, 10))
		_, _ = w.Write(buf.Bytes())
	}
}

func writeFormat(buf *bytes.Buffer, format string, ds output.Dataset, fields string) error {
	if format == "view" {
		sel, err := output.ResolveFields(fields, ds)
		if err != nil {
			return err
		}
		return output.WriteView(buf, ds, sel)
	}
	return output.Write(buf, format, ds, fields, output.Style{})
}

func apiFormat(q url.Values) (string, error) {
	raw := strings.TrimSpace(q.Get("format"))
	if raw == "" {
		return "json", nil
	}
	if strings.EqualFold(raw, "view") {
		return "view", nil
	}
	format, err := opts.NormalizeOutput(raw)
	if err != nil {
		return "", fmt.Errorf("invalid format: %s", raw)
	}
	if _, ok := webFormats[format]; !ok {
		return "", fmt.Errorf("format %s is only available on the command line", format)
	}
	return format, nil
}

// requestFromQuery layers the query over the server defaults.
func (s *Server) requestFromQuery(q url.Values) (engine.Request, error) {
	o, err := opts.ApplyWebQuery(s.Defaults, q)
	if err != nil {
		return engine.Request{}, err
	}
	if err := opts.NormalizeAndValidate(&o); err != nil {
		return engine.Request{}, err
	}
	req := engine.Request{
		Options:     o,
		Themes:      s.Themes,
		Foregrounds: opts.SplitMulti(q["fg"]),
		Backgrounds: opts.SplitMulti(q["bg"]),
		Colors:      opts.SplitMulti(q["color"]),
		Surfaces:    opts.SplitMulti(q["surface"]),
		Rules:       opts.SplitMulti(q["rule"]),
		Accent:      strings.TrimSpace(q.Get("accent")),
		Light:       strings.TrimSpace(q.Get("light")),
		Dark:        strings.TrimSpace(q.Get("dark")),
		Scheme:      s.Scheme,
	}
	if v := strings.TrimSpace(q.Get("scheme")); v != "" {
		req.Scheme = v
	}
	if raw := strings.TrimSpace(q.Get("target")); raw != "" {
		if req.Target, err = opts.ParseFloatInRange(raw, "target", 1, 21); err != nil {
			return engine.Request{}, err
		}
	}
	if raw := strings.TrimSpace(q.Get("threshold")); raw != "" {
		if req.Threshold, err = opts.ParseFloatInRange(raw, "threshold", 0, 100); err != nil {
			return engine.Request{}, err
		}
	}
	return req, nil
}

type themeList struct {
	Accent []string `json:"accent"`
	Light  []string `json:"light"`
	Dark   []string `json:"dark"`
	Preset []string `json:"preset"`
	Vision []string `json:"vision"`
}

func (s *Server) themesHandler(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	d := s.indexData()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = writeJSON(w, themeList{Accent: d.Accents, Light: d.Lights, Dark: d.Darks, Preset: d.Presets, Vision: d.Vision})
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}
