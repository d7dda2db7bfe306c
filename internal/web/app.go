// Package web serves the palette checker page and its JSON API.
package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/phyten/palettex/internal/colorutil"
	"github.com/phyten/palettex/internal/opts"
	"github.com/phyten/palettex/internal/palette"
	"github.com/phyten/palettex/internal/scale"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"
)

const contentSecurityPolicy = "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'"

var (
	//go:embed templates/index.html
	indexHTML string
	indexOnce sync.Once
	indexTmpl *template.Template

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

// Server holds the defaults every request starts from.
type Server struct {
	Defaults opts.Options
	Themes   palette.ThemeConfig
	Scheme   string // light|dark, the preselected tone side
}

func New(def opts.Options, themes palette.ThemeConfig, scheme string) *Server {
	if scheme != "dark" {
		scheme = "light"
	}
	return &Server{Defaults: def, Themes: themes, Scheme: scheme}
}

type indexData struct {
	StylesPath string
	ScriptPath string
	Scheme     string
	Accents    []string
	Lights     []string
	Darks      []string
	Presets    []string
	Vision     []string
	Ratio      float64
}

// Register attaches the page, its assets and the API to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", s.indexHandler)
	mux.HandleFunc(stylesPath, stylesHandler)
	mux.HandleFunc(scriptPath, scriptHandler)
	s.registerAPI(mux)
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	tmpl := loadTemplate()
	setSecurityHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, s.indexData()); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

func (s *Server) indexData() indexData {
	vis := s.Themes.Visible()
	data := indexData{
		StylesPath: stylesPath,
		ScriptPath: scriptPath,
		Scheme:     s.Scheme,
		Presets:    scale.PresetNames(),
		Ratio:      s.Defaults.Ratio,
	}
	for _, a := range vis.Accent {
		data.Accents = append(data.Accents, a.Name)
	}
	for _, t := range vis.Light {
		data.Lights = append(data.Lights, t.Name)
	}
	for _, t := range vis.Dark {
		data.Darks = append(data.Darks, t.Name)
	}
	for _, d := range colorutil.Deficiencies() {
		data.Vision = append(data.Vision, d.String())
	}
	return data
}

func setSecurityHeaders(w http.ResponseWriter) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Content-Security-Policy", contentSecurityPolicy)
}

func stylesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write([]byte(stylesCSS))
}

func scriptHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, _ = w.Write([]byte(scriptJS))
}

func loadTemplate() *template.Template {
	indexOnce.Do(func() {
		indexTmpl = template.Must(template.New("index").Parse(indexHTML))
	})
	return indexTmpl
}
