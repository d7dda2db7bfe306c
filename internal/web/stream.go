package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"

	"github.com/phyten/palettex/internal/engine"
	"github.com/phyten/palettex/internal/output"
	"github.com/phyten/palettex/internal/progress"
)

var errStreamFormat = errors.New("stream supports format json or view")

type progressEvent struct {
	Stage   string `json:"stage"`
	Done    int    `json:"done"`
	Total   int    `json:"total"`
	Percent int    `json:"percent"`
	ETAMS   int64  `json:"eta_ms"`
}

type errorEvent struct {
	Error string `json:"error"`
}

// sseWriter serialises events onto one response.
type sseWriter struct {
	mu sync.Mutex
	w  io.Writer
	f  http.Flusher
}

func (s *sseWriter) event(name string, v any) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.w, "event: "+name+"\n")
	_, _ = io.WriteString(s.w, "data: ")
	_, _ = s.w.Write(bytes.TrimRight(buf.Bytes(), "\n"))
	_, _ = io.WriteString(s.w, "\n\n")
	s.f.Flush()
}

// suggestStreamHandler runs a scale suggestion and streams scan progress as
// server-sent events, then one result or error event.
func (s *Server) suggestStreamHandler(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	q := r.URL.Query()
	format, err := apiFormat(q)
	if err == nil && format != "json" && format != "view" {
		err = errStreamFormat
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	req, err := s.requestFromQuery(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	sse := &sseWriter{w: w, f: flusher}
	publish := func(snap progress.Snapshot) {
		sse.event("progress", progressEvent{
			Stage:   string(snap.Stage),
			Done:    snap.Done,
			Total:   snap.Total,
			Percent: snap.Percent(),
			ETAMS:   snap.ETA.Milliseconds(),
		})
	}
	req.ProgressObserver = progress.ObserverFunc(publish)

	res, err := engine.Run(r.Context(), engine.KindSuggest, req)
	if err != nil {
		if r.Context().Err() == nil {
			sse.event("error", errorEvent{Error: err.Error()})
		}
		return
	}
	if format == "view" {
		sel, err := output.ResolveFields(q.Get("fields"), res.Dataset)
		if err != nil {
			sse.event("error", errorEvent{Error: err.Error()})
			return
		}
		sse.event("result", output.NewView(res.Dataset, sel))
		return
	}
	sse.event("result", res.Dataset.Payload)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
