package progress

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

type Observer interface {
	Publish(Snapshot)
	Done(Snapshot)
}

type NoopObserver struct{}

func (NoopObserver) Publish(Snapshot) {}
func (NoopObserver) Done(Snapshot)    {}

// ObserverFunc receives both intermediate and final snapshots.
type ObserverFunc func(Snapshot)

func (f ObserverFunc) Publish(s Snapshot) { f(s) }
func (f ObserverFunc) Done(s Snapshot)    { f(s) }

type multiObserver []Observer

func NewMultiObserver(obs ...Observer) Observer {
	filtered := make(multiObserver, 0, len(obs))
	for _, ob := range obs {
		if ob != nil {
			filtered = append(filtered, ob)
		}
	}
	switch len(filtered) {
	case 0:
		return NoopObserver{}
	case 1:
		return filtered[0]
	}
	return filtered
}

func (m multiObserver) Publish(s Snapshot) {
	for _, ob := range m {
		ob.Publish(s)
	}
}

func (m multiObserver) Done(s Snapshot) {
	for _, ob := range m {
		ob.Done(s)
	}
}

// ShouldShowProgress decides whether the CLI draws progress on stderr.
// --no-progress wins over --progress; otherwise stderr must be a terminal.
func ShouldShowProgress(force, no bool, stderr *os.File) bool {
	if no {
		return false
	}
	if force {
		return true
	}
	return isTTY(stderr)
}

type ttyObserver struct {
	mu sync.Mutex
	w  io.Writer
}

type lineObserver struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTTYObserver redraws a single status line in place.
func NewTTYObserver(w io.Writer) Observer {
	return &ttyObserver{w: w}
}

// NewLineObserver prints one key=value line per snapshot.
func NewLineObserver(w io.Writer) Observer {
	return &lineObserver{w: w}
}

func NewAutoObserver(w io.Writer) Observer {
	if w == nil {
		w = os.Stderr
	}
	if f, ok := w.(*os.File); ok && isTTY(f) {
		return NewTTYObserver(w)
	}
	return NewLineObserver(w)
}

func (o *ttyObserver) Publish(s Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprintf(o.w, "\r\033[K%s", renderTTY(s))
}

func (o *ttyObserver) Done(Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprint(o.w, "\r\033[K")
}

func (o *lineObserver) Publish(s Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprintln(o.w, renderLine(s))
}

func (o *lineObserver) Done(s Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, _ = fmt.Fprintln(o.w, renderLine(s))
}

func renderTTY(s Snapshot) string {
	rate := "--/s"
	if !s.Warmup && s.Rate > 0 {
		rate = fmt.Sprintf("%.0f/s", s.Rate)
	}
	eta := "--:--"
	if !s.Warmup && s.ETA > 0 {
		eta = formatETA(s.ETA)
	}
	return fmt.Sprintf("%-4s %3d%% %d/%d anchors %s eta %s", s.Stage, s.Percent(), s.Done, s.Total, rate, eta)
}

func renderLine(s Snapshot) string {
	return fmt.Sprintf("progress stage=%s done=%d total=%d rate=%.1f eta=%s elapsed=%s",
		s.Stage, s.Done, s.Total, s.Rate, seconds(s.ETA), seconds(s.Elapsed))
}

func formatETA(d time.Duration) string {
	total := int(math.Round(d.Seconds()))
	if total < 0 {
		total = 0
	}
	m, sec := total/60, total%60
	if m > 99 {
		m, sec = 99, 59
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}

func seconds(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func isTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
