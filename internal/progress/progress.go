package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

// Bar draws a single-line progress bar. Step is safe for concurrent use.
type Bar struct {
	mu      sync.Mutex
	w       io.Writer
	model   progress.Model
	enabled bool
	done    int
	total   int
	drawn   int
}

// New returns a bar writing to w. A disabled bar accepts Step and Finish but draws nothing.
func New(w io.Writer, enabled bool) *Bar {
	return &Bar{
		w:       w,
		model:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		enabled: enabled,
		drawn:   -1,
	}
}

// IsTerminal reports whether w is a terminal the bar can redraw in place.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Step records that done of total units are finished. The bar is redrawn only
// when the whole-percent value changes.
func (b *Bar) Step(done, total int) {
	if !b.enabled || total <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if done <= b.done {
		return
	}
	b.done, b.total = done, total
	pct := done * 100 / total
	if pct == b.drawn {
		return
	}
	b.drawn = pct
	b.draw()
}

// Finish draws the final state and ends the line.
func (b *Bar) Finish() {
	if !b.enabled {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.total == 0 {
		return
	}
	b.draw()
	fmt.Fprintln(b.w)
}

func (b *Bar) draw() {
	pct := float64(b.done) / float64(b.total)
	fmt.Fprintf(b.w, "\r%s %s", b.model.ViewAs(pct), countStyle.Render(fmt.Sprintf("%d/%d", b.done, b.total)))
}
