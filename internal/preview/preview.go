// Package preview renders live HTML previews of LaTeX sources,
// debouncing rapid edits so only the latest source is rendered.
package preview

import (
	"sync"
	"time"

	"github.com/formal-tools/fml/pkg/latex"
)

// DefaultDelay is the debounce interval between an edit and the
// re-render it triggers.
const DefaultDelay = 500 * time.Millisecond

// Result is a rendered preview with its validation report.
type Result struct {
	HTML   string
	Report latex.Report
}

// Previewer renders sources through a debouncer so bursts of updates
// produce one render of the most recent source.
type Previewer struct {
	mu       sync.Mutex
	renderMu sync.Mutex
	renderer *latex.Renderer
	debounce *Debouncer
	source   string
	result   Result
	onUpdate func(Result)
}

// NewPreviewer creates a previewer. onUpdate, if non-nil, is called
// with each fresh result. A delay of zero uses DefaultDelay.
func NewPreviewer(delay time.Duration, onUpdate func(Result)) *Previewer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	p := &Previewer{
		renderer: latex.NewRenderer(),
		onUpdate: onUpdate,
	}
	p.debounce = NewDebouncer(delay, p.run)
	return p
}

// Update stores source as the latest pending input and schedules a
// render. Intermediate sources superseded before the delay elapses
// are never rendered.
func (p *Previewer) Update(source string) {
	p.mu.Lock()
	p.source = source
	p.mu.Unlock()

	p.debounce.Call()
}

// Flush renders any pending source immediately.
func (p *Previewer) Flush() {
	p.debounce.Flush()
}

// Result returns the most recently rendered preview.
func (p *Previewer) Result() Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Close discards any pending render.
func (p *Previewer) Close() {
	p.debounce.Cancel()
}

// run renders the latest source. The renderer mutates internal math
// state per call, and a timer callback can fire while a slow render
// from the previous burst is still in flight, so renders are
// serialized on renderMu.
func (p *Previewer) run() {
	p.renderMu.Lock()
	defer p.renderMu.Unlock()

	p.mu.Lock()
	source := p.source
	p.mu.Unlock()

	result := Result{
		HTML:   p.renderer.Render(source),
		Report: latex.Validate(source),
	}

	p.mu.Lock()
	p.result = result
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(result)
	}
}
