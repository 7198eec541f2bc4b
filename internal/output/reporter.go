// Package output renders the human-facing progress report of a release run
// and the machine-readable plan and configuration dumps.
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes one progress line per step:
//
//	running tests with npm test... OK
//
// When not silent, each step is preceded by a section header and the
// confirmation names the step, since command output is streamed between
// the progress line and the confirmation.
type Reporter struct {
	w      io.Writer
	silent bool

	header *color.Color
	ok     *color.Color
	fail   *color.Color
	warn   *color.Color
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithColor forces colored output on or off. By default fatih/color decides
// from the terminal and NO_COLOR.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		for _, c := range []*color.Color{r.header, r.ok, r.fail, r.warn} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer, silent bool, opts ...Option) *Reporter {
	r := &Reporter{
		w:      w,
		silent: silent,
		header: color.New(color.Bold, color.Underline),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Header writes a section header. Omitted when silent.
func (r *Reporter) Header(title string) {
	if r.silent {
		return
	}
	fmt.Fprintln(r.w)
	r.header.Fprintln(r.w, title)
}

// Start writes the progress description of a step.
func (r *Reporter) Start(description string) {
	if r.silent {
		fmt.Fprintf(r.w, "%s... ", description)
		return
	}
	fmt.Fprintf(r.w, "%s...\n", description)
}

// OK confirms the step started last.
func (r *Reporter) OK(description string) {
	if r.silent {
		r.ok.Fprintln(r.w, "OK")
		return
	}
	r.ok.Fprint(r.w, "OK")
	fmt.Fprintf(r.w, " %s\n", description)
}

// Fail marks the step started last as failed.
func (r *Reporter) Fail(err error) {
	r.fail.Fprint(r.w, "FAILED")
	fmt.Fprintf(r.w, " %v\n", err)
}

// Warn writes a warning line.
func (r *Reporter) Warn(format string, args ...any) {
	r.warn.Fprint(r.w, "WARN")
	fmt.Fprintf(r.w, " "+format+"\n", args...)
}

// Output writes captured command output. Used when a silent step fails so
// the user still sees why.
func (r *Reporter) Output(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(r.w, text)
	if text[len(text)-1] != '\n' {
		fmt.Fprintln(r.w)
	}
}
