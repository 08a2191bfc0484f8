package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"golang.org/x/term"

	xgxtrace "github.com/xgx-io/xgx-trace"
	"github.com/xgx-io/xgx-trace/internal/demo"
)

// renderer prints failures for humans.
type renderer struct {
	w        io.Writer
	errColor *color.Color
	dim      *color.Color
	fnColor  *color.Color
	locColor *color.Color
}

func newRenderer(w io.Writer, mode string) *renderer {
	r := &renderer{
		w:        w,
		errColor: color.New(color.FgRed, color.Bold),
		dim:      color.New(color.Faint),
		fnColor:  color.New(color.FgYellow),
		locColor: color.New(color.FgCyan),
	}
	on := colorEnabled(mode, w)
	for _, c := range []*color.Color{r.errColor, r.dim, r.fnColor, r.locColor} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// colorEnabled resolves a colour mode for w. auto enables colour only when w
// is a terminal.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *renderer) failure(kind demo.Kind, t *xgxtrace.Traced[demo.Error]) {
	_, _ = r.errColor.Fprintf(r.w, "Error: %v", t)
	_, _ = r.dim.Fprintf(r.w, " (%s)\n", kind)

	tr := t.Trace()
	if tr.IsEmpty() {
		_, _ = r.dim.Fprintln(r.w, "trace: (empty)")
		return
	}
	_, _ = r.dim.Fprintf(r.w, "trace (%d hops, oldest first):\n", tr.Len())
	for i, l := range tr.All() {
		_, _ = fmt.Fprintf(r.w, "  #%d %s\n", i, r.fnColor.Sprint(shortFunc(l.Function)))
		_, _ = fmt.Fprintf(r.w, "       %s\n", r.locColor.Sprint(l.String()))
	}
}

// shortFunc trims the import path from a fully-qualified function name.
func shortFunc(fn string) string {
	if fn == "" {
		return "???"
	}
	return filepath.Base(fn)
}
