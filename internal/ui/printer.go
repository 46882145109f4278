package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Printer writes diagnostics to an output and an error stream. Styling is
// applied only when the stream is a terminal.
type Printer struct {
	out       io.Writer
	err       io.Writer
	styledOut bool
	styledErr bool
}

// NewPrinter creates a Printer for the given streams.
func NewPrinter(out, errOut io.Writer) *Printer {
	return &Printer{
		out:       out,
		err:       errOut,
		styledOut: isTerminal(out),
		styledErr: isTerminal(errOut),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(styled bool, s lipgloss.Style, text string) string {
	if !styled {
		return text
	}
	return s.Render(text)
}

// Plain writes text unchanged.
func (p *Printer) Plain(text string) {
	fmt.Fprint(p.out, text)
}

// Field writes a "Label: value" line.
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n",
		render(p.styledOut, labelStyle, label+":"),
		render(p.styledOut, valueStyle, value))
}

// Removing announces a deletion that is about to happen.
func (p *Printer) Removing(path string, isDir bool) {
	kind := "file"
	if isDir {
		kind = "folder"
	}
	fmt.Fprintf(p.out, "%s %s\n",
		render(p.styledOut, removeStyle, "Deleting "+kind+":"),
		render(p.styledOut, pathStyle, path))
}

// Success writes a completion line.
func (p *Printer) Success(text string) {
	prefix := ""
	if p.styledOut {
		prefix = IconCheck + " "
	}
	fmt.Fprintln(p.out, render(p.styledOut, successStyle, prefix+text))
}

// Error writes a one-line error to the error stream.
func (p *Printer) Error(err error) {
	prefix := ""
	if p.styledErr {
		prefix = IconCross + " "
	}
	fmt.Fprintln(p.err, render(p.styledErr, errorStyle, prefix+"Error: "+err.Error()))
}
