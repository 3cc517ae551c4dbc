package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Printer writes human-readable progress lines. They are not a stable
// interface.
type Printer struct {
	out   io.Writer
	err   io.Writer
	plain bool
}

// New returns a Printer writing progress to out and failures to errOut.
// With plain set, tags are ASCII instead of emoji.
func New(out, errOut io.Writer, plain bool) *Printer {
	return &Printer{out: out, err: errOut, plain: plain}
}

// NewPrinter uses emoji tags only when stdout is a terminal.
func NewPrinter(stdout, stderr *os.File) *Printer {
	return New(stdout, stderr, !term.IsTerminal(int(stdout.Fd())))
}

func (p *Printer) tag(emoji, ascii string) string {
	if p.plain {
		return ascii
	}
	return emoji
}

// OK reports a generated file.
func (p *Printer) OK(path string) {
	fmt.Fprintf(p.out, "%s generated %s\n", p.tag("✅", "[ok]"), path)
}

// Done reports the compiled output file.
func (p *Printer) Done(file string) {
	fmt.Fprintf(p.out, "%s created %s\n", p.tag("🎉", "[done]"), file)
}

func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintf(p.err, "%s %s\n", p.tag("❌", "[error]"), fmt.Sprintf(format, args...))
}

// Println writes an untagged line to stdout.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}
