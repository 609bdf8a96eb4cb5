package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/verify/packages/verify"
)

// Printer writes failure messages to a writer, stdout by default.
type Printer struct {
	writer  io.Writer
	noColor bool
}

type PrinterOption func(*Printer)

func NewPrinter(opts ...PrinterOption) *Printer {
	p := &Printer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.noColor {
		color.NoColor = true
	}
	return p
}

func WithWriter(w io.Writer) PrinterOption {
	return func(p *Printer) {
		p.writer = w
	}
}

func WithNoColor(noColor bool) PrinterOption {
	return func(p *Printer) {
		p.noColor = noColor
	}
}

// Print renders err on the printer's writer. Assertion failures get a FAIL
// marker and their message; any other error is rendered under ERROR.
func (p *Printer) Print(err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	var f *verify.Failure
	if errors.As(err, &f) {
		fmt.Fprintf(p.writer, "%s %s\n", red("FAIL"), f.Error())
		return
	}
	fmt.Fprintf(p.writer, "%s %v\n", red("ERROR"), err)
}

// Sprint renders err to a string without color.
func Sprint(err error) string {
	var sb strings.Builder
	NewPrinter(WithWriter(&sb), WithNoColor(true)).Print(err)
	return strings.TrimSuffix(sb.String(), "\n")
}
