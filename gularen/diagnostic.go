package gularen

import (
	"fmt"
	"io"
	"os"
)

// Diagnostic is one entry of the parser's error taxonomy, reported
// instead of thrown: an unterminated inline container, a malformed
// block, or an unmatched structural token. The parser never aborts on
// one — it resynchronises and keeps building the tree.
type Diagnostic struct {
	Range   Range
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[ParsingError] %s (line %d, col %d)", d.Message, d.Range.Start.Line, d.Range.Start.Col)
}

// DiagnosticSink receives diagnostics as the parser produces them. The
// default sink writes to os.Stderr; hosts that need the diagnostics as
// values substitute a CollectingSink.
type DiagnosticSink interface {
	Report(Diagnostic)
}

// WriterSink writes each diagnostic as one line to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Report(d Diagnostic) {
	fmt.Fprintln(s.W, d.String())
}

// StderrSink is the default DiagnosticSink, matching cmd/parse.go's and
// cmd/watch.go's habit of writing operational messages straight to
// standard error.
var StderrSink DiagnosticSink = WriterSink{W: os.Stderr}

// CollectingSink accumulates diagnostics in memory instead of writing
// them anywhere; useful for tests and for backends that want to surface
// parse issues alongside a rendered document.
type CollectingSink struct {
	Diagnostics []Diagnostic
}

func (s *CollectingSink) Report(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}
