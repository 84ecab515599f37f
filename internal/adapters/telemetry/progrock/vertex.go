package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/rab/internal/core/domain"
)

// Vertex is one pipeline phase on the progrock tape.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout receives the phase's standard output lines.
func (v *Vertex) Stdout() io.Writer { return v.vertex.Stdout() }

// Stderr receives the phase's diagnostics.
func (v *Vertex) Stderr() io.Writer { return v.vertex.Stderr() }

// Log writes msg as a line of the phase. Info and debug lines go to stdout
// unprefixed; warnings and errors go to stderr with their level.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	if level < domain.LogLevelWarn {
		_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
		return
	}
	_, _ = fmt.Fprintf(v.vertex.Stderr(), "%s: %s\n", level, msg)
}

// Complete marks the phase done, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
