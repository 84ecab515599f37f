package tui

import "strings"

// tail keeps the last max complete lines written to it, plus the line in progress.
type tail struct {
	max     int
	lines   []string
	partial string
}

func newTail(maxLines int) *tail {
	return &tail{max: maxLines}
}

func (t *tail) Write(p []byte) (int, error) {
	parts := strings.Split(t.partial+string(p), "\n")
	t.partial = parts[len(parts)-1]
	t.lines = append(t.lines, parts[:len(parts)-1]...)
	if over := len(t.lines) - t.max; over > 0 {
		t.lines = append(t.lines[:0], t.lines[over:]...)
	}
	return len(p), nil
}

// Lines returns the retained lines, oldest first.
func (t *tail) Lines() []string {
	out := make([]string, 0, len(t.lines)+1)
	out = append(out, t.lines...)
	if t.partial != "" {
		out = append(out, t.partial)
	}
	if len(out) > t.max {
		out = out[len(out)-t.max:]
	}
	return out
}
