// Package shell provides the subprocess runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultGracePeriod is how long a cancelled process may take to exit after
// os.Interrupt before it is killed.
const DefaultGracePeriod = 5 * time.Second

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner implements ports.ProcessRunner using os/exec.
type Runner struct {
	logger ports.Logger
	grace  time.Duration
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		grace:  DefaultGracePeriod,
	}
}

// WithGracePeriod sets the delay between os.Interrupt and kill on cancellation.
func (r *Runner) WithGracePeriod(d time.Duration) *Runner {
	r.grace = d
	return r
}

// Run executes the command and waits for it to exit.
//
// Stdout and stderr are copied concurrently into one combined buffer that
// becomes the result's Output. Lines are also streamed to the vertex carried
// by ctx, or to the logger when there is none. On cancellation the process
// receives os.Interrupt and is killed once the grace period has passed.
//
// The command environment is os.Environ() with cmd.Env applied on top. A PATH
// entry in cmd.Env is prepended to the inherited PATH.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProcessResult{}, interrupted(ctx, cmd.Name)
	}

	env := resolveEnvironment(os.Environ(), cmd.Env)
	executable := cmd.Name
	if !filepath.IsAbs(executable) {
		if lp, err := lookPath(executable, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // command comes from the build plan
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Dir = cmd.Dir
	c.Env = env
	c.Cancel = func() error {
		return c.Process.Signal(os.Interrupt)
	}
	c.WaitDelay = r.grace

	var combined lockedBuffer
	outLines, errLines := r.sinks(ctx)
	c.Stdout = io.MultiWriter(&combined, outLines)
	c.Stderr = io.MultiWriter(&combined, errLines)

	if err := c.Start(); err != nil {
		return domain.ProcessResult{}, startFailed(cmd.Name, err)
	}

	waitErr := c.Wait()
	outLines.Flush()
	errLines.Flush()
	result := domain.ProcessResult{Output: combined.String()}

	if ctx.Err() != nil {
		result.ExitCode = -1
		return result, interrupted(ctx, cmd.Name)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, zerr.With(zerr.Wrap(waitErr, "command failed"), "command", cmd.Name)
	}
	return result, nil
}

// sinks returns the line writers for stdout and stderr.
func (r *Runner) sinks(ctx context.Context) (*lineWriter, *lineWriter) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		return &lineWriter{emit: writeLine(v.Stdout())}, &lineWriter{emit: writeLine(v.Stderr())}
	}
	return &lineWriter{emit: r.logger.Info}, &lineWriter{emit: r.logger.Warn}
}

func writeLine(w io.Writer) func(string) {
	return func(line string) {
		_, _ = io.WriteString(w, line+"\n")
	}
}

func interrupted(ctx context.Context, name string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return zerr.With(zerr.Wrap(domain.ErrTimeout, name+" exceeded its time budget"), "command", name)
	}
	return zerr.With(zerr.Wrap(domain.ErrCancelled, name+" was interrupted"), "command", name)
}

func startFailed(name string, err error) error {
	return zerr.With(zerr.Wrap(domain.ErrProcessStartFailed, err.Error()), "command", name)
}

// lockedBuffer serializes writes from the stdout and stderr copy goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// lineWriter buffers partial writes and emits complete lines.
type lineWriter struct {
	emit    func(string)
	pending []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		w.emit(strings.TrimSuffix(string(w.pending[:i]), "\r"))
		w.pending = w.pending[i+1:]
	}
	return len(p), nil
}

// Flush emits a trailing line that has no newline.
func (w *lineWriter) Flush() {
	if len(w.pending) > 0 {
		w.emit(string(w.pending))
		w.pending = nil
	}
}

// resolveEnvironment applies extra on top of sysEnv. PATH from extra is
// prepended to the system PATH. The result is sorted by key.
func resolveEnvironment(sysEnv, extra []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(extra))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}

	for _, entry := range extra {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				v = v + string(os.PathListSeparator) + sysPath
			}
		}
		envMap[k] = v
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if value, ok := strings.CutPrefix(e, "PATH="); ok {
			path = value
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
