package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrDeclarationReadFailed is returned when the declaration file cannot be read.
	ErrDeclarationReadFailed = zerr.New("failed to read declaration file")

	// ErrDeclarationParseFailed is returned when the declaration file is not valid YAML
	// or does not have the expected shape.
	ErrDeclarationParseFailed = zerr.New("failed to parse declaration file")

	// ErrMalformedConstraint is returned when a version constraint does not match the grammar.
	ErrMalformedConstraint = zerr.New("malformed version constraint")

	// ErrDuplicateDependency is returned when a dependency name is declared more than once.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrInvalidSetting is returned when a target setting is missing or not one of its allowed values.
	ErrInvalidSetting = zerr.New("invalid target setting")

	// ErrInvalidToolchainRef is returned when the toolchain or sysroot reference names
	// an undeclared dependency or one of the wrong kind.
	ErrInvalidToolchainRef = zerr.New("invalid toolchain reference")

	// ErrIndexReadFailed is returned when the package index cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read package index")

	// ErrIndexParseFailed is returned when the package index cannot be parsed.
	ErrIndexParseFailed = zerr.New("failed to parse package index")

	// ErrUnknownDependency is returned when the package index has no entry for a dependency.
	ErrUnknownDependency = zerr.New("unknown dependency")

	// ErrUnsatisfiableConstraint is returned when no indexed version satisfies a constraint.
	ErrUnsatisfiableConstraint = zerr.New("unsatisfiable constraint")

	// ErrPackageNotFound is returned by the package index when a name/version pair is not indexed.
	ErrPackageNotFound = zerr.New("package not found in index")

	// ErrPathResolution is returned when an install path does not resolve to a materialized package.
	ErrPathResolution = zerr.New("install path could not be resolved")

	// ErrConfigureFailed is returned when the configure phase exits unsuccessfully.
	ErrConfigureFailed = zerr.New("configure failed")

	// ErrCompileFailed is returned when the build phase exits unsuccessfully.
	ErrCompileFailed = zerr.New("compile failed")

	// ErrCancelled is returned when the invocation was cancelled by an external signal.
	ErrCancelled = zerr.New("build cancelled")

	// ErrTimeout is returned when a subprocess phase exceeded its wall-clock budget.
	ErrTimeout = zerr.New("build timed out")

	// ErrIllegalTransition is returned when an invocation is moved to a state it cannot reach.
	ErrIllegalTransition = zerr.New("illegal invocation state transition")

	// ErrProcessStartFailed is returned when a subprocess cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrToolchainWriteFailed is returned when the toolchain file cannot be written.
	ErrToolchainWriteFailed = zerr.New("failed to write toolchain file")

	// ErrStoreReadFailed is returned when the history store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build history")

	// ErrStoreWriteFailed is returned when the history store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build history")
)

// ErrorKind classifies a terminal invocation error.
type ErrorKind string

const (
	KindNone                    ErrorKind = ""
	KindMalformedConstraint     ErrorKind = "MalformedConstraint"
	KindDuplicateDependency     ErrorKind = "DuplicateDependency"
	KindInvalidDeclaration      ErrorKind = "InvalidDeclaration"
	KindUnknownDependency       ErrorKind = "UnknownDependency"
	KindUnsatisfiableConstraint ErrorKind = "UnsatisfiableConstraint"
	KindIndexUnavailable        ErrorKind = "IndexUnavailable"
	KindPathResolution          ErrorKind = "PathResolutionError"
	KindConfigureFailed         ErrorKind = "ConfigureFailed"
	KindCompileFailed           ErrorKind = "CompileFailed"
	KindCancelled               ErrorKind = "Cancelled"
	KindTimeout                 ErrorKind = "Timeout"
	KindInternal                ErrorKind = "Internal"
)

// kindTable is ordered: the first sentinel found in the chain wins.
var kindTable = []struct {
	err  error
	kind ErrorKind
}{
	{ErrCancelled, KindCancelled},
	{ErrTimeout, KindTimeout},
	{ErrConfigureFailed, KindConfigureFailed},
	{ErrCompileFailed, KindCompileFailed},
	{ErrPathResolution, KindPathResolution},
	{ErrUnsatisfiableConstraint, KindUnsatisfiableConstraint},
	{ErrUnknownDependency, KindUnknownDependency},
	{ErrIndexReadFailed, KindIndexUnavailable},
	{ErrIndexParseFailed, KindIndexUnavailable},
	{ErrMalformedConstraint, KindMalformedConstraint},
	{ErrDuplicateDependency, KindDuplicateDependency},
	{ErrInvalidSetting, KindInvalidDeclaration},
	{ErrInvalidToolchainRef, KindInvalidDeclaration},
	{ErrDeclarationReadFailed, KindInvalidDeclaration},
	{ErrDeclarationParseFailed, KindInvalidDeclaration},
}

// KindOf classifies err. A nil error has KindNone; errors outside the
// taxonomy are KindInternal.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, entry := range kindTable {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}
	return KindInternal
}

// Exit codes reported by the CLI.
const (
	ExitOK        = 0
	ExitInternal  = 1
	ExitParse     = 2
	ExitResolve   = 3
	ExitPlan      = 4
	ExitConfigure = 5
	ExitCompile   = 6
	ExitInterrupt = 7
)

// ExitCode maps an error kind to its process exit code.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindNone:
		return ExitOK
	case KindMalformedConstraint, KindDuplicateDependency, KindInvalidDeclaration:
		return ExitParse
	case KindUnknownDependency, KindUnsatisfiableConstraint, KindIndexUnavailable:
		return ExitResolve
	case KindPathResolution:
		return ExitPlan
	case KindConfigureFailed:
		return ExitConfigure
	case KindCompileFailed:
		return ExitCompile
	case KindCancelled, KindTimeout:
		return ExitInterrupt
	default:
		return ExitInternal
	}
}

// PhaseError reports a build-system phase whose subprocess exited unsuccessfully.
// Output holds the subprocess's captured diagnostics verbatim.
type PhaseError struct {
	Phase    State
	ExitCode int
	Output   string
	kind     error
}

// NewPhaseError creates a PhaseError for phase. The sentinel is ErrConfigureFailed
// for StateConfiguring and ErrCompileFailed otherwise.
func NewPhaseError(phase State, exitCode int, output string) *PhaseError {
	kind := ErrCompileFailed
	if phase == StateConfiguring {
		kind = ErrConfigureFailed
	}
	return &PhaseError{Phase: phase, ExitCode: exitCode, Output: output, kind: kind}
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: exit code %d", e.kind.Error(), e.ExitCode)
}

// Unwrap returns the phase sentinel so errors.Is matches ErrConfigureFailed or ErrCompileFailed.
func (e *PhaseError) Unwrap() error {
	return e.kind
}
