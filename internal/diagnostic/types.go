package diagnostic

import (
	"context"
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"

	"github.com/tjbenton/to/internal/common"
)

// Codes of the diagnostics the CLI emits.
const (
	CodeLoadFailed    = "load-failed"
	CodeNotMapping    = "not-mapping"
	CodeMergeConflict = "merge-conflict"
	CodeEmpty         = "empty"
)

// Diagnostics holds all diagnostic information from one command run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Document is the input the diagnostic relates to (if any).
	Document string
	// Path is the dotted key inside the document (if any).
	Path string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Level maps the severity onto a slog level.
func (s DiagnosticSeverity) Level() slog.Level {
	switch s {
	case DiagnosticWarning:
		return slog.LevelWarn
	case DiagnosticError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, document, path string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Document: document,
		Path:     path,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, document, path string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Document: document,
		Path:     path,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, document, path string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Document: document,
		Path:     path,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Report logs every diagnostic, infos first and errors last.
func (d *Diagnostics) Report(ctx context.Context, logger *slog.Logger) {
	logger = slogx.DefaultIfNil(logger)

	for _, group := range [][]Diagnostic{d.Infos, d.Warnings, d.Errors} {
		for _, diag := range group {
			logger.Log(ctx, diag.Severity.Level(), diag.Message, diag.attrs()...)
		}
	}
}

func (d Diagnostic) attrs() []any {
	attrs := []any{slog.String("code", d.Code)}
	if d.Document != "" {
		attrs = append(attrs, slog.String("document", d.Document))
	}

	if d.Path != "" {
		attrs = append(attrs, slog.String("path", d.Path))
	}

	return attrs
}
