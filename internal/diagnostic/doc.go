// Package diagnostic collects the warnings and errors the CLI finds while loading and
// combining documents, so that one bad input does not hide the problems of the others.
//
// Key capabilities:
//   - Merge conflict warnings with the conflicting key path
//   - Load and shape errors per document
//   - Notes on skipped empty documents
//   - Reporting through a slog.Logger
package diagnostic
