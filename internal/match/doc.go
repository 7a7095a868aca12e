// Package match finds the known name closest to a misspelled one. The CLI uses it to
// suggest a command or setting when it does not recognise the one it was given.
//
// Key functions:
//   - Normalize: folds case and drops separators so "log-level" matches "log_level"
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the best candidate above a similarity threshold
package match
