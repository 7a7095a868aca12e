// Package document reads and writes the documents the CLI works on. JSON and YAML keep
// the key order of the source, TOML tables come back with sorted keys.
package document
