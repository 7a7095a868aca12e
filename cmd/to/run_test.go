package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)

	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}

func TestMergeYAML(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.yaml": "name: a\ntags: [x]\nnested:\n  keep: 1\n",
		"b.yaml": "name: b\ntags: [y]\nnested:\n  add: 2\n",
	})

	res := runCLI(t, "", "merge", filepath.Join(dir, "a.yaml"), filepath.Join(dir, "b.yaml"))
	require.Equal(t, exitSuccess, res.code, res.stderr)

	assert.Equal(t, `name:
  - a
  - b
tags:
  - x
  - y
nested:
  keep: 1
  add: 2
`, res.stdout)
	assert.Contains(t, res.stderr, "code=merge-conflict")
	assert.Contains(t, res.stderr, "path=name")
}

func TestMergeJSONWithYAMLNumbers(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.json": `{"port": 8080, "ratio": 0.5}`,
		"b.yaml": "port: 8080\nratio: 0.5\n",
	})

	res := runCLI(t, "", "merge", filepath.Join(dir, "a.json"), filepath.Join(dir, "b.yaml"))
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "{\n  \"port\": 8080,\n  \"ratio\": 0.5\n}\n", res.stdout)
	assert.NotContains(t, res.stderr, "merge-conflict")
}

func TestMergeSkipsEmptyDocuments(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.json":     `{"a": 1}`,
		"empty.yaml": "",
	})

	res := runCLI(t, "", "--log-level", "info", "merge", filepath.Join(dir, "a.json"), filepath.Join(dir, "empty.yaml"))
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", res.stdout)
	assert.Contains(t, res.stderr, "code=empty")
	assert.Contains(t, res.stderr, "level=INFO")
}

func TestFlattenAndUnflattenJSON(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"nested.json": `{"a": {"b": 1}, "c": "x"}`,
		"flat.json":   `{"a.b": 1, "c": "x"}`,
	})

	res := runCLI(t, "", "flatten", filepath.Join(dir, "nested.json"))
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "{\n  \"a.b\": 1,\n  \"c\": \"x\"\n}\n", res.stdout)

	res = runCLI(t, "", "-f", "yaml", "unflatten", filepath.Join(dir, "flat.json"))
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "a:\n  b: 1\nc: x\n", res.stdout)
}

func TestStdinCommands(t *testing.T) {
	t.Parallel()

	res := runCLI(t, `{"b": 1, "a": {"x": true}}`, "keys", "-")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "[\n  \"b\",\n  \"a\"\n]\n", res.stdout)

	res = runCLI(t, `{"b": 1, "a": 2}`, "-f", "json", "sort", "-")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}\n", res.stdout)

	res = runCLI(t, `[1, 1, {"a": 1}, {"a": 1}]`, "unique", "-")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "[\n  1,\n  {\n    \"a\": 1\n  }\n]\n", res.stdout)

	res = runCLI(t, `{"one": {"n": 1}, "skip": 2}`, "--key-field", "name", "entries", "-")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "[\n  {\n    \"name\": \"one\",\n    \"n\": 1\n  }\n]\n", res.stdout)

	res = runCLI(t, `{"a": 1}`, "type", "-")
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "object\n", res.stdout)
}

func TestOutputFile(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"in.yaml": "b: 1\na: 2\n"})
	out := filepath.Join(dir, "out.json")

	res := runCLI(t, "", "-o", out, "sort", filepath.Join(dir, "in.yaml"))
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Empty(t, res.stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 2,\n  \"b\": 1\n}\n", string(data))
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"to.yaml": "format: yaml\n",
		"in.json": `{"a": 1}`,
	})

	res := runCLI(t, "", "--config", filepath.Join(dir, "to.yaml"), "sort", filepath.Join(dir, "in.json"))
	require.Equal(t, exitSuccess, res.code, res.stderr)
	assert.Equal(t, "a: 1\n", res.stdout)
}

func TestExitCodes(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"list.json":     `[1, 2]`,
		"conflict.json": `{"a": 1, "a.b": 2}`,
		"a.json":        `{}`,
		"junk.json":     `{"a": 1} trailing`,
	})

	tests := []struct {
		name     string
		args     []string
		want     int
		inStderr string
	}{
		{name: "help", args: []string{"--help"}, want: exitSuccess, inStderr: "Commands:"},
		{name: "no command", args: nil, want: exitUsage, inStderr: "Usage:"},
		{name: "unknown command", args: []string{"explode", "x.json"}, want: exitUsage, inStderr: `unknown command "explode"`},
		{name: "misspelled command", args: []string{"flaten", "x.json"}, want: exitUsage, inStderr: `did you mean "flatten"?`},
		{name: "unknown flag", args: []string{"--nope", "keys"}, want: exitUsage, inStderr: "nope"},
		{name: "no files", args: []string{"keys"}, want: exitUsage, inStderr: "no input files"},
		{
			name:     "too many files",
			args:     []string{"sort", filepath.Join(dir, "a.json"), filepath.Join(dir, "a.json")},
			want:     exitUsage,
			inStderr: "exactly one input",
		},
		{name: "bad format", args: []string{"-f", "xml", "keys", "-"}, want: exitUsage, inStderr: "xml"},
		{
			name:     "missing file",
			args:     []string{"keys", filepath.Join(dir, "missing.json")},
			want:     exitFailure,
			inStderr: "code=load-failed",
		},
		{
			name:     "trailing data",
			args:     []string{"keys", filepath.Join(dir, "junk.json")},
			want:     exitFailure,
			inStderr: "code=load-failed",
		},
		{
			name:     "merge non-mapping",
			args:     []string{"merge", filepath.Join(dir, "a.json"), filepath.Join(dir, "list.json")},
			want:     exitFailure,
			inStderr: "code=not-mapping",
		},
		{
			name:     "unflatten conflict",
			args:     []string{"unflatten", filepath.Join(dir, "conflict.json")},
			want:     exitFailure,
			inStderr: "command failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.want, res.code)
			assert.Contains(t, res.stderr, tt.inStderr)
		})
	}
}
