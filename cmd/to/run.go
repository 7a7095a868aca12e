package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/spf13/pflag"

	"github.com/tjbenton/to/internal/common"
	"github.com/tjbenton/to/internal/config"
	"github.com/tjbenton/to/internal/diagnostic"
	"github.com/tjbenton/to/internal/document"
	"github.com/tjbenton/to/internal/match"
	"github.com/tjbenton/to/utils"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// stdinName is the file argument that reads from standard input.
const stdinName = "-"

type app struct {
	cfg    config.Config
	logger *slog.Logger
	diags  diagnostic.Diagnostics
	stdin  io.Reader
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("to", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringP("format", "f", "", "output format: json|yaml|toml|dump (default: format of the first input)")
	fs.StringP("output", "o", "", "write the result to this file instead of stdout")
	fs.String("key-field", "", "key field used by the entries command (default \"key\")")
	fs.String("config", "", "config file (json, yaml or toml)")
	fs.String("log-level", "", "log level: debug|info|warn|error|none (default \"warn\")")
	fs.String("log-format", "", "log format: text|json|text-no-time (default \"text-no-time\")")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: to [flags] <command> [files...]\n\nCommands:\n")

		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-10s %s\n", c.name, c.summary)
		}

		fmt.Fprintf(stderr, "\nFiles are read by extension, %q reads stdin.\n\nFlags:\n%s", stdinName, fs.FlagUsages())
	}

	return fs
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)

	err := fs.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return exitSuccess
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	configPath, _ := fs.GetString("config")

	cfg, err := config.Load(configPath, fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	name, ok := common.First(fs.Args())
	if !ok {
		fs.Usage()
		return exitUsage
	}

	cmd, ok := lookup(name)
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", name)

		if suggestion, ok := match.Closest(name, commandNames()); ok {
			fmt.Fprintf(stderr, "did you mean %q?\n", suggestion)
		}

		fs.Usage()

		return exitUsage
	}

	files := utils.Rest(fs.Args(), 1)

	switch {
	case common.IsEmpty(files):
		fmt.Fprintf(stderr, "%s: no input files\n", cmd.name)
		return exitUsage
	case cmd.single && len(files) > 1:
		fmt.Fprintf(stderr, "%s: takes exactly one input, got %d\n", cmd.name, len(files))
		return exitUsage
	}

	logger := slogx.Child(slogx.NewLogger(
		slogx.WithLevel(cfg.LogLevel),
		slogx.WithFormat(cfg.LogFormat),
		slogx.WithWriter(stderr),
	), "to")

	a := &app{cfg: cfg, logger: logger, stdin: stdin}

	return a.execute(ctx, cmd, files, stdout)
}

func (a *app) execute(ctx context.Context, cmd command, files []string, stdout io.Writer) int {
	a.logger.DebugContext(ctx, "running command", slog.String("command", cmd.name), slog.Any("files", files))

	inputs := a.load(files)

	defer a.diags.Report(ctx, a.logger)

	if a.diags.HasErrors() {
		return exitFailure
	}

	result, err := cmd.exec(a, inputs)
	if err != nil {
		a.logger.ErrorContext(ctx, "command failed", slog.String("command", cmd.name), slogx.Error(err))
		return exitFailure
	}

	if a.diags.HasErrors() {
		return exitFailure
	}

	err = a.write(stdout, result, files[0])
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to write result", slogx.Error(err))
		return exitFailure
	}

	return exitSuccess
}

func (a *app) load(files []string) []input {
	inputs := make([]input, 0, len(files))

	for _, file := range files {
		var (
			v   any
			err error
		)

		if file == stdinName {
			v, err = document.Load(a.stdin, a.inputFormat())
		} else {
			v, err = document.LoadFile(file)
		}

		if err != nil {
			a.diags.AddError(diagnostic.CodeLoadFailed, err.Error(), file, "")
			continue
		}

		inputs = append(inputs, input{name: file, value: v})
	}

	return inputs
}

// inputFormat is the format stdin is parsed as.
func (a *app) inputFormat() document.Format {
	if a.cfg.Format == "" || a.cfg.Format == document.FormatDump {
		return document.FormatJSON
	}

	return a.cfg.Format
}

// outputFormat picks, in order: the format flag, the extension of the output file, the
// extension of the first input, JSON.
func (a *app) outputFormat(firstInput string) document.Format {
	if a.cfg.Format != "" {
		return a.cfg.Format
	}

	for _, path := range []string{a.cfg.Output, firstInput} {
		if path == "" || path == stdinName {
			continue
		}

		if f, err := document.FormatFromPath(path); err == nil {
			return f
		}
	}

	return document.FormatJSON
}

func (a *app) write(stdout io.Writer, result any, firstInput string) error {
	format := a.outputFormat(firstInput)

	if a.cfg.Output != "" {
		return document.WriteFile(a.cfg.Output, result, format)
	}

	if s, ok := result.(string); ok {
		_, err := fmt.Fprintln(stdout, s)
		return err
	}

	return document.Encode(stdout, result, format)
}
