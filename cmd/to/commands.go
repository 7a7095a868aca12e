package main

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/tjbenton/to/internal/diagnostic"
	"github.com/tjbenton/to/kind"
	"github.com/tjbenton/to/ordered"
	"github.com/tjbenton/to/to"
)

// input is one loaded document.
type input struct {
	name  string
	value any
}

type command struct {
	name    string
	summary string
	// single commands take exactly one document.
	single bool
	exec   func(a *app, inputs []input) (any, error)
}

var commands = []command{
	{name: "merge", summary: "deep merge mappings left to right", exec: (*app).merge},
	{name: "flatten", summary: "flatten mappings to dotted keys, or sequences to their leaves", exec: (*app).flatten},
	{name: "unflatten", summary: "rebuild nested mappings from dotted keys", single: true, exec: (*app).unflatten},
	{name: "sort", summary: "sort mapping keys or sequence values", single: true, exec: (*app).sort},
	{name: "keys", summary: "list mapping keys or sequence indices", single: true, exec: (*app).keys},
	{name: "entries", summary: "list mapping-valued entries with their key inlined", single: true, exec: (*app).entries},
	{name: "unique", summary: "drop repeated values of a sequence", single: true, exec: (*app).unique},
	{name: "type", summary: "print the type of the document", single: true, exec: (*app).typeOf},
}

func commandNames() []string {
	return lo.Map(commands, func(c command, _ int) string {
		return c.name
	})
}

func lookup(name string) (command, bool) {
	return lo.Find(commands, func(c command) bool {
		return c.name == name
	})
}

func (a *app) merge(inputs []input) (any, error) {
	target := ordered.New()

	for _, in := range inputs {
		if in.value == nil {
			a.diags.AddInfo(diagnostic.CodeEmpty, "empty document skipped", in.name, "")
			continue
		}

		if !kind.IsMapping(in.value) {
			a.diags.AddError(diagnostic.CodeNotMapping,
				fmt.Sprintf("cannot merge a %s", to.Type(in.value)), in.name, "")

			continue
		}

		_, conflicts := to.MergeConflicts(target, in.value)
		for _, c := range conflicts {
			a.diags.AddWarning(diagnostic.CodeMergeConflict,
				"conflicting values promoted to a sequence", in.name, c.Path)
		}
	}

	return target, nil
}

func (a *app) flatten(inputs []input) (any, error) {
	values := make([]any, len(inputs))
	for i, in := range inputs {
		values[i] = in.value
	}

	return to.Flatten(values...), nil
}

func (a *app) unflatten(inputs []input) (any, error) {
	in := inputs[0]

	m, ok := kind.AsMapping(in.value)
	if !ok {
		a.diags.AddError(diagnostic.CodeNotMapping,
			fmt.Sprintf("cannot unflatten a %s", to.Type(in.value)), in.name, "")

		return nil, nil
	}

	out, err := to.Unflatten(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.name, err)
	}

	return out, nil
}

func (a *app) sort(inputs []input) (any, error) {
	return to.Sort(inputs[0].value), nil
}

func (a *app) keys(inputs []input) (any, error) {
	return to.Keys(inputs[0].value), nil
}

func (a *app) entries(inputs []input) (any, error) {
	out := []any{}
	for entry := range to.ObjectEntries(inputs[0].value, a.cfg.KeyField) {
		out = append(out, entry)
	}

	return out, nil
}

func (a *app) unique(inputs []input) (any, error) {
	return to.UniqueValues(to.Array(inputs[0].value)), nil
}

func (a *app) typeOf(inputs []input) (any, error) {
	return to.Type(inputs[0].value), nil
}
