package main

import (
	"fmt"
	"slices"

	"github.com/hasbyte1/go-collect/collections"
)

type ioOptions struct {
	Input  string `help:"Document to read, - for stdin." short:"i" default:"-" placeholder:"FILE"`
	Format string `help:"Input format." short:"f" enum:"auto,json,yaml" default:"auto"`
	Output string `help:"Output format. Defaults to the config file, then json." short:"o" enum:"auto,json,yaml,table" default:"auto"`
	Pretty bool   `help:"Indent JSON output."`
}

// load reads and decodes the input document.
func (o *ioOptions) load(g *globalOptions) (*collections.Collection, error) {
	data, err := g.readInput(o.Input)
	if err != nil {
		return nil, err
	}
	format := g.inputFormat(o.Format, o.Input)
	c, err := decode(data, format, collections.WithRegistry(g.registry))
	if err != nil {
		return nil, fmt.Errorf("%s input: %w", format, err)
	}
	g.Logger.Debug("document decoded", "format", format, "items", c.Count())
	return c, nil
}

func (o *ioOptions) run(g *globalOptions, steps []step) error {
	c, err := o.load(g)
	if err != nil {
		return err
	}
	result, err := apply(c, steps, g.Logger)
	if err != nil {
		return err
	}
	return writeResult(g.Stdout, result, g.outputOptions(o.Output, o.Pretty))
}

type runCmd struct {
	ioOptions `embed:""`

	Steps []string `arg:"" optional:"" help:"Steps to apply, each method or method:arg:arg... (where:age:>:30, sortBy:age:desc, pluck:name)."`
}

func (cmd *runCmd) Run(g *globalOptions) error {
	steps, err := parseSteps(cmd.Steps)
	if err != nil {
		return err
	}
	return cmd.run(g, steps)
}

type pipelineCmd struct {
	ioOptions `embed:""`

	Name string `arg:"" help:"Pipeline name from the config file."`
}

func (cmd *pipelineCmd) Run(g *globalOptions) error {
	steps, err := g.file.pipeline(cmd.Name)
	if err != nil {
		return err
	}
	g.Logger.Debug("pipeline", "name", cmd.Name, "steps", len(steps))
	return cmd.run(g, steps)
}

type methodsCmd struct {
	Outer bool `help:"List only the operations usable as the outer operation of a higher-order call."`
}

func (cmd *methodsCmd) Run(g *globalOptions) error {
	names := collections.Methods()
	if cmd.Outer {
		names = collections.OuterOperations()
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(g.Stdout, name); err != nil {
			return err
		}
	}
	if cmd.Outer {
		return nil
	}
	macros := g.registry.Names()
	slices.Sort(macros)
	for _, name := range macros {
		if _, err := fmt.Fprintf(g.Stdout, "%s (pipeline)\n", name); err != nil {
			return err
		}
	}
	return nil
}
