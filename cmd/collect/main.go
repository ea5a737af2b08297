// Command collect reads a JSON or YAML document and runs collection
// operations over it.
//
//	collect run --input users.json where:age:>:26 sortBy:age:desc pluck:name
//	collect pipeline adults --config collect.toml < users.yaml
//	collect methods
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/hasbyte1/go-collect/collections"
)

type globalOptions struct {
	LogLevel string `help:"Log level (debug, info, warn, error). Defaults to the config file, then info." placeholder:"LEVEL"`
	Config   string `help:"TOML file with defaults and named pipelines." short:"c" type:"path" placeholder:"FILE"`

	Stdin  io.Reader    `kong:"-"`
	Stdout io.Writer    `kong:"-"`
	Logger *slog.Logger `kong:"-"`

	file     fileConfig
	registry *collections.Registry
}

type cli struct {
	globalOptions

	Run      runCmd      `cmd:"" help:"Apply steps to a document."`
	Pipeline pipelineCmd `cmd:"" help:"Apply a named pipeline from the config file."`
	Methods  methodsCmd  `cmd:"" help:"List the methods a step can call."`
}

func newLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
		w = colorable.NewColorable(f)
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
	}))
}

// setup loads the config file and builds the logger and macro registry.
func (g *globalOptions) setup(stdin io.Reader, stdout, stderr io.Writer) error {
	g.Stdin, g.Stdout = stdin, stdout

	ll := &slog.LevelVar{}
	g.Logger = newLogger(stderr, ll)

	if g.Config != "" {
		cfg, err := loadConfig(g.Config, g.Logger)
		if err != nil {
			return err
		}
		g.file = cfg
	}

	level := g.LogLevel
	if level == "" {
		level = g.file.LogLevel
	}
	if level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("invalid log level %q", level)
		}
		ll.Set(l)
	}

	reg, err := g.file.registry(g.Logger)
	if err != nil {
		return err
	}
	g.registry = reg
	return nil
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer, opts ...kong.Option) error {
	var c cli
	opts = append([]kong.Option{
		kong.Name("collect"),
		kong.Description("Run collection operations over JSON and YAML documents."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, opts...)
	parser, err := kong.New(&c, opts...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if err := c.globalOptions.setup(stdin, stdout, stderr); err != nil {
		return err
	}
	return ctx.Run(&c.globalOptions)
}

func mainImpl() error {
	return execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "collect: %v\n", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
