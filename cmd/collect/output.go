package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collect/collections"
)

type outputOptions struct {
	format string
	pretty bool
	indent int
}

// outputOptions resolves the output flags against the config file.
func (g *globalOptions) outputOptions(format string, pretty bool) outputOptions {
	o := outputOptions{format: format, pretty: pretty, indent: g.file.Indent}
	if o.format == "" || o.format == "auto" {
		o.format = g.file.Output
	}
	if o.format == "" {
		o.format = "json"
	}
	if o.indent > 0 {
		o.pretty = true
	}
	return o
}

// writeResult writes a collection in the selected format and any other
// result as JSON.
func writeResult(w io.Writer, result any, o outputOptions) error {
	c, ok := result.(*collections.Collection)
	if !ok {
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(result)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	switch o.format {
	case "json":
		var flags []collections.JSONFlag
		if o.pretty {
			flags = append(flags, collections.JSONPrettyPrint)
		}
		data, err := c.ToJSON(flags...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		return writeYAML(w, c, o.indent)
	case "table":
		return writeTable(w, c)
	}
	return fmt.Errorf("unknown output format %q", o.format)
}

func writeYAML(w io.Writer, c *collections.Collection, indent int) error {
	n, err := toNode(c.ToArray())
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	enc := yaml.NewEncoder(w)
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// toNode builds the yaml node of a plain structure, keeping the order of
// ordered maps.
func toNode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range x {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil
	case *orderedmap.OrderedMap[string, any]:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for p := x.Oldest(); p != nil; p = p.Next() {
			child, err := toNode(p.Value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Key}
			n.Content = append(n.Content, key, child)
		}
		return n, nil
	case *collections.Collection:
		return toNode(x.ToArray())
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}

// writeTable renders one row per item. When every item is structured the
// columns are the union of their keys in first-seen order, otherwise the
// table has a single value column.
func writeTable(w io.Writer, c *collections.Collection) error {
	x := table.NewWriter()
	columns := tableColumns(c)

	header := table.Row{"key"}
	if columns == nil {
		header = append(header, "value")
	}
	for _, col := range columns {
		header = append(header, col.String())
	}
	x.AppendHeader(header)

	rows := make([]table.Row, 0, c.Count())
	for _, e := range c.All() {
		row := table.Row{e.Key.String()}
		if columns == nil {
			row = append(row, cell(e.Value))
		} else {
			fields := collections.Make(e.Value)
			for _, col := range columns {
				row = append(row, cell(fields.Get(col.Value())))
			}
		}
		rows = append(rows, row)
	}
	x.AppendRows(rows)

	_, err := io.WriteString(w, x.Render()+"\n")
	return err
}

func tableColumns(c *collections.Collection) []collections.Key {
	if c.IsEmpty() {
		return nil
	}
	var columns []collections.Key
	seen := make(map[collections.Key]bool)
	for _, v := range c.Items() {
		if collections.KindOf(v) != collections.KindStructured {
			return nil
		}
		for _, k := range collections.Make(v).KeyList() {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	return columns
}

func cell(v any) string {
	switch collections.KindOf(v) {
	case collections.KindNull:
		return ""
	case collections.KindBool:
		return fmt.Sprint(v)
	case collections.KindStructured:
		return collections.Make(v).String()
	}
	return collections.Text(v)
}
