package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collect/collections"
)

var (
	inputFormats  = []string{"json", "yaml"}
	outputFormats = []string{"json", "yaml", "table"}
)

// readInput reads path, or stdin when path is empty or "-".
func (g *globalOptions) readInput(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(g.Stdin)
		path = "stdin"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g.Logger.Debug("input read", "from", path, "size", humanize.Bytes(uint64(len(data))))
	return data, nil
}

// inputFormat picks the format of path: flag, then extension, then the
// config file, then json.
func (g *globalOptions) inputFormat(flag, path string) string {
	if flag != "" && flag != "auto" {
		return flag
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	if g.file.Format != "" {
		return g.file.Format
	}
	return "json"
}

func decode(data []byte, format string, opts ...collections.Option) (*collections.Collection, error) {
	switch format {
	case "json":
		return collections.FromJSON(data, opts...)
	case "yaml":
		v, err := decodeYAML(data)
		if err != nil {
			return nil, err
		}
		return collections.Make(v, opts...), nil
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

// decodeYAML decodes the first document of data, keeping mapping order.
func decodeYAML(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	v, err := fromNode(&doc, nil)
	if err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return v, nil
}

var errAliasCycle = errors.New("alias refers to itself")

// fromNode converts n to plain values. expanding holds the alias targets
// currently being expanded.
func fromNode(n *yaml.Node, expanding map[*yaml.Node]bool) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0], expanding)
	case yaml.AliasNode:
		if expanding[n.Alias] {
			return nil, fmt.Errorf("line %d: %w", n.Line, errAliasCycle)
		}
		if expanding == nil {
			expanding = make(map[*yaml.Node]bool)
		}
		expanding[n.Alias] = true
		defer delete(expanding, n.Alias)
		return fromNode(n.Alias, expanding)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromNode(item, expanding)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := orderedmap.New[string, any]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", k.Line)
			}
			if k.ShortTag() == "!!merge" {
				if err := mergeInto(out, v, expanding); err != nil {
					return nil, err
				}
				continue
			}
			value, err := fromNode(v, expanding)
			if err != nil {
				return nil, err
			}
			out.Set(k.Value, value)
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("line %d: unsupported yaml node", n.Line)
}

var errMergeTarget = errors.New("merge value must be a mapping or a sequence of mappings")

// mergeInto applies a "<<" merge key. Keys already set win.
func mergeInto(out *orderedmap.OrderedMap[string, any], n *yaml.Node, expanding map[*yaml.Node]bool) error {
	sources := []*yaml.Node{n}
	if n.Kind == yaml.SequenceNode {
		sources = n.Content
	}
	for _, src := range sources {
		v, err := fromNode(src, expanding)
		if err != nil {
			return err
		}
		m, ok := v.(*orderedmap.OrderedMap[string, any])
		if !ok {
			return fmt.Errorf("line %d: %w", src.Line, errMergeTarget)
		}
		for p := m.Oldest(); p != nil; p = p.Next() {
			if _, exists := out.Get(p.Key); !exists {
				out.Set(p.Key, p.Value)
			}
		}
	}
	return nil
}
