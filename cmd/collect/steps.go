package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/hasbyte1/go-collect/collections"
)

// step is one method call of a pipeline, written method:arg:arg...
type step struct {
	raw    string
	method string
	args   []any
}

var (
	errEmptyStep      = errors.New("empty step")
	errUnbalancedStep = errors.New("unbalanced quotes or brackets")
)

var argJSON = jsoniter.Config{UseNumber: true}.Froze()

// descending maps a method to its descending variant when the last
// argument of a step is "desc".
var descending = map[string]string{
	"sort":     "sortDesc",
	"sortBy":   "sortByDesc",
	"sortKeys": "sortKeysDesc",
}

func parseSteps(raw []string) ([]step, error) {
	steps := make([]step, 0, len(raw))
	for _, r := range raw {
		s, err := parseStep(r)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

func parseStep(raw string) (step, error) {
	parts, err := splitStep(raw)
	if err != nil {
		return step{}, fmt.Errorf("step %q: %w", raw, err)
	}
	method := strings.TrimSpace(parts[0])
	if method == "" {
		return step{}, fmt.Errorf("step %q: %w", raw, errEmptyStep)
	}
	args := make([]any, 0, len(parts)-1)
	for _, p := range parts[1:] {
		args = append(args, parseArg(p))
	}
	if n := len(args); n > 0 {
		if dir, ok := args[n-1].(string); ok && (dir == "desc" || dir == "asc") {
			if desc, ok := descending[method]; ok {
				args = args[:n-1]
				if dir == "desc" {
					method = desc
				}
			}
		}
	}
	return step{raw: raw, method: method, args: args}, nil
}

// splitStep splits on colons outside double quotes and brackets, so
// JSON arguments can hold colons of their own.
func splitStep(raw string) ([]string, error) {
	var (
		parts   []string
		current strings.Builder
		depth   int
		quoted  bool
		escaped bool
	)
	for _, r := range raw {
		switch {
		case escaped:
			escaped = false
		case quoted && r == '\\':
			escaped = true
		case r == '"':
			quoted = !quoted
		case quoted:
		case r == '[' || r == '{':
			depth++
		case r == ']' || r == '}':
			depth--
			if depth < 0 {
				return nil, errUnbalancedStep
			}
		case r == ':' && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteRune(r)
	}
	if quoted || depth != 0 {
		return nil, errUnbalancedStep
	}
	return append(parts, current.String()), nil
}

// parseArg decodes s as JSON (42, true, null, "x", [1,2]) and returns it
// unchanged when it is not valid JSON.
func parseArg(s string) any {
	// jsoniter accepts truncated literals such as "tru".
	if strings.TrimSpace(s) == "" || !json.Valid([]byte(s)) {
		return s
	}
	var v any
	if err := argJSON.UnmarshalFromString(s, &v); err != nil {
		return s
	}
	return numbers(v)
}

func numbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return int(i)
		}
		f, err := x.Float64()
		if err != nil {
			return x.String()
		}
		return f
	case []any:
		for i, item := range x {
			x[i] = numbers(item)
		}
	case map[string]any:
		for k, item := range x {
			x[k] = numbers(item)
		}
	}
	return v
}

// apply runs steps in order. Every step but the last must return a
// collection.
func apply(c *collections.Collection, steps []step, logger *slog.Logger) (any, error) {
	var current any = c
	for i, s := range steps {
		coll, ok := current.(*collections.Collection)
		if !ok {
			return nil, fmt.Errorf("step %d %q: previous step returned %T, not a collection", i+1, s.raw, current)
		}
		start := time.Now()
		out, err := coll.Invoke(s.method, s.args...)
		if err == nil {
			if macroErr, ok := out.(error); ok {
				err = macroErr
			}
		}
		if err != nil {
			return nil, fmt.Errorf("step %d %q: %w", i+1, s.raw, err)
		}
		logger.Debug("step", "method", s.method, "args", len(s.args), "elapsed", time.Since(start))
		current = out
	}
	return current, nil
}
