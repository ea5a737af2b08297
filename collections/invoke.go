package collections

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

type builtin func(c *Collection, args []any) (any, error)

// builtins is filled in init: its entries reach Invoke again through
// GroupBy and the higher-order proxies.
var builtins map[string]builtin

// Invoke calls the operation named method with args. Built-in operations
// are addressed by their camelCase name ("sortByDesc", "whereIn", ...);
// other names are looked up in the bound registry. It returns
// ErrMethodNotFound for unknown names and ErrInvalidArgument when an
// argument has the wrong shape.
//
//	res, err := c.Invoke("where", "age", ">", 30)
func (c *Collection) Invoke(method string, args ...any) (any, error) {
	if fn, ok := builtins[method]; ok {
		return fn(c, args)
	}
	if macro, ok := c.registry.Lookup(method); ok {
		return macro(c, args...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrMethodNotFound, method)
}

// Methods returns the names of the built-in operations Invoke dispatches,
// sorted.
func Methods() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// OuterOperations returns the operations usable with
// [Collection.HigherOrder], sorted.
func OuterOperations() []string { return slices.Clone(outerOperations) }

// ─────────────────────────────────────────────────────────────────────────────
// Argument helpers
// ─────────────────────────────────────────────────────────────────────────────

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func invalid(method string, i int, want string, got any) error {
	return fmt.Errorf("%w: %s argument %d must be %s, got %T", ErrInvalidArgument, method, i+1, want, got)
}

func intArg(method string, args []any, i, def int) (int, error) {
	v := arg(args, i)
	if v == nil {
		return def, nil
	}
	sv := scalarOf(v)
	switch sv.kind {
	case KindInt, KindFloat, KindString:
		if n, ok := sv.toNumber(); ok {
			if n.isInt {
				return int(n.i), nil
			}
			if n.f == math.Trunc(n.f) && !math.IsInf(n.f, 0) {
				return int(n.f), nil
			}
		}
	}
	return 0, invalid(method, i, "an integer", v)
}

func stringArg(args []any, i int, def string) string {
	v := arg(args, i)
	if v == nil {
		return def
	}
	return Text(v)
}

func seedArgs(method string, args []any, i int) ([]uint64, error) {
	if arg(args, i) == nil {
		return nil, nil
	}
	n, err := intArg(method, args, i, 0)
	if err != nil {
		return nil, err
	}
	return []uint64{uint64(n)}, nil
}

// predicateArg returns nil when the argument is absent, the callback when
// it is one, and a truthiness test of the key path otherwise.
func predicateArg(args []any, i int) Predicate {
	v := arg(args, i)
	if v == nil {
		return nil
	}
	return retrieverPredicate(v)
}

func flagsArg(method string, args []any, from int) ([]SortFlag, error) {
	var flags []SortFlag
	for i := from; i < len(args); i++ {
		switch v := args[i].(type) {
		case SortFlag:
			flags = append(flags, v)
		case string:
			for _, name := range strings.Split(v, "|") {
				f, ok := sortFlagNames[strings.ToLower(strings.TrimSpace(name))]
				if !ok {
					return nil, invalid(method, i, "a sort flag", v)
				}
				flags = append(flags, f)
			}
		default:
			n, err := intArg(method, args, i, 0)
			if err != nil {
				return nil, invalid(method, i, "a sort flag", v)
			}
			flags = append(flags, SortFlag(n))
		}
	}
	return flags, nil
}

var sortFlagNames = map[string]SortFlag{
	"regular": SortRegular,
	"numeric": SortNumeric,
	"string":  SortString,
	"natural": SortNatural,
	"case":    SortFlagCase,
}

func between(method string, args []any) (low, high any, err error) {
	if len(args) >= 3 {
		return args[1], args[2], nil
	}
	bounds := Make(arg(args, 1)).Items()
	if len(bounds) != 2 {
		return nil, nil, invalid(method, 1, "a [low, high] pair", arg(args, 1))
	}
	return bounds[0], bounds[1], nil
}

// listArg returns args[from] when it is the only remaining argument and a
// structure, else the remaining arguments.
func listArg(args []any, from int) any {
	if len(args) == from+1 && KindOf(args[from]) == KindStructured {
		return args[from]
	}
	return args[min(from, len(args)):]
}

func found(v any, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in table
// ─────────────────────────────────────────────────────────────────────────────

func init() {
	builtins = map[string]builtin{
		// Access
		"all":             func(c *Collection, _ []any) (any, error) { return c.All(), nil },
		"count":           func(c *Collection, _ []any) (any, error) { return c.Count(), nil },
		"isEmpty":         func(c *Collection, _ []any) (any, error) { return c.IsEmpty(), nil },
		"isNotEmpty":      func(c *Collection, _ []any) (any, error) { return c.IsNotEmpty(), nil },
		"containsOneItem": func(c *Collection, _ []any) (any, error) { return c.ContainsOneItem(), nil },
		"keys":            func(c *Collection, _ []any) (any, error) { return c.Keys(), nil },
		"values":          func(c *Collection, _ []any) (any, error) { return c.Values(), nil },
		"collect":         func(c *Collection, _ []any) (any, error) { return c.Collect(), nil },
		"clone":           func(c *Collection, _ []any) (any, error) { return c.Clone(), nil },
		"toArray":         func(c *Collection, _ []any) (any, error) { return c.ToArray(), nil },
		"toJson": func(c *Collection, _ []any) (any, error) {
			data, err := c.ToJSON()
			return string(data), err
		},
		"get": func(c *Collection, args []any) (any, error) {
			return c.Get(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"has":    func(c *Collection, args []any) (any, error) { return c.Has(args...), nil },
		"hasAny": func(c *Collection, args []any) (any, error) { return c.HasAny(args...), nil },
		"only":   func(c *Collection, args []any) (any, error) { return c.Only(args...), nil },
		"except": func(c *Collection, args []any) (any, error) { return c.Except(args...), nil },
		"first": func(c *Collection, args []any) (any, error) {
			return c.First(predicateArg(args, 0), args[min(1, len(args)):]...), nil
		},
		"last": func(c *Collection, args []any) (any, error) {
			return c.Last(predicateArg(args, 0), args[min(1, len(args)):]...), nil
		},
		"firstWhere": func(c *Collection, args []any) (any, error) {
			return c.FirstWhere(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"firstOrFail": func(c *Collection, args []any) (any, error) { return c.FirstOrFail(args...) },
		"sole":        func(c *Collection, args []any) (any, error) { return c.Sole(args...) },
		"search": func(c *Collection, args []any) (any, error) {
			k, ok := c.Search(arg(args, 0), Truthy(arg(args, 1)))
			if !ok {
				return false, nil
			}
			return k.Value(), nil
		},
		"value": func(c *Collection, args []any) (any, error) { return c.Value(args...), nil },

		// Filtering
		"filter": func(c *Collection, args []any) (any, error) { return c.Filter(predicateArg(args, 0)), nil },
		"reject": func(c *Collection, args []any) (any, error) { return c.Reject(arg(args, 0)), nil },
		"where": func(c *Collection, args []any) (any, error) {
			return c.Where(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"whereStrict": func(c *Collection, args []any) (any, error) {
			return c.WhereStrict(arg(args, 0), arg(args, 1)), nil
		},
		"whereBetween": func(c *Collection, args []any) (any, error) {
			low, high, err := between("whereBetween", args)
			if err != nil {
				return nil, err
			}
			return c.WhereBetween(arg(args, 0), low, high), nil
		},
		"whereNotBetween": func(c *Collection, args []any) (any, error) {
			low, high, err := between("whereNotBetween", args)
			if err != nil {
				return nil, err
			}
			return c.WhereNotBetween(arg(args, 0), low, high), nil
		},
		"whereIn": func(c *Collection, args []any) (any, error) {
			return c.WhereIn(arg(args, 0), listArg(args, 1)), nil
		},
		"whereInStrict": func(c *Collection, args []any) (any, error) {
			return c.WhereInStrict(arg(args, 0), listArg(args, 1)), nil
		},
		"whereNotIn": func(c *Collection, args []any) (any, error) {
			return c.WhereNotIn(arg(args, 0), listArg(args, 1)), nil
		},
		"whereNotInStrict": func(c *Collection, args []any) (any, error) {
			return c.WhereNotInStrict(arg(args, 0), listArg(args, 1)), nil
		},
		"whereNull":    func(c *Collection, args []any) (any, error) { return c.WhereNull(args...), nil },
		"whereNotNull": func(c *Collection, args []any) (any, error) { return c.WhereNotNull(args...), nil },
		"contains": func(c *Collection, args []any) (any, error) {
			return c.Contains(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"some": func(c *Collection, args []any) (any, error) {
			return c.Some(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"doesntContain": func(c *Collection, args []any) (any, error) {
			return c.DoesntContain(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"containsStrict": func(c *Collection, args []any) (any, error) {
			return c.ContainsStrict(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"every": func(c *Collection, args []any) (any, error) {
			return c.Every(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"partition": func(c *Collection, args []any) (any, error) {
			pass, fail := c.Partition(arg(args, 0), args[min(1, len(args)):]...)
			return c.withValues([]any{pass, fail}), nil
		},

		// Mapping and structure
		"each": func(c *Collection, args []any) (any, error) {
			switch fn := arg(args, 0).(type) {
			case func(any, Key) bool:
				return c.Each(fn), nil
			case func(any, Key):
				return c.Each(func(v any, k Key) bool { fn(v, k); return true }), nil
			}
			return nil, invalid("each", 0, "a func(any, Key) bool", arg(args, 0))
		},
		"map":     func(c *Collection, args []any) (any, error) { return c.Map(valueRetriever(arg(args, 0))), nil },
		"flatMap": func(c *Collection, args []any) (any, error) { return c.FlatMap(valueRetriever(arg(args, 0))), nil },
		"mapWithKeys": func(c *Collection, args []any) (any, error) {
			fn, ok := arg(args, 0).(func(any, Key) (any, any))
			if !ok {
				return nil, invalid("mapWithKeys", 0, "a func(any, Key) (any, any)", arg(args, 0))
			}
			return c.MapWithKeys(fn), nil
		},
		"keyBy":   func(c *Collection, args []any) (any, error) { return c.KeyBy(arg(args, 0)), nil },
		"flip":    func(c *Collection, _ []any) (any, error) { return c.Flip(), nil },
		"reverse": func(c *Collection, _ []any) (any, error) { return c.Reverse(), nil },
		"pluck": func(c *Collection, args []any) (any, error) {
			return c.Pluck(arg(args, 0), args[min(1, len(args)):]...), nil
		},
		"collapse": func(c *Collection, _ []any) (any, error) { return c.Collapse(), nil },
		"flatten": func(c *Collection, args []any) (any, error) {
			depth, err := intArg("flatten", args, 0, math.MaxInt)
			if err != nil {
				return nil, err
			}
			return c.Flatten(depth), nil
		},
		"combine": func(c *Collection, args []any) (any, error) { return c.Combine(arg(args, 0)) },
		"concat":  func(c *Collection, args []any) (any, error) { return c.Concat(arg(args, 0)), nil },
		"zip":     func(c *Collection, args []any) (any, error) { return c.Zip(args...), nil },
		"pad": func(c *Collection, args []any) (any, error) {
			size, err := intArg("pad", args, 0, 0)
			if err != nil {
				return nil, err
			}
			return c.Pad(size, arg(args, 1)), nil
		},
		"dot":   func(c *Collection, _ []any) (any, error) { return c.Dot(), nil },
		"undot": func(c *Collection, _ []any) (any, error) { return c.Undot(), nil },

		// Grouping
		"groupBy": func(c *Collection, args []any) (any, error) {
			return c.GroupBy(arg(args, 0), Truthy(arg(args, 1))), nil
		},
		"countBy": func(c *Collection, args []any) (any, error) { return c.CountBy(arg(args, 0)), nil },

		// Sorting
		"sort": func(c *Collection, args []any) (any, error) {
			switch cmp := arg(args, 0).(type) {
			case nil:
				return c.Sort(nil), nil
			case func(a, b any) int:
				return c.Sort(cmp), nil
			}
			flags, err := flagsArg("sort", args, 0)
			if err != nil {
				return nil, err
			}
			return c.Sort(comparatorFor(flags)), nil
		},
		"sortDesc": func(c *Collection, args []any) (any, error) {
			flags, err := flagsArg("sortDesc", args, 0)
			if err != nil {
				return nil, err
			}
			return c.SortDesc(flags...), nil
		},
		"sortBy": func(c *Collection, args []any) (any, error) {
			flags, err := flagsArg("sortBy", args, 1)
			if err != nil {
				return nil, err
			}
			return c.SortBy(arg(args, 0), flags...), nil
		},
		"sortByDesc": func(c *Collection, args []any) (any, error) {
			flags, err := flagsArg("sortByDesc", args, 1)
			if err != nil {
				return nil, err
			}
			return c.SortByDesc(arg(args, 0), flags...), nil
		},
		"sortKeys": func(c *Collection, args []any) (any, error) {
			flags, err := flagsArg("sortKeys", args, 0)
			if err != nil {
				return nil, err
			}
			return c.SortKeys(flags...), nil
		},
		"sortKeysDesc": func(c *Collection, args []any) (any, error) {
			flags, err := flagsArg("sortKeysDesc", args, 0)
			if err != nil {
				return nil, err
			}
			return c.SortKeysDesc(flags...), nil
		},

		// Set algebra
		"diff":             func(c *Collection, args []any) (any, error) { return c.Diff(arg(args, 0)), nil },
		"diffAssoc":        func(c *Collection, args []any) (any, error) { return c.DiffAssoc(arg(args, 0)), nil },
		"diffKeys":         func(c *Collection, args []any) (any, error) { return c.DiffKeys(arg(args, 0)), nil },
		"intersect":        func(c *Collection, args []any) (any, error) { return c.Intersect(arg(args, 0)), nil },
		"intersectByKeys":  func(c *Collection, args []any) (any, error) { return c.IntersectByKeys(arg(args, 0)), nil },
		"union":            func(c *Collection, args []any) (any, error) { return c.Union(arg(args, 0)), nil },
		"merge":            func(c *Collection, args []any) (any, error) { return c.Merge(arg(args, 0)), nil },
		"mergeRecursive":   func(c *Collection, args []any) (any, error) { return c.MergeRecursive(arg(args, 0)), nil },
		"replace":          func(c *Collection, args []any) (any, error) { return c.Replace(arg(args, 0)), nil },
		"replaceRecursive": func(c *Collection, args []any) (any, error) { return c.ReplaceRecursive(arg(args, 0)), nil },
		"unique":           func(c *Collection, args []any) (any, error) { return c.Unique(arg(args, 0)), nil },
		"uniqueStrict":     func(c *Collection, args []any) (any, error) { return c.UniqueStrict(arg(args, 0)), nil },
		"duplicates":       func(c *Collection, args []any) (any, error) { return c.Duplicates(arg(args, 0)), nil },
		"duplicatesStrict": func(c *Collection, args []any) (any, error) { return c.DuplicatesStrict(arg(args, 0)), nil },

		// Windowing
		"chunk": func(c *Collection, args []any) (any, error) {
			size, err := intArg("chunk", args, 0, 0)
			if err != nil {
				return nil, err
			}
			return c.Chunk(size), nil
		},
		"chunkWhile": func(c *Collection, args []any) (any, error) {
			fn, ok := arg(args, 0).(func(any, Key, *Collection) bool)
			if !ok {
				return nil, invalid("chunkWhile", 0, "a func(any, Key, *Collection) bool", arg(args, 0))
			}
			return c.ChunkWhile(fn), nil
		},
		"sliding": func(c *Collection, args []any) (any, error) {
			size, err := intArg("sliding", args, 0, 2)
			if err != nil {
				return nil, err
			}
			step, err := intArg("sliding", args, 1, 1)
			if err != nil {
				return nil, err
			}
			return c.Sliding(size, step), nil
		},
		"split": func(c *Collection, args []any) (any, error) {
			n, err := intArg("split", args, 0, 1)
			if err != nil {
				return nil, err
			}
			return c.Split(n), nil
		},
		"splitIn": func(c *Collection, args []any) (any, error) {
			n, err := intArg("splitIn", args, 0, 1)
			if err != nil {
				return nil, err
			}
			return c.SplitIn(n), nil
		},
		"nth": func(c *Collection, args []any) (any, error) {
			step, err := intArg("nth", args, 0, 1)
			if err != nil {
				return nil, err
			}
			offset, err := intArg("nth", args, 1, 0)
			if err != nil {
				return nil, err
			}
			return c.Nth(step, offset), nil
		},
		"forPage": func(c *Collection, args []any) (any, error) {
			page, err := intArg("forPage", args, 0, 1)
			if err != nil {
				return nil, err
			}
			perPage, err := intArg("forPage", args, 1, 15)
			if err != nil {
				return nil, err
			}
			return c.ForPage(page, perPage), nil
		},
		"slice": func(c *Collection, args []any) (any, error) {
			offset, err := intArg("slice", args, 0, 0)
			if err != nil {
				return nil, err
			}
			if arg(args, 1) == nil {
				return c.Slice(offset), nil
			}
			length, err := intArg("slice", args, 1, 0)
			if err != nil {
				return nil, err
			}
			return c.Slice(offset, length), nil
		},
		"take": func(c *Collection, args []any) (any, error) {
			n, err := intArg("take", args, 0, 0)
			if err != nil {
				return nil, err
			}
			return c.Take(n), nil
		},
		"skip": func(c *Collection, args []any) (any, error) {
			n, err := intArg("skip", args, 0, 0)
			if err != nil {
				return nil, err
			}
			return c.Skip(n), nil
		},
		"takeUntil": func(c *Collection, args []any) (any, error) { return c.TakeUntil(arg(args, 0)), nil },
		"skipUntil": func(c *Collection, args []any) (any, error) { return c.SkipUntil(arg(args, 0)), nil },
		"takeWhile": func(c *Collection, args []any) (any, error) {
			return c.TakeWhile(predicateOrEquality(arg(args, 0))), nil
		},
		"skipWhile": func(c *Collection, args []any) (any, error) {
			return c.SkipWhile(predicateOrEquality(arg(args, 0))), nil
		},

		// Aggregates
		"sum": func(c *Collection, args []any) (any, error) { return c.Sum(arg(args, 0)), nil },
		"avg": func(c *Collection, args []any) (any, error) { return found(c.Avg(arg(args, 0))), nil },
		"average": func(c *Collection, args []any) (any, error) {
			return found(c.Average(arg(args, 0))), nil
		},
		"median": func(c *Collection, args []any) (any, error) { return found(c.Median(args...)), nil },
		"mode":   func(c *Collection, args []any) (any, error) { return c.Mode(args...), nil },
		"min":    func(c *Collection, args []any) (any, error) { return found(c.Min(arg(args, 0))), nil },
		"max":    func(c *Collection, args []any) (any, error) { return found(c.Max(arg(args, 0))), nil },
		"reduce": func(c *Collection, args []any) (any, error) {
			fn, ok := arg(args, 0).(func(carry, value any, key Key) any)
			if !ok {
				return nil, invalid("reduce", 0, "a func(carry, value any, key Key) any", arg(args, 0))
			}
			return c.Reduce(fn, arg(args, 1)), nil
		},
		"reduceSpread": func(c *Collection, args []any) (any, error) {
			fn, ok := arg(args, 0).(func(args ...any) any)
			if !ok {
				return nil, invalid("reduceSpread", 0, "a func(args ...any) any", arg(args, 0))
			}
			return c.ReduceSpread(fn, args[min(1, len(args)):]...)
		},
		"implode": func(c *Collection, args []any) (any, error) {
			if len(args) > 1 {
				return c.Implode(arg(args, 0), stringArg(args, 1, "")), nil
			}
			return c.Implode(arg(args, 0)), nil
		},
		"join": func(c *Collection, args []any) (any, error) {
			return c.Join(stringArg(args, 0, ""), stringArg(args, 1, "")), nil
		},

		// Random
		"random": func(c *Collection, args []any) (any, error) {
			seed, err := seedArgs("random", args, 1)
			if err != nil {
				return nil, err
			}
			if arg(args, 0) == nil {
				return found(c.Random(seed...)), nil
			}
			n, err := intArg("random", args, 0, 1)
			if err != nil {
				return nil, err
			}
			return c.RandomN(n, seed...), nil
		},
		"shuffle": func(c *Collection, args []any) (any, error) {
			seed, err := seedArgs("shuffle", args, 0)
			if err != nil {
				return nil, err
			}
			return c.Shuffle(seed...), nil
		},
	}
}
