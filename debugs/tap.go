package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a Starlark REPL on the terminal with globals bound, and returns
// when the user ends it.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, toStringDict(globals))
	}
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
