package hostobject

import (
	"context"

	"github.com/buildbarn/bb-hostbox/pkg/box/handles"
	"github.com/buildbarn/bb-storage/pkg/util"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExecFile executes a Starlark file. The provided globals are
// converted using ToStarlark(), meaning that primitive values are
// visible to Starlark code as is, while all other values are visible
// as host objects. In addition to that, the "host" module is declared,
// exposing the provided handle table. Globals may not use the name of
// this module.
//
// Upon success, the globals that are declared by the file are
// returned, converted using FromStarlark(). Errors returned by
// builtins retain their gRPC status code. Execution is interrupted
// when the context is cancelled.
func ExecFile(ctx context.Context, filename string, src []byte, globals map[string]any, table handles.Table, printer func(msg string)) (map[string]any, error) {
	predeclared := starlark.StringDict{
		ModuleName: NewModule(table),
	}
	for name, value := range globals {
		if _, ok := predeclared[name]; ok {
			return nil, status.Errorf(codes.InvalidArgument, "Global %#v conflicts with the %#v module", name, ModuleName)
		}
		predeclared[name] = ToStarlark(value)
	}

	thread := &starlark.Thread{
		Name: "main",
		Print: func(_ *starlark.Thread, msg string) {
			if printer != nil {
				printer(msg)
			}
		},
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	results, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, predeclared)
	if err != nil {
		if ctx.Err() != nil {
			return nil, util.StatusFromContext(ctx)
		}
		return nil, util.StatusWrapf(err, "Failed to execute %#v", filename)
	}

	converted := make(map[string]any, len(results))
	for name, value := range results {
		converted[name] = FromStarlark(value)
	}
	return converted, nil
}
