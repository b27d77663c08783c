package main

import (
	"context"
	"io"
	"log"
	"os"
	"sort"

	"github.com/buildbarn/bb-hostbox/pkg/box/handles"
	"github.com/buildbarn/bb-hostbox/pkg/starlark/hostobject"
	"github.com/buildbarn/bb-hostbox/pkg/starlark/unpack"
	"github.com/buildbarn/bb-storage/pkg/global"
	global_pb "github.com/buildbarn/bb-storage/pkg/proto/configuration/global"
	"github.com/buildbarn/bb-storage/pkg/program"
	"github.com/buildbarn/bb-storage/pkg/util"

	"go.starlark.net/starlark"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// hostbox_starlark executes a Starlark script, providing it access to
// host objects. The configuration file is a Jsonnet file that has the
// following fields:
//
//   - script: path of the Starlark script to execute.
//   - globals: values that are predeclared. Strings, numbers and
//     booleans are passed as Starlark values, while lists and objects
//     are passed as host objects.
//   - global: common options, such as the diagnostics HTTP server.
//
// In addition to the globals, the script has access to "stdout" and
// "stderr", which are host objects, and "write(writer, text)", where
// text is either a string or bytes.
//
// If a diagnostics HTTP server is configured, the program keeps
// serving it after the script completes, until it receives SIGINT or
// SIGTERM. Otherwise it terminates as soon as the script completes.
func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: hostbox_starlark hostbox_starlark.jsonnet")
		}
		var configuration structpb.Struct
		if err := util.UnmarshalConfigurationFromFile(os.Args[1], &configuration); err != nil {
			return util.StatusWrapf(err, "Failed to read configuration from %s", os.Args[1])
		}
		fields := configuration.GetFields()

		var globalConfiguration global_pb.Configuration
		if globalValue, ok := fields["global"]; ok {
			marshaled, err := protojson.Marshal(globalValue)
			if err != nil {
				return util.StatusWrap(err, "Failed to marshal global configuration options")
			}
			if err := protojson.Unmarshal(marshaled, &globalConfiguration); err != nil {
				return util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid global configuration options")
			}
		}
		lifecycleState, _, err := global.ApplyConfiguration(&globalConfiguration)
		if err != nil {
			return util.StatusWrap(err, "Failed to apply global configuration options")
		}

		scriptPath := fields["script"].GetStringValue()
		if scriptPath == "" {
			return status.Error(codes.InvalidArgument, "No script path provided")
		}
		script, err := os.ReadFile(scriptPath)
		if err != nil {
			return util.StatusWrapf(err, "Failed to read script %#v", scriptPath)
		}

		globals := map[string]any{}
		for name, value := range fields["globals"].GetStructValue().GetFields() {
			globals[name] = value.AsInterface()
		}
		globals["stdout"] = os.Stdout
		globals["stderr"] = os.Stderr
		globals["write"] = starlark.NewBuiltin(
			"write",
			func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				var writer io.Writer
				var text any
				if err := starlark.UnpackArgs(
					b.Name(), args, kwargs,
					"writer", unpack.Bind(thread, &writer, hostobject.NewUnpackerInto[io.Writer]("writer")),
					"text", unpack.Bind(thread, &text, unpack.Or([]unpack.UnpackerInto[any]{
						unpack.Decay(unpack.String),
						unpack.Decay(unpack.Type[starlark.Bytes]("bytes")),
					})),
				); err != nil {
					return nil, err
				}
				if writer == nil {
					return nil, status.Errorf(codes.InvalidArgument, "%s: writer is None", b.Name())
				}
				var err error
				switch typedText := text.(type) {
				case string:
					_, err = io.WriteString(writer, typedText)
				case starlark.Bytes:
					_, err = io.WriteString(writer, string(typedText))
				}
				if err != nil {
					return nil, err
				}
				return starlark.None, nil
			},
		)

		table := handles.NewMetricsTable(handles.NewInMemoryTable(), "hostbox_starlark")

		// Diagnostics, including the metrics of the handle table,
		// remain available after the script completes, until the
		// program is terminated.
		lifecycleState.MarkReadyAndWait(siblingsGroup)
		results, err := hostobject.ExecFile(
			ctx,
			scriptPath,
			script,
			globals,
			table,
			func(msg string) { log.Print(msg) },
		)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(results))
		for name := range results {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			log.Printf("%s = %#v", name, results[name])
		}
		if live := table.Len(); live > 0 {
			log.Printf("%d handles were not released", live)
		}
		return nil
	})
}
