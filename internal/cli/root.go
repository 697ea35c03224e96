package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/wheelforge/internal"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/willabides/kongplete"
)

// Represents the root command for the wheelforge tool.
var RootCmd struct {
	Quiet   bool `short:"q" help:"Suppress informational output."`
	Verbose bool `short:"v" help:"Enable verbose output."`
	Debug   bool `short:"d" help:"Enable debug output."`

	Build   BuildCmd   `cmd:"" default:"withargs" help:"Build a release wheel inside a container."`
	Emit    EmitCmd    `cmd:"" help:"Write the build-image Dockerfile without building."`
	Version VersionCmd `cmd:"" help:"Show version information."`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	parser, err := kong.New(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds release wheels for the delta-rs Python bindings.\n\nEmits a manylinux build-image Dockerfile, builds it with the host identity, and runs the bindings' make targets inside an ephemeral container."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err != nil {
		return err
	}

	kongplete.Complete(parser)

	kongCtx, err := parser.Parse(os.Args[1:])
	if err != nil {
		return err
	}

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
//
// Flags layer on top of the build-time defaults set via linker flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelWarn
	}

	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		AddSource:  verbose,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	slog.SetDefault(slog.New(handler))
}
