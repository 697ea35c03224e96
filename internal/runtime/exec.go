package runtime

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

// Assembles the argument list for an image build.
func buildCommand(opts BuildOptions) []string {
	args := []string{"build"}
	for _, ba := range opts.BuildArgs {
		args = append(args, "--build-arg", ba.Name+"="+ba.Value)
	}
	return append(args, "-t", opts.Tag, opts.ContextDir)
}

// Assembles the argument list for a container run.
func runCommand(opts RunOptions) []string {
	args := []string{"run", "--rm=true"}
	if opts.Mount.Host != "" {
		args = append(args, "-v", opts.Mount.Host+":"+opts.Mount.Container)
	}
	args = append(args, opts.Image)
	return append(args, opts.Command...)
}

// Invokes the container CLI with the given arguments and waits for it.
//
// Output streams to the runtime's writers so the underlying tool's progress
// stays visible. Cancelling the context kills the subprocess. A non-zero
// exit, or a binary that cannot be launched at all, is returned as-is.
func (rt *Runtime) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, rt.binary, args...)
	cmd.Stdout = rt.stdout
	cmd.Stderr = rt.stderr

	slog.Debug("invoking container runtime", "binary", rt.binary, "args", strings.Join(args, " "))

	return cmd.Run()
}
