package runtime

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// Default container CLI binary.
const DefaultBinary = "docker"

// Holds runtime configuration.
type Config struct {
	Binary string    // Container CLI binary. Empty uses [DefaultBinary].
	Stdout io.Writer // Destination for subprocess stdout. Empty uses os.Stdout.
	Stderr io.Writer // Destination for subprocess stderr. Empty uses os.Stderr.
}

// Invokes the container CLI as a subprocess.
//
// The runtime holds no connection and no state: each operation is one
// blocking invocation of the configured binary, with output streamed to the
// configured writers. Availability of the binary is not checked up front;
// a missing binary surfaces as the launch error of the first operation.
type Runtime struct {
	binary string    // Container CLI binary to invoke.
	stdout io.Writer // Subprocess stdout destination.
	stderr io.Writer // Subprocess stderr destination.
}

// Creates a runtime from the given configuration.
func New(cfg Config) *Runtime {
	binary := cfg.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	stderr := cfg.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Runtime{
		binary: binary,
		stdout: stdout,
		stderr: stderr,
	}
}

// A build-time parameter substituted into the image definition.
type BuildArg struct {
	Name  string // Argument name (e.g., "USER_ID").
	Value string // Argument value (e.g., "1001").
}

// Controls an image build invocation.
type BuildOptions struct {
	Tag        string     // Name for the built image.
	ContextDir string     // Build context directory containing the Dockerfile.
	BuildArgs  []BuildArg // Build arguments, passed in declaration order.
}

// Builds an image from the Dockerfile in the context directory.
//
// Equivalent to "docker build --build-arg K=V ... -t <tag> <dir>". Install
// steps inside the build are not retried; any failure propagates as the
// subprocess's non-zero exit.
func (rt *Runtime) BuildImage(ctx context.Context, opts BuildOptions) error {
	if opts.Tag == "" {
		return ErrMissingTag
	}
	if opts.ContextDir == "" {
		return ErrMissingContext
	}

	slog.Info("building image", "tag", opts.Tag, "context", opts.ContextDir)

	if err := rt.run(ctx, buildCommand(opts)); err != nil {
		return errors.Wrapf(err, "building image %s", opts.Tag)
	}

	return nil
}

// A host directory mapped into the container.
type Mount struct {
	Host      string // Absolute host directory.
	Container string // Absolute path inside the container.
}

// Controls a container run invocation.
type RunOptions struct {
	Image   string   // Image to run.
	Mount   Mount    // Bind mount, strict 1:1, no staging.
	Command []string // Command and arguments executed in the container.
}

// Runs a single ephemeral container from the given image.
//
// Equivalent to "docker run --rm=true -v <host>:<ctr> <image> <cmd...>".
// The container is removed on exit regardless of the command's outcome; the
// image is left in place either way.
func (rt *Runtime) RunContainer(ctx context.Context, opts RunOptions) error {
	if opts.Image == "" {
		return ErrMissingImage
	}

	slog.Info("running container", "image", opts.Image, "mount", opts.Mount.Host)

	if err := rt.run(ctx, runCommand(opts)); err != nil {
		return errors.Wrapf(err, "running container from %s", opts.Image)
	}

	return nil
}
