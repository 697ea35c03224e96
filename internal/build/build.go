package build

import (
	"context"
	"log/slog"
	"time"

	"github.com/cruciblehq/wheelforge/internal/dockerfile"
	"github.com/cruciblehq/wheelforge/internal/identity"
	"github.com/cruciblehq/wheelforge/internal/runtime"
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
)

// Default tag for the build image.
const DefaultImage = "delta-rs-build"

// Container operations the pipeline needs.
//
// Satisfied by [runtime.Runtime]; narrowed to an interface so the pipeline's
// ordering can be exercised without a container runtime on the host.
type Runtime interface {
	BuildImage(ctx context.Context, opts runtime.BuildOptions) error
	RunContainer(ctx context.Context, opts runtime.RunOptions) error
}

// Controls pipeline execution.
type Options struct {
	Identity identity.Tuple // Host identity, passed through as build arguments.
	Context  string         // Host project directory; receives the Dockerfile and is bind-mounted.
	Image    string         // Tag for the build image. Empty uses [DefaultImage].
	Version  string         // Tool version stamped into the image labels.
}

// Returned after successful pipeline execution.
type Result struct {
	Dockerfile string        // Path to the emitted Dockerfile, left in place.
	Digest     digest.Digest // Content digest of the emitted Dockerfile.
	Image      string        // Tag of the built image.
	Duration   time.Duration // Wall-clock duration of the whole pipeline.
}

// Executes the wheel pipeline against the container runtime.
//
// Exactly three steps run in order: emit the Dockerfile into the context
// directory, build the image with the identity tuple as build arguments, and
// run an ephemeral container that invokes the project's make targets through
// the bind mount. The first failing step's error is returned and later steps
// never execute. Nothing is retried and no artifacts are removed on failure:
// a failed image build leaves the Dockerfile, a failed container run leaves
// the Dockerfile and the image, both reusable on retry.
func Run(ctx context.Context, rt Runtime, opts Options) (*Result, error) {
	start := time.Now()

	if opts.Image == "" {
		opts.Image = DefaultImage
	}

	slog.Info("building release wheel",
		"image", opts.Image,
		"context", opts.Context,
		"user", opts.Identity.Username,
	)

	dgst, err := dockerfile.Emit(opts.Context, dockerfile.Params{Version: opts.Version})
	if err != nil {
		return nil, errors.Wrap(err, "emitting build-image definition")
	}

	if err := rt.BuildImage(ctx, runtime.BuildOptions{
		Tag:        opts.Image,
		ContextDir: opts.Context,
		BuildArgs:  buildArgs(opts.Identity),
	}); err != nil {
		return nil, errors.Wrap(err, "building image")
	}

	mount := runtime.Mount{
		Host:      opts.Context,
		Container: mountPath(opts.Identity),
	}

	if err := rt.RunContainer(ctx, runtime.RunOptions{
		Image:   opts.Image,
		Mount:   mount,
		Command: wheelCommand(mount.Container),
	}); err != nil {
		return nil, errors.Wrap(err, "running wheel build")
	}

	return &Result{
		Dockerfile: dockerfilePath(opts.Context),
		Digest:     dgst,
		Image:      opts.Image,
		Duration:   time.Since(start),
	}, nil
}
