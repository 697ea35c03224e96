package cli

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cruciblehq/wheelforge/internal"
	"github.com/cruciblehq/wheelforge/internal/build"
	"github.com/cruciblehq/wheelforge/internal/identity"
	"github.com/cruciblehq/wheelforge/internal/journal"
	"github.com/cruciblehq/wheelforge/internal/paths"
	"github.com/cruciblehq/wheelforge/internal/runtime"
	"github.com/pkg/errors"
)

// Represents the 'wheelforge build' command.
type BuildCmd struct {
	Context string `arg:"" optional:"" default:"." help:"Project directory mounted into the build container." type:"existingdir"`
	Image   string `help:"Tag for the build image. Empty uses delta-rs-build." placeholder:"TAG"`
	Docker  string `help:"Container CLI binary to invoke. Empty uses docker." placeholder:"BIN"`
}

// Executes the build command.
//
// Resolves the host identity once, then runs the three-step pipeline: emit
// the Dockerfile, build the image, run the wheel build container. The first
// failing step aborts the command; artifacts already produced are left in
// place for reuse on retry.
func (c *BuildCmd) Run(ctx context.Context) error {
	ident, err := identity.Current()
	if err != nil {
		return err
	}

	// The bind mount source must be absolute for the container runtime.
	contextDir, err := filepath.Abs(c.Context)
	if err != nil {
		return errors.Wrap(err, "resolving project directory")
	}

	rt := runtime.New(runtime.Config{Binary: c.Docker})

	result, err := build.Run(ctx, rt, build.Options{
		Identity: ident,
		Context:  contextDir,
		Image:    c.Image,
		Version:  internal.Version(),
	})
	if err != nil {
		return err
	}

	slog.Info("wheel build complete",
		"image", result.Image,
		"dockerfile", result.Dockerfile,
		"duration", result.Duration.Round(time.Millisecond),
	)

	recordBuild(result)
	return nil
}

// Appends the completed build to the journal.
//
// Journal failures are reported but never fail a build that already produced
// its wheel.
func recordBuild(result *build.Result) {
	entry := journal.Entry{
		At:       time.Now(),
		Image:    result.Image,
		Digest:   result.Digest,
		Duration: result.Duration,
	}

	if err := journal.Append(paths.Journal(), entry); err != nil {
		slog.Warn("failed to record build", "path", paths.Journal(), "error", err)
	}
}
