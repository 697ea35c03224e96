package cli

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/cruciblehq/wheelforge/internal"
	"github.com/cruciblehq/wheelforge/internal/dockerfile"
)

// Represents the 'wheelforge emit' command.
type EmitCmd struct {
	Dir string `arg:"" optional:"" default:"." help:"Directory to write the Dockerfile into." type:"existingdir"`
}

// Executes the emit command.
//
// Writes only the build-image Dockerfile, overwriting any existing one, and
// reports its content digest. Useful for inspecting or versioning the image
// definition without invoking the container runtime.
func (c *EmitCmd) Run(ctx context.Context) error {
	dgst, err := dockerfile.Emit(c.Dir, dockerfile.Params{Version: internal.Version()})
	if err != nil {
		return err
	}

	slog.Info("dockerfile written",
		"path", filepath.Join(c.Dir, dockerfile.Filename),
		"digest", dgst,
	)
	return nil
}
