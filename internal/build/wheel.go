package build

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/cruciblehq/wheelforge/internal/dockerfile"
	"github.com/cruciblehq/wheelforge/internal/identity"
	"github.com/cruciblehq/wheelforge/internal/runtime"
)

const (

	// Directory name under the container user's home where the project is
	// mounted. The Python bindings expect to build from this layout.
	mountName = "delta-rs"

	// Subdirectory of the mount containing the bindings Makefile.
	pythonDir = "python"

	// Shell used for the in-container command string.
	containerShell = "/bin/bash"

	// Release and compatibility flags for the native-extension build tool,
	// exported before the build target runs.
	maturinArgs = "MATURIN_EXTRA_ARGS='--release --compatibility manylinux_2_28'"
)

// Renders the identity tuple as image build arguments, in fixed order.
func buildArgs(id identity.Tuple) []runtime.BuildArg {
	return []runtime.BuildArg{
		{Name: "USER_ID", Value: id.UID},
		{Name: "GROUP_ID", Value: id.GID},
		{Name: "USER_NAME", Value: id.Username},
		{Name: "GROUP_NAME", Value: id.Groupname},
	}
}

// Returns the in-container mount point for the project directory.
func mountPath(id identity.Tuple) string {
	return path.Join(id.Home(), mountName)
}

// Returns the command executed inside the build container.
//
// One shell invocation: change into the bindings directory, clean previous
// build artifacts, then run the build target with the release flags exported.
func wheelCommand(mount string) []string {
	script := fmt.Sprintf("cd %s && make clean && %s make build",
		path.Join(mount, pythonDir),
		maturinArgs,
	)
	return []string{containerShell, "-c", script}
}

// Returns the path of the emitted Dockerfile within the context directory.
func dockerfilePath(contextDir string) string {
	return filepath.Join(contextDir, dockerfile.Filename)
}
