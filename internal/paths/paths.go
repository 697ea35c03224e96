package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "wheelforge"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for persistent tool state.
//
//	Linux:   $XDG_STATE_HOME/wheelforge or ~/.local/state/wheelforge
//	macOS:   ~/Library/Application Support/wheelforge
func State() string {
	return filepath.Join(xdg.StateHome, toolName)
}

// Default path to the build journal.
//
//	Linux:   $XDG_STATE_HOME/wheelforge/builds.log
//	macOS:   ~/Library/Application Support/wheelforge/builds.log
func Journal() string {
	return filepath.Join(State(), "builds.log")
}
