package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cruciblehq/wheelforge/internal/paths"
	"github.com/opencontainers/go-digest"
	"github.com/pkg/errors"
)

// One completed build.
type Entry struct {
	At       time.Time     // Completion time.
	Image    string        // Tag of the built image.
	Digest   digest.Digest // Content digest of the emitted Dockerfile.
	Duration time.Duration // Wall-clock duration of the pipeline.
}

// Formats the entry as a single journal line, without a trailing newline.
func (e Entry) String() string {
	return fmt.Sprintf("%s image=%s dockerfile=%s duration=%s",
		e.At.UTC().Format(time.RFC3339),
		e.Image,
		e.Digest,
		e.Duration.Round(time.Millisecond),
	)
}

// Appends an entry to the journal file at the given path.
//
// The parent directory is created if missing. The journal is append-only;
// existing entries are never rewritten. The tool itself never reads the
// journal back.
func Append(path string, e Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return errors.Wrap(err, "creating journal directory")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.DefaultFileMode)
	if err != nil {
		return errors.Wrap(err, "opening journal")
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, e.String()); err != nil {
		return errors.Wrap(err, "writing journal entry")
	}

	return nil
}
