package dockerfile

import (
	"bytes"
	_ "crypto/sha256" // Registers the canonical digest algorithm.
	_ "embed"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/cruciblehq/wheelforge/internal/paths"
	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/pkg/errors"
)

// Name of the emitted file.
const Filename = "Dockerfile"

//go:embed Dockerfile.tmpl
var templateText string

// Parsed once at startup; the template is static and must be valid.
var tmpl = template.Must(template.New(Filename).Parse(templateText))

// Controls the rendered build-image definition.
//
// The host identity is deliberately absent: it is substituted at image-build
// time via build arguments, so the emitted file is identical for every user.
type Params struct {
	Version string // Tool version stamped into the image labels.
}

// Fields available to the embedded template.
type templateData struct {
	TitleKey       string // OCI annotation key for the image title.
	DescriptionKey string // OCI annotation key for the image description.
	VersionKey     string // OCI annotation key for the image version.
	Version        string
}

// Renders the build-image definition.
//
// The output is deterministic for a given [Params]; the same parameters
// always produce byte-identical content.
func Render(p Params) ([]byte, error) {
	data := templateData{
		TitleKey:       ocispec.AnnotationTitle,
		DescriptionKey: ocispec.AnnotationDescription,
		VersionKey:     ocispec.AnnotationVersion,
		Version:        p.Version,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "rendering build-image definition")
	}

	return buf.Bytes(), nil
}

// Writes the build-image definition into the given directory.
//
// Any existing Dockerfile is overwritten without confirmation or backup; the
// file is left in place after the build as the only persisted artifact.
// Returns the content digest of the written bytes.
func Emit(dir string, p Params) (digest.Digest, error) {
	content, err := Render(p)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, content, paths.DefaultFileMode); err != nil {
		return "", errors.Wrap(err, "writing build-image definition")
	}

	dgst := digest.FromBytes(content)
	slog.Debug("dockerfile emitted", "path", path, "digest", dgst, "bytes", len(content))

	return dgst, nil
}
