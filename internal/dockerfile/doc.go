// Package dockerfile emits the build-image definition.
//
// The definition is a fixed embedded template: a manylinux toolchain base
// image, the native build dependencies, a non-root user created from four
// build arguments, uv installed via a pinned interpreter, and rustup
// installed non-interactively for that user. Host identity enters the image
// only through build arguments at image-build time, never through the
// emitted file, so re-emitting always reproduces the same bytes.
//
// Example usage:
//
//	dgst, err := dockerfile.Emit(".", dockerfile.Params{Version: "1.2.3"})
//	if err != nil {
//	    return err
//	}
package dockerfile
