// Package build orchestrates the release-wheel pipeline.
//
// The pipeline is three fixed steps executed strictly in order: emit the
// build-image Dockerfile into the project directory, build the image with the
// host identity as build arguments, and run an ephemeral container whose
// bind-mounted working directory is the project itself. Each step's failure
// stops the pipeline; step errors propagate explicitly rather than through
// interpreter-level abort semantics.
//
// Example usage:
//
//	result, err := build.Run(ctx, rt, build.Options{
//	    Identity: tuple,
//	    Context:  "/work/delta-rs",
//	    Version:  "1.2.3",
//	})
//	if err != nil {
//	    return err
//	}
package build
