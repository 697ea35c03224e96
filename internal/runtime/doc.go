// Package runtime invokes the container CLI.
//
// A [Runtime] wraps one container binary (docker by default) and exposes the
// two operations the wheel pipeline needs: building an image from a
// Dockerfile context with build arguments, and running a single ephemeral
// container with a bind mount. Both are blocking subprocess calls whose
// output streams through to the caller; nothing is retried and nothing is
// cleaned up beyond docker's own --rm.
//
// Example usage:
//
//	rt := runtime.New(runtime.Config{})
//
//	err := rt.BuildImage(ctx, runtime.BuildOptions{
//	    Tag:        "delta-rs-build",
//	    ContextDir: ".",
//	    BuildArgs:  []runtime.BuildArg{{Name: "USER_ID", Value: "1001"}},
//	})
//	if err != nil {
//	    return err
//	}
package runtime
