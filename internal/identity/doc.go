// Package identity resolves the host user and group for container builds.
//
// The build image creates a non-root user matching the host identity so that
// artifacts written through the bind mount stay owned by the invoking user.
// The identity is resolved exactly once, at command start, and passed down as
// an explicit value; resolution failures abort before any container step.
package identity
