// Package journal records completed wheel builds.
//
// Each successful pipeline run appends one line to a plain-text log under the
// XDG state directory: timestamp, image tag, Dockerfile digest, and duration.
// Journal failures are never fatal; a build that produced a wheel is a
// success whether or not the record was written.
package journal
