// Package dynocl is a typed, version-aware OpenCL layer on top of the
// runtime-loaded bindings in the raw subpackage. It wraps platform and
// device discovery, contexts, command queues, program builds, buffers and
// kernel dispatch behind an API that pushes as many usage errors as
// possible to compile time: host access rights are part of a buffer's type,
// so reading from a buffer created without host read access does not build.
//
// Everything here degrades gracefully on old drivers. Operations that need
// an API tier beyond the one the loaded library supports return a
// *VersionError instead of calling into a missing entry point.
package dynocl
