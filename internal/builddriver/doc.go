// Package builddriver wraps the cmake command line to configure, build and
// run a generated project. Whether a build directory is configured is
// inferred on every call from the presence of CMakeCache.txt; nothing else is
// persisted between invocations.
package builddriver
