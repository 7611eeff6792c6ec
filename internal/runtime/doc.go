// Package runtime runs the real compiler driver as a child process. The child
// inherits the wrapper's standard streams, and its exit status is reported as a
// plain exit code; only a failure to start the child is returned as an error.
package runtime
