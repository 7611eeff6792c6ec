// Package linker is the invocation adapter. It composes the real linker
// command from the invocation context, applies the NDK rewrite rules, prints
// the shell-quoted command line to standard output, and runs it through the
// runtime package, reporting the child's exit code unchanged.
package linker
