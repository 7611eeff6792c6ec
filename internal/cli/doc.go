// Package cli defines the Cobra root command of the wrapper. The command has no
// flags or subcommands of its own: every argument is forwarded verbatim to the
// invocation adapter, and errors are mapped to process exit codes here.
package cli
