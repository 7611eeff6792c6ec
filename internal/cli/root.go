package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rust-android-gradle/linker-wrapper/internal/branding"
	"github.com/rust-android-gradle/linker-wrapper/internal/config"
	"github.com/rust-android-gradle/linker-wrapper/internal/linker"
	"github.com/rust-android-gradle/linker-wrapper/internal/rewrite"
	"github.com/rust-android-gradle/linker-wrapper/internal/runtime"
	"github.com/spf13/cobra"
)

// Exit codes for failures of the wrapper itself. Anything else is the
// driver's own exit code.
const (
	ExitSoftware      = 70  // EX_SOFTWARE: the embedded rule table is broken
	ExitConfig        = 78  // EX_CONFIG: a required variable is unset
	ExitNotExecutable = 126 // the driver exists but could not be started
	ExitNotFound      = 127 // the driver could not be found
)

// newRootCmd builds the root command. The driver's exit code is stored in
// *code; a returned error means the driver never ran.
func newRootCmd(code *int, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:                branding.CLIName() + " [linker args...]",
		Short:              branding.Description(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		// "completion" is a linker argument like any other.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := config.Load(args)
			if err != nil {
				return err
			}

			rules, err := rewrite.DefaultRules()
			if err != nil {
				return err
			}

			adapter := &linker.Adapter{
				Out:   stdout,
				Exec:  &runtime.Runner{Stdin: stdin, Stdout: stdout, Stderr: stderr},
				Rules: rules,
			}
			// No timeout: the driver runs until it exits.
			*code, err = adapter.Run(context.Background(), inv)
			return err
		},
	}
}

// Execute runs the wrapper with the process arguments and returns the code
// the process should exit with.
func Execute() int {
	return run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// Cobra reads os.Args when given nil.
		args = []string{}
	}

	code := 0
	cmd := newRootCmd(&code, stdin, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", branding.CLIName(), err)
		return exitCodeFor(err)
	}
	return code
}

// exitCodeFor maps a wrapper failure to a non-zero exit code.
func exitCodeFor(err error) int {
	var launchErr *runtime.LaunchError
	switch {
	case errors.Is(err, config.ErrMissingConfiguration):
		return ExitConfig
	case errors.As(err, &launchErr):
		if launchErr.NotFound() {
			return ExitNotFound
		}
		return ExitNotExecutable
	default:
		return ExitSoftware
	}
}
