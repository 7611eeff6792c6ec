package linker

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rust-android-gradle/linker-wrapper/internal/config"
	"github.com/rust-android-gradle/linker-wrapper/internal/rewrite"
	"github.com/rust-android-gradle/linker-wrapper/internal/runtime"
)

// Executor runs a command line and returns its exit code. The error is
// reserved for failures to start the command.
type Executor interface {
	Run(ctx context.Context, argv []string) (int, error)
}

// Adapter turns one wrapper invocation into one driver invocation.
type Adapter struct {
	// Out receives the printed command line; defaults to os.Stdout.
	Out io.Writer
	// Exec runs the composed command; defaults to a runtime.Runner on the
	// process's own streams.
	Exec Executor
	// Rules are applied to the composed command. Nil means no rewriting.
	Rules []rewrite.Rule
}

// Run composes the command for inv, prints it, and executes it. It returns
// the child's exit code; an error means the child never ran.
func (a *Adapter) Run(ctx context.Context, inv *config.Invocation) (int, error) {
	argv := Compose(inv, a.Rules)

	out := a.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, Render(argv)); err != nil {
		return 0, fmt.Errorf("printing command line: %w", err)
	}

	exec := a.Exec
	if exec == nil {
		exec = &runtime.Runner{}
	}
	return exec.Run(ctx, argv)
}
