package linker

import (
	"github.com/alessio/shellescape"
	"github.com/rust-android-gradle/linker-wrapper/internal/config"
	"github.com/rust-android-gradle/linker-wrapper/internal/rewrite"
)

// Compose builds [driver, link arg, args...] and applies every rule that
// matches the invocation's NDK version. An unset or non-numeric version
// leaves the command unchanged.
func Compose(inv *config.Invocation, rules []rewrite.Rule) []string {
	base := make([]string, 0, len(inv.Args)+2)
	base = append(base, inv.Driver, inv.LinkArg)
	base = append(base, inv.Args...)

	version, ok := rewrite.ParseMajorVersion(inv.NDKVersion)
	if !inv.HasNDKVersion || !ok {
		return base
	}
	return rewrite.Apply(base, version, rules)
}

// Render joins argv into a single line with each token shell-quoted.
func Render(argv []string) string {
	return shellescape.QuoteCommand(argv)
}
