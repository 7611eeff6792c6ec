package rewrite

import "github.com/Masterminds/semver/v3"

// Apply returns command adjusted by every rule matching version. The input
// slice is not modified. With a nil version the result is an unchanged copy.
func Apply(command []string, version *semver.Version, rules []Rule) []string {
	out := make([]string, len(command))
	copy(out, command)

	for _, r := range rules {
		if !r.Matches(version) {
			continue
		}
		for _, tok := range r.Remove {
			out = removeFirst(out, tok)
		}
		out = append(out, r.Append...)
	}
	return out
}

// removeFirst drops the first element equal to tok, if any.
func removeFirst(args []string, tok string) []string {
	for i, a := range args {
		if a == tok {
			return append(args[:i], args[i+1:]...)
		}
	}
	return args
}
