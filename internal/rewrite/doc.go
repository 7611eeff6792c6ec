// Package rewrite adjusts a composed linker command for the NDK version in use.
// It parses the version signal, loads the embedded rule table (validated
// against a JSON schema on first use), and applies each rule whose semver
// constraint matches: the first exact occurrence of every "remove" token is
// dropped and every "append" token is added at the end.
package rewrite
