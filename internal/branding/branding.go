// Package branding provides compile-time identity values for the wrapper.
//
// Packagers edit branding.yaml in this directory before building; Go's
// //go:embed bakes it into the binary. Besides the binary name it carries the
// names of the environment variables the build system uses to configure the
// wrapper, so a fork can rename them without touching any code.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	Description   string `yaml:"description"`
	DriverEnv     string `yaml:"driver_env"`
	LinkArgEnv    string `yaml:"link_arg_env"`
	NDKVersionEnv string `yaml:"ndk_version_env"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "linker-wrapper",
			Description:   "Rewrites NDK linker invocations for the installed toolchain and runs the real driver",
			DriverEnv:     "RUST_ANDROID_GRADLE_CC",
			LinkArgEnv:    "RUST_ANDROID_GRADLE_CC_LINK_ARG",
			NDKVersionEnv: "CARGO_NDK_MAJOR_VERSION",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the binary name used as the prefix of error messages.
func CLIName() string { load(); return defaults.CLIName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// DriverEnv returns the name of the variable holding the compiler driver
// (e.g., "RUST_ANDROID_GRADLE_CC").
func DriverEnv() string { load(); return defaults.DriverEnv }

// LinkArgEnv returns the name of the variable holding the link-mode flag.
func LinkArgEnv() string { load(); return defaults.LinkArgEnv }

// NDKVersionEnv returns the name of the variable holding the NDK major version.
func NDKVersionEnv() string { load(); return defaults.NDKVersionEnv }
