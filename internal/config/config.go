package config

import (
	"errors"
	"fmt"

	"github.com/rust-android-gradle/linker-wrapper/internal/branding"
	"github.com/spf13/viper"
)

// Keys used inside the Viper instance. Each is bound to the environment
// variable name that branding supplies.
const (
	keyDriver     = "driver"
	keyLinkArg    = "link_arg"
	keyNDKVersion = "ndk_version"
)

// ErrMissingConfiguration is matched by every MissingConfigError.
var ErrMissingConfiguration = errors.New("missing configuration")

// MissingConfigError reports a required environment variable that is unset.
type MissingConfigError struct {
	Var string
}

func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Var)
}

// Is reports whether target is ErrMissingConfiguration.
func (e *MissingConfigError) Is(target error) bool {
	return target == ErrMissingConfiguration
}

// Invocation is the context of a single wrapper run.
type Invocation struct {
	// Driver is the path or name of the real compiler driver.
	Driver string
	// LinkArg is the token that makes the driver act as a linker.
	LinkArg string
	// NDKVersion is the raw version signal. It may be empty or non-numeric.
	NDKVersion string
	// HasNDKVersion is false when the version variable is not set at all.
	HasNDKVersion bool
	// Args are the wrapper's own arguments, forwarded in order.
	Args []string
}

// Load reads the invocation context from the environment. A variable set to
// the empty string counts as present; only unset required variables fail.
func Load(args []string) (*Invocation, error) {
	v := viper.New()
	v.AllowEmptyEnv(true)

	bindings := map[string]string{
		keyDriver:     branding.DriverEnv(),
		keyLinkArg:    branding.LinkArgEnv(),
		keyNDKVersion: branding.NDKVersionEnv(),
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s to %s: %w", key, env, err)
		}
	}

	for _, key := range []string{keyDriver, keyLinkArg} {
		if !v.IsSet(key) {
			return nil, &MissingConfigError{Var: bindings[key]}
		}
	}

	forwarded := make([]string, len(args))
	copy(forwarded, args)

	return &Invocation{
		Driver:        v.GetString(keyDriver),
		LinkArg:       v.GetString(keyLinkArg),
		NDKVersion:    v.GetString(keyNDKVersion),
		HasNDKVersion: v.IsSet(keyNDKVersion),
		Args:          forwarded,
	}, nil
}
