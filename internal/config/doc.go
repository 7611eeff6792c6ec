// Package config reads the invocation context of a single wrapper run from the
// process environment: the compiler driver, the flag that puts it in link mode,
// and the optional NDK major version. Values are bound through a private Viper
// instance and validated once, before any subprocess is started.
package config
