package main

import (
	"os"

	"github.com/rust-android-gradle/linker-wrapper/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
