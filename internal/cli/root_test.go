package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const (
	envDriver  = "RUST_ANDROID_GRADLE_CC"
	envLinkArg = "RUST_ANDROID_GRADLE_CC_LINK_ARG"
	envNDK     = "CARGO_NDK_MAJOR_VERSION"

	// helperEnv makes the test binary behave as a fake compiler driver that
	// prints its arguments and exits with the code in helperExitEnv.
	helperEnv     = "LINKER_WRAPPER_CLI_HELPER"
	helperExitEnv = "LINKER_WRAPPER_CLI_HELPER_EXIT"
)

func TestMain(m *testing.M) {
	if os.Getenv(helperEnv) != "" {
		fmt.Printf("driver received: %s\n", strings.Join(os.Args[1:], "|"))
		code, _ := strconv.Atoi(os.Getenv(helperExitEnv))
		os.Exit(code)
	}
	os.Exit(m.Run())
}

// driverEnv points the wrapper at the test binary acting as the driver.
func driverEnv(t *testing.T, version string, exitCode int) string {
	t.Helper()
	driver := os.Args[0]
	t.Setenv(envDriver, driver)
	t.Setenv(envLinkArg, "-fuse-ld=lld")
	if version == "" {
		unsetEnv(t, envNDK)
	} else {
		t.Setenv(envNDK, version)
	}
	t.Setenv(helperEnv, "1")
	t.Setenv(helperExitEnv, strconv.Itoa(exitCode))
	return driver
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unsetting %s: %v", key, err)
	}
}

// quote matches how the wrapper prints the driver path.
func quote(s string) string {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("_@%+=:,./-", r)) {
			return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
		}
	}
	return s
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		args        []string
		wantPrinted string
		wantArgs    string
	}{
		{
			name:        "ndk 25 replaces libgcc",
			version:     "25",
			args:        []string{"-o", "out", "-lgcc", "main.o"},
			wantPrinted: "-fuse-ld=lld -o out main.o -lunwind",
			wantArgs:    "-fuse-ld=lld|-o|out|main.o|-lunwind",
		},
		{
			name:        "ndk 21 is unchanged",
			version:     "21",
			args:        []string{"-o", "out", "-lgcc", "main.o"},
			wantPrinted: "-fuse-ld=lld -o out -lgcc main.o",
			wantArgs:    "-fuse-ld=lld|-o|out|-lgcc|main.o",
		},
		{
			name:        "version unset",
			args:        []string{"main.o"},
			wantPrinted: "-fuse-ld=lld main.o",
			wantArgs:    "-fuse-ld=lld|main.o",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver := driverEnv(t, tt.version, 0)

			var stdout, stderr bytes.Buffer
			code := run(tt.args, strings.NewReader(""), &stdout, &stderr)
			if code != 0 {
				t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
			}

			lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
			if len(lines) != 2 {
				t.Fatalf("expected the command line and the driver output, got %q", stdout.String())
			}
			if want := quote(driver) + " " + tt.wantPrinted; lines[0] != want {
				t.Errorf("printed %q, want %q", lines[0], want)
			}
			if want := "driver received: " + tt.wantArgs; lines[1] != want {
				t.Errorf("driver got %q, want %q", lines[1], want)
			}
		})
	}
}

func TestRun_PropagatesDriverExitCode(t *testing.T) {
	for _, want := range []int{1, 2, 42} {
		t.Run(strconv.Itoa(want), func(t *testing.T) {
			driverEnv(t, "", want)

			var stdout, stderr bytes.Buffer
			if got := run([]string{"main.o"}, strings.NewReader(""), &stdout, &stderr); got != want {
				t.Errorf("exit code = %d, want %d", got, want)
			}
			if stderr.Len() != 0 {
				t.Errorf("a failing driver is not a wrapper error, stderr: %q", stderr.String())
			}
		})
	}
}

func TestRun_HelpIsForwarded(t *testing.T) {
	driverEnv(t, "", 0)

	var stdout, stderr bytes.Buffer
	code := run([]string{"--help", "-h", "version"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "driver received: -fuse-ld=lld|--help|-h|version\n") {
		t.Errorf("expected --help to reach the driver, got %q", stdout.String())
	}
}

func TestRun_CompletionIsForwarded(t *testing.T) {
	driverEnv(t, "", 0)

	var stdout, stderr bytes.Buffer
	code := run([]string{"completion", "bash"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "driver received: -fuse-ld=lld|completion|bash\n") {
		t.Errorf("expected completion to reach the driver, got %q", stdout.String())
	}
}

func TestRun_MissingConfiguration(t *testing.T) {
	tests := []struct {
		name  string
		unset string
	}{
		{"driver", envDriver},
		{"link arg", envLinkArg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverEnv(t, "25", 0)
			unsetEnv(t, tt.unset)

			var stdout, stderr bytes.Buffer
			code := run([]string{"main.o"}, strings.NewReader(""), &stdout, &stderr)
			if code != ExitConfig {
				t.Errorf("exit code = %d, want %d", code, ExitConfig)
			}
			if stdout.Len() != 0 {
				t.Errorf("nothing should run or print, got stdout %q", stdout.String())
			}
			if !strings.Contains(stderr.String(), tt.unset) {
				t.Errorf("stderr %q does not name %s", stderr.String(), tt.unset)
			}
		})
	}
}

func TestRun_DriverNotFound(t *testing.T) {
	driverEnv(t, "", 0)
	t.Setenv(envDriver, filepath.Join(t.TempDir(), "missing-clang"))

	var stdout, stderr bytes.Buffer
	code := run([]string{"main.o"}, strings.NewReader(""), &stdout, &stderr)
	if code != ExitNotFound {
		t.Errorf("exit code = %d, want %d", code, ExitNotFound)
	}
	if !strings.HasPrefix(stderr.String(), "linker-wrapper: ") {
		t.Errorf("stderr = %q, want a linker-wrapper error", stderr.String())
	}
	// The command line is still printed for diagnosis.
	if !strings.Contains(stdout.String(), "missing-clang -fuse-ld=lld main.o") {
		t.Errorf("stdout = %q, want the composed command", stdout.String())
	}
}

func TestRun_EmptyDriver(t *testing.T) {
	driverEnv(t, "", 0)
	t.Setenv(envDriver, "")

	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(""), &stdout, &stderr)
	if code == 0 {
		t.Error("expected a launch failure for an empty driver")
	}
	if got := stdout.String(); got != "'' -fuse-ld=lld\n" {
		t.Errorf("stdout = %q", got)
	}
}
