package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions.
const (
	EnvDataDir  = "BMS_DATA_DIR"
	EnvLogLevel = "BMS_LOG_LEVEL"
	EnvEnvFile  = "BMS_ENV_FILE"
	EnvPlain    = "BMS_PLAIN"
)

// RunExtension attempts to find and execute an external bms-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	lp, err := exec.LookPath("bms-" + subcommand)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv(os.Environ())

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", lp, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv passes the global flags that were set as environment
// variables, so that the extension reads the same books.
func extensionEnv(environ []string) []string {
	env := append([]string(nil), environ...)
	if *dataDir != "" {
		env = append(env, EnvDataDir+"="+*dataDir)
	}
	if *logLevel != "" {
		env = append(env, EnvLogLevel+"="+*logLevel)
	}
	if *envFile != "" {
		env = append(env, EnvEnvFile+"="+*envFile)
	}
	env = append(env, EnvPlain+"="+strconv.FormatBool(*plain))
	return env
}
