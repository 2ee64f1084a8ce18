package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another process with the same executable runs.
var ErrAlreadyRunning = errors.New("another instance is already running")

// EnsureSingle fails with ErrAlreadyRunning when a process other than this one
// runs executable. An empty name means the current executable.
func EnsureSingle(executable string) error {
	if executable == "" {
		executable = CurrentExecutable()
	}

	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	if pids := others(processList, os.Getpid(), executable); len(pids) > 0 {
		return fmt.Errorf("%w: %s (pid %d)", ErrAlreadyRunning, executable, pids[0])
	}

	return nil
}

// CurrentExecutable returns the file name of the running binary.
func CurrentExecutable() string {
	path, err := os.Executable()
	if err != nil {
		path = os.Args[0]
	}

	return filepath.Base(path)
}

// others returns pids of processes named executable, excluding self.
func others(processList []ps.Process, self int, executable string) []int {
	var pids []int

	for _, process := range processList {
		if process.Pid() == self {
			continue
		}

		if !sameExecutable(process.Executable(), executable) {
			continue
		}

		pids = append(pids, process.Pid())
	}

	return pids
}

// sameExecutable compares names, ignoring case and the .exe suffix on Windows.
func sameExecutable(a, b string) bool {
	if !strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return a == b
	}

	trim := func(s string) string {
		return strings.TrimSuffix(strings.ToLower(s), ".exe")
	}

	return trim(a) == trim(b)
}
