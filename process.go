package logctx

import (
	"os"

	"github.com/mitchellh/go-ps"
)

// ProcessFields returns key/value pairs describing the current process,
// ready to be passed to Enter when seeding a root frame at startup. Parent
// process details are included when the platform can resolve them.
func ProcessFields() []any {
	pid := os.Getpid()
	kvs := []any{"pid", pid}

	if process, err := ps.FindProcess(pid); err == nil && process != nil {
		kvs = append(kvs, "executable", process.Executable())
	}

	ppid := os.Getppid()
	kvs = append(kvs, "parent_pid", ppid)

	if parent, err := ps.FindProcess(ppid); err == nil && parent != nil {
		kvs = append(kvs, "parent_executable", parent.Executable())
	}

	return kvs
}
