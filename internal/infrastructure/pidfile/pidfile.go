package pidfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// PIDFile enforces a single running daemon instance through a pid file.
type PIDFile struct {
	path string
}

// New returns a PIDFile for the given path.
func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

// Acquire claims the pid file for the current process. It fails when the
// file names a live process, and silently replaces a stale or garbled file.
func (p *PIDFile) Acquire() error {
	if pid, ok := p.readPID(); ok {
		if processAlive(pid) {
			return fmt.Errorf("daemon is already running (PID %d)", pid)
		}
		_ = os.Remove(p.path)
	}

	body := fmt.Sprintf("%d\n", os.Getpid())
	if err := os.WriteFile(p.path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// Release removes the pid file. A missing file is not an error.
func (p *PIDFile) Release() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// KillExisting terminates the process named by the pid file, SIGTERM first
// and SIGKILL if it is still alive after a grace period, then removes the
// file. It is a no-op when no live process holds the file.
func (p *PIDFile) KillExisting() error {
	pid, ok := p.readPID()
	if !ok {
		return nil
	}
	if !processAlive(pid) {
		_ = os.Remove(p.path)
		return nil
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process %d: %w", pid, err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal process %d: %w", pid, err)
	}

	for i := 0; i < 50; i++ {
		if !processAlive(pid) {
			_ = os.Remove(p.path)
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	if err := proc.Kill(); err != nil && processAlive(pid) {
		return fmt.Errorf("failed to kill process %d: %w", pid, err)
	}
	_ = os.Remove(p.path)
	return nil
}

// readPID parses the pid file. ok is false when the file is absent or does
// not hold a number.
func (p *PIDFile) readPID() (pid int, ok bool) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return 0, false
	}
	pid, err = strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return pid, true
}

// processAlive reports whether a process with the given pid exists. Signal 0
// probes without delivering anything; EPERM still means the process is there.
func processAlive(pid int) bool {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = proc.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	return err == syscall.EPERM
}
