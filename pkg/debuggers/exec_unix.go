//go:build unix

package debuggers

import (
	"os/exec"
	"syscall"
)

func killProcessGroupOnCancel(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		// negative pid signals the group
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
