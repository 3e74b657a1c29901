//go:build !unix

package debuggers

import "os/exec"

// The default cancel kills only the debugger; waitDelay covers handles the debuggee keeps.
func killProcessGroupOnCancel(cmd *exec.Cmd) {}
