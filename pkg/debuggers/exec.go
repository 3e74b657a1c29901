package debuggers

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// waitDelay bounds how long output is still collected after the context expired.
// A debuggee stopped under the debugger keeps the output pipes open.
const waitDelay = time.Second

// Exec runs command with args and waits for it to exit.
// Failing to start the process, or the context expiring, is an error; the exit code is not.
// When ctx expires the whole process group is killed, including the debuggee.
func Exec(ctx context.Context, command string, args ...string) (*Output, error) {
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.WaitDelay = waitDelay
	killProcessGroupOnCancel(cmd)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.WithFields(log.Fields{"cmd": command, "args": args}).Debug("running debugger")

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, errors.Wrapf(ctxErr, "running %s", command)
	}

	status := ExitSuccess
	if err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			log.WithFields(log.Fields{"cmd": command, "err": err}).Error("can't start debugger")
			return nil, errors.Wrapf(err, "starting %s", command)
		}
		status = ExitFailure
	}

	return &Output{
		Stdout:     lossy(stdout.Bytes()),
		Stderr:     lossy(stderr.Bytes()),
		ExitStatus: status,
	}, nil
}

func lossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
