package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tupyy/outcome/promise"
	"github.com/tupyy/outcome/to"
)

const waitDelay = 500 * time.Millisecond

type Operation[R any] func(ctx context.Context) (R, error)

// Command is an external program run as the wrapped operation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current one.
	Dir string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Run starts the command and waits for its outcome.
// The value is the command's stdout without the surrounding white space.
func Run(ctx context.Context, c Command) to.Outcome[string] {
	op := withLogging(uuid.New().String(), c.String(), execute(c))
	return to.Settle[string](promise.Go[string](ctx, op))
}

func execute(c Command) Operation[string] {
	return func(ctx context.Context) (string, error) {
		var outBuf, errBuf bytes.Buffer

		cmd := exec.CommandContext(ctx, c.Name, c.Args...)
		cmd.Dir = c.Dir
		cmd.Stdout = &outBuf
		cmd.Stderr = &errBuf
		// output pipes held open by orphaned grandchildren are closed after the kill
		cmd.WaitDelay = waitDelay
		killProcessGroup(cmd)

		if err := cmd.Start(); err != nil {
			return "", fmt.Errorf("cannot start '%s': %w", c, err)
		}

		if err := cmd.Wait(); err != nil {
			if msg := strings.TrimSpace(errBuf.String()); msg != "" {
				return "", fmt.Errorf("'%s' failed: %w: %s", c, err, msg)
			}
			return "", fmt.Errorf("'%s' failed: %w", c, err)
		}

		return strings.TrimSpace(outBuf.String()), nil
	}
}
