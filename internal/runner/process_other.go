//go:build !unix

package runner

import "os/exec"

// Only the direct child is killed; WaitDelay still releases the output pipes.
func killProcessGroup(cmd *exec.Cmd) {}
