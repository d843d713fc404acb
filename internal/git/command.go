package git

import (
	"fmt"
	"strings"
)

const (
	// SSHCommandEnv is the variable git reads to override its ssh invocation
	SSHCommandEnv = "GIT_SSH_COMMAND"

	// DefaultExecutable is the git program looked up on PATH
	DefaultExecutable = "git"

	// StrictHostKeyCheckingOff disables host key verification for the clone
	StrictHostKeyCheckingOff = "StrictHostKeyChecking=no"
)

// Command describes a program invocation. Env holds KEY=VALUE pairs that are
// added on top of the inherited environment of the child only.
type Command struct {
	Program string
	Args    []string
	Env     []string
	Dir     string // empty runs in the current directory
}

// String renders the command as it could be typed in a shell
func (c Command) String() string {
	parts := make([]string, 0, len(c.Env)+len(c.Args)+1)
	for _, kv := range c.Env {
		name, value, _ := strings.Cut(kv, "=")
		parts = append(parts, fmt.Sprintf("%s=%q", name, value))
	}
	parts = append(parts, c.Program)
	parts = append(parts, c.Args...)
	return strings.Join(parts, " ")
}

// TransportCommand returns the ssh command git should use for keyPath
func TransportCommand(keyPath string) string {
	return fmt.Sprintf("ssh -i %s -o %s", keyPath, StrictHostKeyCheckingOff)
}

// CloneArgs returns the git arguments for cloning url, optionally into dir
func CloneArgs(url, dir string) []string {
	args := []string{"clone", url}
	if dir != "" {
		args = append(args, dir)
	}
	return args
}

// NewCloneCommand builds the clone command for program using the key at keyPath
func NewCloneCommand(program, keyPath, url, dir string) Command {
	if program == "" {
		program = DefaultExecutable
	}
	return Command{
		Program: program,
		Args:    CloneArgs(url, dir),
		Env:     []string{SSHCommandEnv + "=" + TransportCommand(keyPath)},
	}
}
