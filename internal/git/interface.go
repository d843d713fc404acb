package git

import (
	"context"

	"github.com/go-git/go-git/v5"
)

// Client defines the interface for Git repository inspection
type Client interface {
	PlainOpen(path string) (*git.Repository, error)
}

// Executor runs an external command and waits for it to finish.
// A non-nil error means the command could not be started; a command that
// ran and failed is reported through Outcome.
type Executor interface {
	Run(ctx context.Context, cmd Command) (Outcome, error)
}
