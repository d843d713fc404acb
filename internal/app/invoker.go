package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/quantmind-br/adc/internal/config"
	"github.com/quantmind-br/adc/internal/domain"
	"github.com/quantmind-br/adc/internal/git"
	"github.com/quantmind-br/adc/internal/sshkey"
	"github.com/quantmind-br/adc/internal/utils"
)

// Invoker clones a repository with a named SSH key by running git
type Invoker struct {
	config   *config.Config
	homeDir  string
	workDir  string
	dryRun   bool
	stdout   io.Writer
	resolver *sshkey.Resolver
	executor git.Executor
	client   git.Client
	logger   *utils.Logger
}

// InvokerOptions contains options for creating an invoker
type InvokerOptions struct {
	Config  *config.Config
	HomeDir string
	WorkDir string // directory git runs in; empty means the current one
	DryRun  bool
	Verbose bool

	Stdout   io.Writer
	Fs       afero.Fs
	Executor git.Executor
	Client   git.Client
	Logger   *utils.Logger
}

// NewInvoker creates a new invoker. Collaborators left nil get their real
// implementations.
func NewInvoker(opts InvokerOptions) (*Invoker, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
		if opts.Verbose {
			logger = utils.NewVerboseLogger()
		}
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	executor := opts.Executor
	if executor == nil {
		executor = git.NewExecRunner()
	}

	client := opts.Client
	if client == nil {
		client = git.NewClient()
	}

	return &Invoker{
		config:   cfg,
		homeDir:  opts.HomeDir,
		workDir:  opts.WorkDir,
		dryRun:   opts.DryRun,
		stdout:   stdout,
		resolver: sshkey.NewResolver(opts.Fs),
		executor: executor,
		client:   client,
		logger:   logger.WithComponent("invoker"),
	}, nil
}

// Run resolves the key, then runs git clone with the key forced through
// GIT_SSH_COMMAND. It returns nil only when git exits with code 0.
func (i *Invoker) Run(ctx context.Context, inv domain.Invocation) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	log := i.logger.WithKey(inv.KeyName).WithURL(inv.SourceURL)

	if sshkey.EscapesDir(inv.KeyName) {
		log.Warn().Msg("Key name points outside the SSH directory")
	}
	if !git.UsesSSH(inv.SourceURL) {
		log.Warn().Msg("URL does not use ssh, git will ignore the SSH key")
	}

	keyPath, err := i.resolver.Resolve(i.homeDir, inv.KeyName)
	if err != nil {
		return err
	}
	log.Debug().Str("path", keyPath).Msg("SSH key found")

	cmd := git.NewCloneCommand(i.config.Git.Executable, keyPath, inv.SourceURL, inv.DestinationDir)

	fmt.Fprintf(i.stdout, "Cloning repository with SSH key: %s\n", inv.KeyName)
	fmt.Fprintf(i.stdout, "Repository URL: %s\n", inv.SourceURL)

	if i.dryRun {
		fmt.Fprintf(i.stdout, "Dry run, would execute: %s\n", cmd.String())
		return nil
	}

	if i.workDir != "" {
		cmd.Dir = i.workDir
	}

	log.Debug().Str("command", cmd.String()).Msg("Running git")
	outcome, err := i.executor.Run(ctx, cmd)
	if err != nil {
		return domain.NewChildLaunchError(cmd.Program, err)
	}
	if !outcome.Success() {
		return domain.NewChildFailureError(outcome.ExitCode, outcome.Exited)
	}

	fmt.Fprintln(i.stdout, "Repository cloned successfully!")

	i.inspect(log, inv)
	return nil
}

// inspect logs the HEAD of the fresh checkout at debug level. It never
// fails the run.
func (i *Invoker) inspect(log *utils.Logger, inv domain.Invocation) {
	if log.GetLevel() > zerolog.DebugLevel {
		return
	}

	dir, err := git.CheckoutDir(inv.SourceURL, inv.DestinationDir)
	if err != nil {
		log.Debug().Err(err).Msg("Could not determine checkout directory")
		return
	}
	if i.workDir != "" && !filepath.IsAbs(dir) {
		dir = filepath.Join(i.workDir, dir)
	}

	head, err := git.ReadHead(i.client, dir)
	if err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("Could not inspect checkout")
		return
	}
	log.Debug().
		Str("dir", dir).
		Str("branch", head.Branch).
		Str("commit", head.Hash).
		Msg("Checkout ready")
}
