package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/adc/internal/app"
	"github.com/quantmind-br/adc/internal/config"
	"github.com/quantmind-br/adc/internal/domain"
	"github.com/quantmind-br/adc/internal/git"
	"github.com/quantmind-br/adc/internal/sshkey"
	"github.com/quantmind-br/adc/internal/utils"
	"github.com/quantmind-br/adc/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger

	// Dependencies for testing
	userHomeDir  = os.UserHomeDir
	execLookPath = exec.LookPath
	appFs        = afero.NewOsFs()
	newExecutor  = func() git.Executor { return git.NewExecRunner() }
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and maps the outcome to the process exit code
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "adc --ssh <key> <url> [directory]",
		Short: "Advanced Git Clone - Clone repositories with specific SSH keys",
		Long: `adc clones a git repository using one named private key from ~/.ssh,
instead of whatever key ssh-agent or ~/.ssh/config would pick.

The key is passed to git through GIT_SSH_COMMAND together with
StrictHostKeyChecking=no, so unknown host keys are accepted without a prompt.`,
		Example:       "  adc --ssh work_key git@github.com:org/repo.git\n  adc --ssh work_key git@github.com:org/repo.git myrepo",
		Version:       version.Short(),
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.adc/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("git", config.DefaultGitExecutable, "git executable to run")

	// Clone flags
	rootCmd.Flags().String("ssh", "", "SSH key name to use for cloning (a file name under ~/.ssh)")
	rootCmd.Flags().Bool("dry-run", false, "Print the git command instead of running it")
	_ = rootCmd.MarkFlagRequired("ssh")

	_ = viper.BindPFlag("git.executable", rootCmd.PersistentFlags().Lookup("git"))

	rootCmd.SetVersionTemplate(version.Template())

	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(utils.ExpandPath(cfgFile))
	}
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *utils.Logger {
	return utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	})
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log = newLogger(cmd, cfg)

	home, err := userHomeDir()
	if err != nil {
		return domain.NewEnvironmentError(err)
	}

	keyName, _ := cmd.Flags().GetString("ssh")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	inv := domain.Invocation{
		KeyName:   keyName,
		SourceURL: args[0],
	}
	if len(args) > 1 {
		inv.DestinationDir = args[1]
	}

	invoker, err := app.NewInvoker(app.InvokerOptions{
		Config:   cfg,
		HomeDir:  home,
		DryRun:   dryRun,
		Verbose:  verbose,
		Stdout:   cmd.OutOrStdout(),
		Fs:       appFs,
		Executor: newExecutor(),
		Logger:   log,
	})
	if err != nil {
		return fmt.Errorf("failed to create invoker: %w", err)
	}

	return invoker.Run(cmd.Context(), inv)
}

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check system dependencies",
		Long:  "Verifies that git and ssh are installed and that the SSH directory and config are usable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Checking system dependencies...")
			allPassed := true

			cfg, cfgErr := config.Load()
			gitExecutable := config.DefaultGitExecutable
			if cfgErr == nil {
				gitExecutable = cfg.Git.Executable
			}

			// Check 1: git
			fmt.Fprint(out, "  git: ")
			if path, err := execLookPath(gitExecutable); err == nil {
				fmt.Fprintf(out, "OK (%s)\n", path)
			} else {
				fmt.Fprintf(out, "NOT FOUND (%s)\n", gitExecutable)
				allPassed = false
			}

			// Check 2: ssh
			fmt.Fprint(out, "  ssh: ")
			if path, err := execLookPath("ssh"); err == nil {
				fmt.Fprintf(out, "OK (%s)\n", path)
			} else {
				fmt.Fprintln(out, "NOT FOUND")
				allPassed = false
			}

			// Check 3: SSH directory
			fmt.Fprint(out, "  SSH directory: ")
			if home, err := userHomeDir(); err != nil {
				fmt.Fprintf(out, "FAILED (%v)\n", err)
				allPassed = false
			} else if sshkey.NewResolver(appFs).Exists(home) {
				fmt.Fprintf(out, "OK (%s)\n", sshkey.Dir(home))
			} else {
				fmt.Fprintf(out, "WARN (%s does not exist)\n", sshkey.Dir(home))
			}

			// Check 4: Config file
			fmt.Fprint(out, "  Config file: ")
			if cfgErr != nil {
				fmt.Fprintf(out, "WARN (%v)\n", cfgErr)
			} else {
				fmt.Fprintln(out, "OK")
			}

			fmt.Fprintln(out)
			if allPassed {
				fmt.Fprintln(out, "All critical checks passed!")
			} else {
				fmt.Fprintln(out, "Some checks failed. Please resolve the issues above.")
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			out, err := cfg.ToYAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			path := config.ConfigFilePath()
			if cfgFile != "" {
				path = utils.ExpandPath(cfgFile)
			}

			if err := config.Default().WriteFile(appFs, path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
