package terminal

import (
	"io"
	"os"
	"time"

	"github.com/de-tools/tda-copilot/pkg/runtime/terminal/commands"
	"github.com/de-tools/tda-copilot/pkg/runtime/terminal/export"
	"github.com/de-tools/tda-copilot/pkg/services/config"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env     *commands.Env
	logOut  io.Writer
	rootCmd *cobra.Command

	configFile string
	envFile    string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// ErrOutput receives logs and the progress spinner.
	ErrOutput io.Writer
	// Quiet disables the progress spinner.
	Quiet   bool
	Now     func() time.Time
	Version string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	var progress commands.Progress = NewSpinner(opts.ErrOutput)
	if opts.Quiet {
		progress = silent{}
	}

	cli := &CLI{
		env: &commands.Env{
			Output:   opts.Output,
			Progress: progress,
			Now:      opts.Now,
			Reporters: map[string]commands.Reporter{
				"text":  NewReporter(opts.Output),
				"table": export.NewReporter(opts.Output),
				"json":  export.NewJSONReporter(opts.Output),
			},
		},
		logOut: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd(opts.Version)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides the process arguments, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "tda",
		Short:             "Technology Design Assessment copilot",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.configFile, "config", "c", "", "Path to a config file")
	cmd.PersistentFlags().StringVar(&cli.envFile, "env-file", ".env", "Path to a .env file")

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.env))
	cmd.AddCommand(commands.NewCriteriaCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))
	cmd.AddCommand(commands.NewVersionCmd(cli.env, version))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: cli.configFile,
		DotEnvFile: cli.envFile,
	})
	if err != nil {
		return err
	}
	cli.env.Config = cfg

	logger := cfg.Log.Logger(cli.logOut)
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
