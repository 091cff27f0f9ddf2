package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nfrund/esperanca/internal/config"
	"github.com/nfrund/esperanca/internal/logging"
)

// options is shared by every command. It is filled in before any command runs.
type options struct {
	storageDir string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "esperanca-cli",
		Short: "Brasil Esperança site tool",
		Long: `esperanca-cli runs the Brasil Esperança page engine without a browser.

Available commands:
  cpf          Check CPF numbers
  mask         Format a CPF or phone number the way the form does
  pages        List and render page markup
  navigate     Load a fragment and print what the page shows
  volunteers   List, register and watch volunteer registrations

Use "esperanca-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if opts.storageDir != "" {
				cfg.StorageDir = opts.storageDir
			}
			level := cfg.LogLevel
			if opts.logLevel != "" {
				level = opts.logLevel
			}
			opts.cfg = cfg
			opts.logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogFormat, level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.storageDir, "storage-dir", "", "directory holding stored keys (overrides STORAGE_DIR)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newVersionCmd(),
		newCPFCmd(),
		newMaskCmd(),
		newPagesCmd(),
		newNavigateCmd(opts),
		newVolunteersCmd(opts),
	)
	return root
}

// Execute executes the root command. An interrupt cancels the running command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
