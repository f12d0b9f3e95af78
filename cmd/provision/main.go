// Package main implements the provision CLI that prepares mscolab data
// directories and databases.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Open-MSS/mscolab-provision/config"
	"github.com/Open-MSS/mscolab-provision/internal/app"
	"github.com/Open-MSS/mscolab-provision/internal/domain"
	"github.com/Open-MSS/mscolab-provision/pkg/logger"
)

// osExit is a variable to allow mocking os.Exit in tests
var osExit = os.Exit

// loadConfig is a variable so tests can supply their own configuration
var loadConfig = config.Load

// NewAppFunc defines the function signature for creating a new app
type NewAppFunc func(cfg *config.Config, opts ...app.AppOption) app.AppInterface

func newRootCmd(newApp NewAppFunc) *cobra.Command {
	var testMode, initMode bool

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Tool to setup data for usage of mscolab",
		Long: `provision prepares the data directory and database of an mscolab server.

Examples:
  # Rebuild colabTestData and seed the reference accounts and projects
  provision --test

  # Create colabdata and an empty schema for a deployment
  provision --init`,
		Version:       config.VERSION,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !testMode && !initMode {
				fmt.Fprintln(cmd.OutOrStdout(), "for help, use -h flag")
				return nil
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)
			appInstance := newApp(cfg, app.WithLogger(appLogger))
			if err := appInstance.Initialize(); err != nil {
				return err
			}

			if testMode {
				return appInstance.RunTest(cmd.Context())
			}
			return appInstance.RunInit(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&testMode, "test", false, "setup test data")
	cmd.Flags().BoolVar(&initMode, "init", false, "setup deployment data")
	cmd.MarkFlagsMutuallyExclusive("test", "init")

	return cmd
}

// run executes the CLI and returns the process exit code. A backend whose
// driver is not part of the build is reported and treated as success.
func run(args []string, out io.Writer, newApp NewAppFunc) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(newApp)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)

	reportLogger := logger.NewConsoleLogger(out, "info")

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}

	var unavailable *domain.ErrDriverUnavailable
	if errors.As(err, &unavailable) {
		reportLogger.WithField("driver", unavailable.Driver).Info("can't complete data setup: " + err.Error())
		return 0
	}

	reportLogger.WithField("error", err.Error()).Error("Provisioning failed")
	return 1
}

func main() {
	osExit(run(os.Args[1:], os.Stdout, app.NewApp))
}
