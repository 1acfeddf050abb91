package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/i18nsync/internal/cli"
	"codeberg.org/snonux/i18nsync/internal/logging"
	"codeberg.org/snonux/i18nsync/internal/models"
	"codeberg.org/snonux/i18nsync/internal/processor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli.LoadEnvFiles()

	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Read the config file once flags are parsed
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.InitConfig(flags.CfgFile)
		flags.Resolve()
	}

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	rootCmd.SetArgs(args)
	rootCmd.SetContext(ctx)

	return cli.Execute(rootCmd, stdout, stderr)
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	ctx := cmd.Context()

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListChatModels(ctx, cmd.OutOrStdout())
	}

	logger := logging.New(cmd.ErrOrStderr(), flags.LogLevel, flags.Verbose)

	proc := processor.NewProcessor(flags, cmd.OutOrStdout(), logger)
	_, err := proc.Run(ctx, args[0], args[1])
	return err
}
