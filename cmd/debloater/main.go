// Debloater reviews the preinstalled packages of an Android phone.
//
// It reads the connected device over adb, joins its package list with a
// catalog of known bloatware, and lets the user filter and select packages
// that are safe to remove. The selection can be copied to the clipboard as
// package ids.
//
// Usage:
//
//	debloater [command] [flags]
//
// Running without arguments launches the full-screen terminal UI.
// See 'debloater --help' for available commands.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/muurk/debloater/internal/urls"
	"github.com/muurk/debloater/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, rootCmd); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "debloater",
	Short: "Review and remove preinstalled Android packages",
	Long: `Review the preinstalled packages of an Android phone and select the ones
that are safe to remove.

The phone is read over adb (USB or wireless debugging). Packages are matched
against a catalog that rates each one from Recommended to Unsafe.

If no command is specified, the terminal UI launches automatically.

adb is part of the Android platform tools: ` + urls.PlatformTools,
	Version:      version.Full(),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Fprintf(cmd.OutOrStdout(), "debloater %s\n", info)
		if info.GoVersion != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "built with %s\n", info.GoVersion)
		}
	},
}
