package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/YarynaFialko/notebook/pkg/shell"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd starts the interactive menu when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notebook",
	Short: "An in-memory notebook driven by an interactive menu",
	Long: `Notebook keeps short memos with optional tags for the lifetime of the
process. It shows a numbered menu for listing, searching, adding and
modifying notes; nothing is ever written to disk.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		shell.New(shell.WithLogger(slog.Default())).Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
